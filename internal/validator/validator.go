package validator

import (
	"fmt"
	"strings"

	"github.com/mikey/coldflow-core/internal/core"
)

// Validate schema-checks a parsed command's parameters and cross-checks it
// against the session context. Errors block execution; warnings never do.
// A nil context skips the contextual checks.
func Validate(cmd *core.ParsedCommand, ctx *core.SessionContext) *core.ValidationResult {
	errors := []string{}
	warnings := []string{}

	schema, ok := schemas[cmd.Action]
	if !ok {
		if !schemaExempt[cmd.Action] {
			warnings = append(warnings, fmt.Sprintf("Unknown action: %s. Proceeding with basic validation.", cmd.Action))
		}
	} else {
		for _, r := range schema {
			v, present := cmd.Parameters[r.field]
			if !present || v == nil {
				if r.required {
					errors = append(errors, fmt.Sprintf("%s: required", r.field))
				}
				continue
			}
			if msg := r.check(v); msg != "" {
				errors = append(errors, fmt.Sprintf("%s: %s", r.field, msg))
			}
		}
	}

	if ctx != nil {
		// Campaign-name actions only warn on unknown names: the sandbox
		// creates campaigns on demand rather than refusing.
		if strings.Contains(cmd.Action, "campaign") {
			if name, ok := core.StringParam(cmd.Parameters, "campaign_name"); ok {
				if ctx.AvailableCampaigns != nil && !containsString(ctx.AvailableCampaigns, name) {
					warnings = append(warnings, fmt.Sprintf("Campaign %q not found. Will create new campaign.", name))
				}
			}
		}

		if cmd.Source != "" && ctx.Integrations != nil {
			if !containsString(ctx.Integrations, cmd.Source) {
				warnings = append(warnings, fmt.Sprintf("Integration %q not connected. Will use sandbox mode.", cmd.Source))
			}
		}

		// Verification needs leads in the session; this is the one hard
		// contextual failure.
		if cmd.Action == "verify" {
			if target, ok := core.StringParam(cmd.Parameters, "target"); ok && target == "current_leads" {
				if !ctx.HasCurrentLeads {
					errors = append(errors, "No leads available. Search for leads first.")
				}
			}
		}
	}

	return &core.ValidationResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
