package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikey/coldflow-core/internal/core"
)

func TestValidateVerifyRequiresLeads(t *testing.T) {
	cmd := &core.ParsedCommand{
		Action:     "verify",
		Parameters: map[string]any{"target": "current_leads"},
	}

	result := Validate(cmd, &core.SessionContext{HasCurrentLeads: false})
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "No leads available. Search for leads first.")

	result = Validate(cmd, &core.SessionContext{HasCurrentLeads: true})
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateVerifyOtherTargetsSkipLeadCheck(t *testing.T) {
	cmd := &core.ParsedCommand{
		Action:     "verify",
		Parameters: map[string]any{"target": "all_leads"},
	}

	result := Validate(cmd, &core.SessionContext{HasCurrentLeads: false})
	assert.True(t, result.Valid)
}

func TestValidateUnknownActionWarnsOnly(t *testing.T) {
	cmd := &core.ParsedCommand{
		Action:     "launch_rockets",
		Parameters: map[string]any{},
	}

	result := Validate(cmd, nil)
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "Unknown action: launch_rockets")
}

func TestValidateSchemaExemptActionsStaySilent(t *testing.T) {
	for _, action := range []string{"show_campaigns", "help", "unknown"} {
		cmd := &core.ParsedCommand{Action: action, Parameters: map[string]any{}}
		result := Validate(cmd, nil)
		assert.Truef(t, result.Valid, "action: %s", action)
		assert.Emptyf(t, result.Warnings, "action: %s", action)
	}
}

func TestValidateFindCountBounds(t *testing.T) {
	tests := []struct {
		name  string
		count any
		valid bool
	}{
		{"positive", 200, true},
		{"json number", float64(200), true},
		{"zero", 0, false},
		{"negative", -5, false},
		{"too large", 20000, false},
		{"fractional", 2.5, false},
		{"not a number", "many", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &core.ParsedCommand{
				Action:     "find",
				Parameters: map[string]any{"count": tt.count},
			}
			result := Validate(cmd, nil)
			assert.Equal(t, tt.valid, result.Valid)
		})
	}
}

func TestValidateMissingRequiredParameter(t *testing.T) {
	cmd := &core.ParsedCommand{
		Action:     "pause_campaign",
		Parameters: map[string]any{},
	}

	result := Validate(cmd, nil)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "campaign_name: required")
}

func TestValidateOptionalParametersMayBeAbsent(t *testing.T) {
	cmd := &core.ParsedCommand{
		Action:     "find",
		Parameters: map[string]any{},
	}

	result := Validate(cmd, nil)
	assert.True(t, result.Valid)
}

func TestValidateEnrichSource(t *testing.T) {
	cmd := &core.ParsedCommand{
		Action:     "enrich",
		Parameters: map[string]any{"source": "linkedin-scraper"},
	}

	result := Validate(cmd, nil)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "source:")
}

func TestValidateUnknownCampaignWarns(t *testing.T) {
	cmd := &core.ParsedCommand{
		Action:     "pause_campaign",
		Parameters: map[string]any{"campaign_name": "Moonshot"},
	}

	ctx := &core.SessionContext{AvailableCampaigns: []string{"Q4 SaaS Outreach"}}
	result := Validate(cmd, ctx)
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `Campaign "Moonshot" not found`)
}

func TestValidateKnownCampaignNoWarning(t *testing.T) {
	cmd := &core.ParsedCommand{
		Action:     "pause_campaign",
		Parameters: map[string]any{"campaign_name": "Q4 SaaS Outreach"},
	}

	ctx := &core.SessionContext{AvailableCampaigns: []string{"Q4 SaaS Outreach"}}
	result := Validate(cmd, ctx)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)
}

func TestValidateDisconnectedIntegrationWarns(t *testing.T) {
	cmd := &core.ParsedCommand{
		Action:     "find",
		Parameters: map[string]any{},
		Source:     "apollo",
	}

	ctx := &core.SessionContext{Integrations: []string{"instantly"}}
	result := Validate(cmd, ctx)
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `Integration "apollo" not connected`)
}

func TestValidateNilContextSkipsContextChecks(t *testing.T) {
	cmd := &core.ParsedCommand{
		Action:     "verify",
		Parameters: map[string]any{"target": "current_leads"},
	}

	result := Validate(cmd, nil)
	assert.True(t, result.Valid)
}

func TestValidateEmployeeRange(t *testing.T) {
	cmd := &core.ParsedCommand{
		Action: "find",
		Parameters: map[string]any{
			"employee_range": map[string]any{"min": 10, "max": 200},
		},
	}
	assert.True(t, Validate(cmd, nil).Valid)

	cmd.Parameters["employee_range"] = map[string]any{"min": -1}
	assert.False(t, Validate(cmd, nil).Valid)

	cmd.Parameters["employee_range"] = "10-200"
	assert.False(t, Validate(cmd, nil).Valid)
}
