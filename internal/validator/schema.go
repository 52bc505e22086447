package validator

import (
	"fmt"

	"github.com/mikey/coldflow-core/internal/core"
)

// Parameter schemas are declarative, immutable tables keyed by action. Each
// rule checks one field; violations render as "field: message". Actions
// without a schema are warned about, not blocked, unless schema-exempt.

type rule struct {
	field    string
	required bool
	check    func(v any) string
}

type actionSchema []rule

// Actions that legitimately carry no parameter schema
var schemaExempt = map[string]bool{
	"show_campaigns": true,
	"help":           true,
	"unknown":        true,
}

var schemas = map[string]actionSchema{
	"find": {
		{field: "count", check: positiveIntMax(10000)},
		{field: "titles", check: stringSlice},
		{field: "industry", check: isString},
		{field: "location", check: objectOf("city", "state", "country")},
		{field: "employee_range", check: rangeObject},
	},
	"verify": {
		{field: "target", check: oneOf("current_leads", "all_leads", "campaign")},
		{field: "campaign_name", check: isString},
	},
	"enrich": {
		{field: "source", check: oneOf("apollo", "clay", "clearbit")},
		{field: "fields", check: stringSlice},
	},
	"create_campaign": {
		{field: "name", required: true, check: nonEmptyString},
		{field: "platform", check: oneOf("instantly", "smartlead", "lemlist")},
	},
	"load_into_campaign": {
		{field: "campaign_name", required: true, check: nonEmptyString},
	},
	"pause_campaign": {
		{field: "campaign_name", required: true, check: nonEmptyString},
	},
	"resume_campaign": {
		{field: "campaign_name", required: true, check: nonEmptyString},
	},
	"simulate": {
		{field: "days", required: true, check: positiveIntMax(365)},
		{field: "campaign_name", check: isString},
	},
	"export": {
		{field: "format", check: oneOf("csv", "json", "xlsx")},
		{field: "destination", check: isString},
	},
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		// JSON numbers decode as float64; reject fractional values
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func positiveIntMax(max int) func(v any) string {
	return func(v any) string {
		n, ok := asInt(v)
		if !ok {
			return "expected an integer"
		}
		if n <= 0 {
			return "must be a positive integer"
		}
		if n > max {
			return fmt.Sprintf("must be no greater than %d", max)
		}
		return ""
	}
}

func isString(v any) string {
	if _, ok := v.(string); !ok {
		return "expected a string"
	}
	return ""
}

func nonEmptyString(v any) string {
	s, ok := v.(string)
	if !ok {
		return "expected a string"
	}
	if s == "" {
		return "must not be empty"
	}
	return ""
}

func oneOf(allowed ...string) func(v any) string {
	return func(v any) string {
		s, ok := v.(string)
		if !ok {
			return "expected a string"
		}
		for _, a := range allowed {
			if s == a {
				return ""
			}
		}
		return fmt.Sprintf("must be one of %v", allowed)
	}
}

func stringSlice(v any) string {
	if _, ok := core.StringSliceParam(map[string]any{"v": v}, "v"); !ok {
		return "expected a list of strings"
	}
	return ""
}

// objectOf accepts a nested object whose listed fields, when present, are
// strings
func objectOf(fields ...string) func(v any) string {
	return func(v any) string {
		m, ok := v.(map[string]any)
		if !ok {
			return "expected an object"
		}
		for _, f := range fields {
			if fv, present := m[f]; present && fv != nil {
				if _, ok := fv.(string); !ok {
					return fmt.Sprintf("%s must be a string", f)
				}
			}
		}
		return ""
	}
}

// rangeObject accepts {min, max} where each bound, when present, is a
// positive integer
func rangeObject(v any) string {
	m, ok := v.(map[string]any)
	if !ok {
		return "expected an object"
	}
	for _, f := range []string{"min", "max"} {
		if fv, present := m[f]; present && fv != nil {
			n, ok := asInt(fv)
			if !ok {
				return fmt.Sprintf("%s must be an integer", f)
			}
			if n <= 0 {
				return fmt.Sprintf("%s must be a positive integer", f)
			}
		}
	}
	return ""
}
