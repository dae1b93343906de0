package config

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/personalfme/groupalarm-trigger/internal/domain/alarm"
)

// resourceVariants are the mutually exclusive keys of a resources section.
var resourceVariants = []string{"allUsers", "labels", "units", "users", "scenarios"}

// ValidateDocument checks the loosely-typed configuration tree against the
// schema. It always runs to completion and returns a ConfigurationError
// aggregating every violation found, so one pass shows the full defect list.
func ValidateDocument(document map[string]any) error {
	var violations []error

	report := func(format string, args ...any) {
		violations = append(violations, fmt.Errorf(format, args...))
	}

	for _, key := range sortedKeys(document) {
		switch key {
		case "login":
			validateLogin(document[key], report)
		case "proxy":
			validateProxy(document[key], report)
		case "alarms":
			validateAlarms(document[key], report)
		default:
			report("unknown section %q", key)
		}
	}

	if _, ok := document["alarms"]; !ok {
		report("section \"alarms\" is required")
	}

	if len(violations) > 0 {
		return NewSchemaError(violations...)
	}

	return nil
}

type reporter func(format string, args ...any)

func validateLogin(section any, report reporter) {
	login, ok := section.(map[string]any)
	if !ok {
		report("login: must be a mapping")
		return
	}

	for _, key := range sortedKeys(login) {
		value := login[key]

		switch key {
		case "organization-id":
			if _, ok := value.(int); !ok {
				report("login.organization-id: must be an integer")
			}
		case "api-token":
			if _, ok := value.(string); !ok {
				report("login.api-token: must be a string")
			}
		default:
			report("login: unknown field %q", key)
		}
	}
}

func validateProxy(section any, report reporter) {
	proxy, ok := section.(map[string]any)
	if !ok {
		report("proxy: must be a mapping")
		return
	}

	for _, key := range sortedKeys(proxy) {
		value := proxy[key]

		switch key {
		case "address":
			if _, ok := value.(string); !ok {
				report("proxy.address: must be a string")
			}
		case "port":
			if _, ok := value.(int); !ok {
				report("proxy.port: must be an integer")
			}
		case "username", "password":
			if _, ok := value.(string); !ok {
				report("proxy.%s: must be a string", key)
			}
		default:
			report("proxy: unknown field %q", key)
		}
	}

	if _, ok := proxy["address"]; !ok {
		report("proxy.address: required field is missing")
	}

	if _, ok := proxy["port"]; !ok {
		report("proxy.port: required field is missing")
	}
}

func validateAlarms(section any, report reporter) {
	alarms, ok := section.(map[string]any)
	if !ok {
		report("alarms: must be a mapping")
		return
	}

	for _, code := range sortedKeys(alarms) {
		if utf8.RuneCountInString(code) != alarm.CodeLength {
			report("alarms: alert code %q must be exactly %d characters", code, alarm.CodeLength)
		}

		validateRule(code, alarms[code], report)
	}
}

func validateRule(code string, value any, report reporter) {
	rule, ok := value.(map[string]any)
	if !ok {
		report("alarms.%s: must be a mapping", code)
		return
	}

	messageKeys := 0

	for _, key := range sortedKeys(rule) {
		field := rule[key]

		switch key {
		case "resources":
			validateResources(code, field, report)
		case "message", "messageTemplate":
			messageKeys++

			if _, ok := field.(string); !ok {
				report("alarms.%s.%s: must be a string", code, key)
			}
		case "closeEventInHours":
			hours, ok := field.(int)
			if !ok {
				report("alarms.%s.closeEventInHours: must be an integer", code)
			} else if hours < 0 {
				report("alarms.%s.closeEventInHours: must not be negative", code)
			}
		default:
			report("alarms.%s: unknown field %q", code, key)
		}
	}

	if _, ok := rule["resources"]; !ok {
		report("alarms.%s: required field \"resources\" is missing", code)
	}

	switch {
	case messageKeys == 0:
		report("alarms.%s: either \"message\" or \"messageTemplate\" must be configured", code)
	case messageKeys > 1:
		report("alarms.%s: \"message\" and \"messageTemplate\" are mutually exclusive", code)
	}
}

//nolint:cyclop // The per-variant checks are flat and read best in one place.
func validateResources(code string, value any, report reporter) {
	resources, ok := value.(map[string]any)
	if !ok {
		report("alarms.%s.resources: must be a mapping", code)
		return
	}

	variants := 0

	for _, key := range sortedKeys(resources) {
		field := resources[key]

		switch key {
		case "allUsers":
			variants++

			flag, ok := field.(bool)
			if !ok {
				report("alarms.%s.resources.allUsers: must be a boolean", code)
			} else if !flag {
				report("alarms.%s.resources.allUsers: only \"true\" is allowed", code)
			}
		case "labels":
			variants++

			validateLabels(code, field, report)
		case "units", "users", "scenarios":
			variants++

			validateNameList(code, key, field, report)
		default:
			report("alarms.%s.resources: unknown field %q", code, key)
		}
	}

	switch {
	case variants == 0:
		report("alarms.%s.resources: exactly one resource variant must be configured", code)
	case variants > 1:
		report("alarms.%s.resources: the resource variants are mutually exclusive", code)
	}
}

func validateLabels(code string, value any, report reporter) {
	entries, ok := value.([]any)
	if !ok {
		report("alarms.%s.resources.labels: must be a list", code)
		return
	}

	if len(entries) == 0 {
		report("alarms.%s.resources.labels: must not be empty", code)
	}

	seen := make(map[string]bool, len(entries))

	for i, entry := range entries {
		pair, ok := entry.(map[string]any)
		if !ok || len(pair) != 1 {
			report("alarms.%s.resources.labels[%d]: must be a single label-to-amount mapping", code, i)
			continue
		}

		for name, amount := range pair {
			if seen[name] {
				report("alarms.%s.resources.labels: label %q appears more than once", code, name)
			}

			seen[name] = true

			count, ok := amount.(int)
			if !ok {
				report("alarms.%s.resources.labels[%d]: amount for %q must be an integer", code, i, name)
			} else if count < 1 {
				report("alarms.%s.resources.labels[%d]: amount for %q must be positive", code, i, name)
			}
		}
	}
}

func validateNameList(code, key string, value any, report reporter) {
	names, ok := value.([]any)
	if !ok {
		report("alarms.%s.resources.%s: must be a list", code, key)
		return
	}

	if len(names) == 0 {
		report("alarms.%s.resources.%s: must not be empty", code, key)
	}

	for i, name := range names {
		if _, ok := name.(string); !ok {
			report("alarms.%s.resources.%s[%d]: must be a string", code, key, i)
		}
	}
}

// sortedKeys keeps the violation list deterministic across runs.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
