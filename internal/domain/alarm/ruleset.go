package alarm

import "fmt"

// Ruleset maps alert codes to their alarm rules. Codes are unique keys of
// exactly CodeLength characters.
type Ruleset map[string]Rule

// RuleFor returns the rule configured for the given alert code.
func (r Ruleset) RuleFor(code string) (Rule, error) {
	rule, ok := r[code]
	if !ok {
		return Rule{}, fmt.Errorf("no alarm configuration for the alarm code %s", code)
	}

	return rule, nil
}
