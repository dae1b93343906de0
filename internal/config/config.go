package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/personalfme/groupalarm-trigger/internal/domain/alarm"
)

// DefaultConfigPath is the configuration file used when none is given on
// the command line.
const DefaultConfigPath = "config/config.yaml"

// Login holds the GroupAlarm credentials as supplied by the configuration
// file. Pointer fields distinguish "absent" from zero values; the env
// contract in ResolveCredentials depends on that distinction.
type Login struct {
	// OrganizationID is the numeric GroupAlarm organization id.
	OrganizationID *int `yaml:"organization-id"`
	// APIToken authenticates requests against the GroupAlarm API.
	APIToken *string `yaml:"api-token"`
}

// Proxy holds the outbound HTTPS proxy settings.
type Proxy struct {
	// Address is the proxy host.
	Address string `yaml:"address"`
	// Port is the proxy port.
	Port int `yaml:"port"`
	// Username is the optional basic-auth user.
	Username string `yaml:"username"`
	// Password is the optional basic-auth password.
	Password string `yaml:"password"`
}

// URL builds the HTTPS proxy URL for the transport layer.
// A password without a username is ignored.
func (p *Proxy) URL() string {
	if p == nil {
		return ""
	}

	switch {
	case p.Username != "" && p.Password != "":
		return fmt.Sprintf("https://%s:%s@%s:%d", p.Username, p.Password, p.Address, p.Port)
	case p.Username != "":
		return fmt.Sprintf("https://%s@%s:%d", p.Username, p.Address, p.Port)
	default:
		return fmt.Sprintf("https://%s:%d", p.Address, p.Port)
	}
}

// Config is the validated alarm configuration for one invocation.
// It is loaded once, held immutably and discarded at process exit.
type Config struct {
	// Login holds file-supplied credentials, nil when the section is absent.
	Login *Login
	// Proxy holds outbound proxy settings, nil when the section is absent.
	Proxy *Proxy
	// Alarms maps alert codes to their rules.
	Alarms alarm.Ruleset
}

// rawConfig mirrors the YAML document for the typed decoding pass that runs
// after ValidateDocument has accepted the document.
type rawConfig struct {
	Login  *Login             `yaml:"login"`
	Proxy  *Proxy             `yaml:"proxy"`
	Alarms map[string]rawRule `yaml:"alarms"`
}

type rawRule struct {
	Resources         rawResources `yaml:"resources"`
	Message           *string      `yaml:"message"`
	MessageTemplate   *string      `yaml:"messageTemplate"`
	CloseEventInHours *int         `yaml:"closeEventInHours"`
}

type rawResources struct {
	AllUsers  *bool            `yaml:"allUsers"`
	Labels    []map[string]int `yaml:"labels"`
	Units     []string         `yaml:"units"`
	Users     []string         `yaml:"users"`
	Scenarios []string         `yaml:"scenarios"`
}

// Load reads the YAML configuration, validates it against the schema
// (collecting every violation before failing) and returns the typed result.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}

	return Parse(contents)
}

// Parse validates and decodes a YAML configuration document.
func Parse(contents []byte) (*Config, error) {
	// First pass: loose tree for the total schema validation.
	var document map[string]any
	if err := yaml.Unmarshal(contents, &document); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := ValidateDocument(document); err != nil {
		return nil, err
	}

	// Second pass: typed decoding. The schema pass guarantees this succeeds.
	var raw rawConfig
	if err := yaml.Unmarshal(contents, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	cfg := &Config{
		Login:  raw.Login,
		Proxy:  raw.Proxy,
		Alarms: make(alarm.Ruleset, len(raw.Alarms)),
	}

	for code, rule := range raw.Alarms {
		cfg.Alarms[code] = toRule(rule)
	}

	return cfg, nil
}

// toRule converts a decoded rule into its domain representation,
// folding the optional fields into the tagged unions.
func toRule(raw rawRule) alarm.Rule {
	rule := alarm.Rule{
		Resources: toResourceSpec(raw.Resources),
	}

	switch {
	case raw.Message != nil:
		rule.Message = alarm.MessageSpec{Kind: alarm.MessageLiteral, Text: *raw.Message}
	case raw.MessageTemplate != nil:
		rule.Message = alarm.MessageSpec{Kind: alarm.MessageTemplate, TemplateName: *raw.MessageTemplate}
	}

	// A zero close period counts as not configured: the event stays open.
	if raw.CloseEventInHours != nil && *raw.CloseEventInHours > 0 {
		period := time.Duration(*raw.CloseEventInHours) * time.Hour
		rule.CloseEventAfter = &period
	}

	return rule
}

func toResourceSpec(raw rawResources) alarm.ResourceSpec {
	switch {
	case raw.AllUsers != nil && *raw.AllUsers:
		return alarm.ResourceSpec{Kind: alarm.ResourceAllUsers}
	case raw.Labels != nil:
		// Each entry is a single-key mapping; list order is preserved so
		// amounts stay paired with their labels by position.
		labels := make([]alarm.LabelCount, 0, len(raw.Labels))
		for _, entry := range raw.Labels {
			for name, amount := range entry {
				labels = append(labels, alarm.LabelCount{Name: name, Amount: amount})
			}
		}

		return alarm.ResourceSpec{Kind: alarm.ResourceLabels, Labels: labels}
	case raw.Units != nil:
		return alarm.ResourceSpec{Kind: alarm.ResourceUnits, Units: raw.Units}
	case raw.Users != nil:
		return alarm.ResourceSpec{Kind: alarm.ResourceUsers, Users: raw.Users}
	case raw.Scenarios != nil:
		return alarm.ResourceSpec{Kind: alarm.ResourceScenarios, Scenarios: raw.Scenarios}
	default:
		return alarm.ResourceSpec{Kind: alarm.ResourceUnknown}
	}
}
