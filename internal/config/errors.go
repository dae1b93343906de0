package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// ErrorKind distinguishes where an invalid configuration was detected.
type ErrorKind int

const (
	// KindSchema marks violations found while validating the document
	// against the configuration schema.
	KindSchema ErrorKind = iota
	// KindLogic marks violations found while selecting among the
	// configured variants, after the schema pass.
	KindLogic
)

// String returns the human-readable kind label.
func (k ErrorKind) String() string {
	if k == KindLogic {
		return "logic"
	}

	return "schema"
}

// ConfigurationError reports an invalid alarm configuration. For schema
// errors Violations aggregates every violation found in the document, not
// just the first one.
type ConfigurationError struct {
	// Kind tells whether the document or the variant logic was at fault.
	Kind ErrorKind
	// Violations holds one or more violations, aggregated via multierr.
	Violations error
}

// NewSchemaError wraps the collected schema violations.
func NewSchemaError(violations ...error) *ConfigurationError {
	return &ConfigurationError{Kind: KindSchema, Violations: multierr.Combine(violations...)}
}

// NewLogicError reports a single variant-selection violation.
func NewLogicError(message string) *ConfigurationError {
	return &ConfigurationError{Kind: KindLogic, Violations: fmt.Errorf("incorrect configuration: %s", message)}
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration (%s): %v", e.Kind, e.Violations)
}

// Unwrap exposes the aggregated violations for errors.Is/As inspection.
func (e *ConfigurationError) Unwrap() error {
	return e.Violations
}

// EnvironmentConflictError reports a credential that was supplied both in
// the environment and in the configuration file, or in neither.
type EnvironmentConflictError struct {
	// Field is the human-readable credential name.
	Field string
	// EnvVar is the environment variable carrying the credential.
	EnvVar string
	// BothSet is true when both sources supplied the credential and false
	// when neither did.
	BothSet bool
}

// Error implements the error interface.
func (e *EnvironmentConflictError) Error() string {
	if e.BothSet {
		return fmt.Sprintf("the GroupAlarm %s is both provided in the environment variable %s and in the configuration file",
			e.Field, e.EnvVar)
	}

	return fmt.Sprintf("the GroupAlarm %s either needs to be provided in the environment variable %s or in the configuration file",
		e.Field, e.EnvVar)
}
