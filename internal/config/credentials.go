package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// EnvOrganizationID is the environment variable carrying the organization id.
	EnvOrganizationID = "ORGANIZATION_ID"
	// EnvAPIToken is the environment variable carrying the API token.
	EnvAPIToken = "API_TOKEN"
)

// Credentials are the resolved GroupAlarm login values for one invocation.
type Credentials struct {
	// OrganizationID is the numeric GroupAlarm organization id.
	OrganizationID int
	// APIToken authenticates requests against the GroupAlarm API.
	APIToken string
}

// ResolveCredentials applies the credential sourcing contract: each value
// comes from the configuration file or from its environment variable, never
// both and never neither. Conflicts are detected before any network call.
func ResolveCredentials(cfg *Config) (Credentials, error) {
	var (
		creds Credentials
		login Login
	)

	if cfg != nil && cfg.Login != nil {
		login = *cfg.Login
	}

	rawID, idInEnv := os.LookupEnv(EnvOrganizationID)

	switch {
	case login.OrganizationID != nil && idInEnv:
		return Credentials{}, &EnvironmentConflictError{
			Field:   "organization id",
			EnvVar:  EnvOrganizationID,
			BothSet: true,
		}
	case login.OrganizationID != nil:
		creds.OrganizationID = *login.OrganizationID
	case idInEnv:
		id, err := strconv.Atoi(rawID)
		if err != nil {
			return Credentials{}, fmt.Errorf("parse %s: %w", EnvOrganizationID, err)
		}

		creds.OrganizationID = id
	default:
		return Credentials{}, &EnvironmentConflictError{
			Field:  "organization id",
			EnvVar: EnvOrganizationID,
		}
	}

	token, tokenInEnv := os.LookupEnv(EnvAPIToken)

	switch {
	case login.APIToken != nil && tokenInEnv:
		return Credentials{}, &EnvironmentConflictError{
			Field:   "API token",
			EnvVar:  EnvAPIToken,
			BothSet: true,
		}
	case login.APIToken != nil:
		creds.APIToken = *login.APIToken
	case tokenInEnv:
		creds.APIToken = token
	default:
		return Credentials{}, &EnvironmentConflictError{
			Field:  "API token",
			EnvVar: EnvAPIToken,
		}
	}

	return creds, nil
}
