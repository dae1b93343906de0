// Package config loads the YAML alarm configuration and enforces its
// contracts before any network traffic happens.
//
// Load runs a total schema validation pass over the loosely-typed document,
// collecting every violation, then decodes the typed result into domain
// values. ResolveCredentials applies the env-or-file exclusivity contract
// for the GroupAlarm login, and Proxy.URL builds the outbound proxy URL.
package config
