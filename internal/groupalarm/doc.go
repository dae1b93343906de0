// Package groupalarm is the REST client for the GroupAlarm.com API.
//
// It resolves symbolic resource names to remote numeric ids by fetching the
// catalog of an endpoint kind and filtering client-side, and it submits the
// assembled alarm request to the live or preview endpoint. Service-reported
// soft errors in response bodies are logged as diagnostics; non-success
// status codes surface as RemoteError.
package groupalarm
