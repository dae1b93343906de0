// Package trigger orchestrates one alarm trigger invocation: configuration
// loading and validation, credential resolution, resource and message
// variant selection over the GroupAlarm catalogs, request assembly and the
// final dispatch in live or preview mode.
package trigger
