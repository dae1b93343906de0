// Package alarm contains core domain types for the alarm trigger logic.
//
// It defines Rule (how one alert code turns into an alarm), the ResourceSpec
// and MessageSpec tagged unions whose variants are mutually exclusive by
// construction, and Ruleset mapping alert codes to rules.
package alarm
