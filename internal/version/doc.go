// Package version exposes build metadata for the trigger CLI.
//
// Version, Commit and BuildTime default to development values and are
// overridden via Go ldflags by release builds. Short and Full render the
// version string for the version subcommand and for logs.
package version
