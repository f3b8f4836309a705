// Package config loads the users API settings.
//
// Sources are layered, each overriding the non-zero fields of the previous:
//  1. environment variables (APP_, SERVER_, SECURITY_, STORAGE_DB_, QUERY_)
//  2. command-line flags
//  3. the JSON file named by -c / CONFIG
//
// Anything still zero afterwards takes the value from defaults.go, and the
// result is validated before [GetStructuredConfig] returns it.
package config
