// Package config loads and validates run configuration from command-line
// flags, PCONCAT_* environment variables, and an optional .env file, in
// that order of precedence.
package config
