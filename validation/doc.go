// Package validation provides tag-driven struct validation for run
// configuration, mapping failures to invalid configuration errors.
package validation
