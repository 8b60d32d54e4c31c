// Package util provides small shared helpers: size-string parsing for
// configuration flags and secret masking for log output.
package util
