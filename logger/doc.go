// Package logger provides structured logging for pconcat using zerolog.
//
// All log output goes to standard error by default: standard output is the
// concatenated data stream and must stay byte-clean. It supports JSON and
// console formats, log level configuration, and component-scoped loggers
// with structured fields.
//
// # Usage
//
//	log := logger.NewFromEnv("pconcat").WithComponent("joiner")
//	log.Info("task drained", logger.Fields("task", 3, "bytes", n))
package logger
