// Package logger provides structured logging for the speaker analytics
// engine using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("analysis")
//	log.Info("analysis complete", logger.Fields("speakers", 3))
package logger
