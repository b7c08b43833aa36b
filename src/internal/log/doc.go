// Package log provides simple leveled logging for hosts-concat.
//
// Messages are written with a colored level prefix: DEBUG, INFO and WARN go
// to stdout, ERROR goes to stderr. Debug output is only shown in verbose
// mode.
//
// # Example Usage
//
//	log.Infof("Scanning %s", cfg.ScanFrom)
//	log.Warnf("Failed to load allow-list: %v", err)
//
//	log.SetVerbose(true)
//	log.Debugf("Parsed %d hosts from %s", len(m), path)
//
// Tests can redirect output with SetOutput and silence it with DisableLogs.
// All functions are safe for concurrent use.
package log
