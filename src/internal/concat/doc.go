// Package concat runs one hosts build: it reads the allow-list, scans and reads
// the input directory, merges the parsed files in name order, drops allowed
// hosts, renders the result and saves it.
//
// Failures of individual steps never abort a run. They are delivered to the
// error hooks and the run continues with what it has:
//
//   - an unreadable allow-list excludes nothing;
//   - an unreadable input directory yields an empty output;
//   - an unreadable input file contributes nothing;
//   - a failed write skips the finish hooks.
//
// Usage:
//
//	h := hooks.New().
//		OnError(func(err error) { log.Warnf("%v", err) }).
//		OnFinish(func(cfg *config.Config) { log.Infof("Saved %s", cfg.SaveTo) })
//	report := concat.Run(cfg, h)
package concat
