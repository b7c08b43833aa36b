// Package utils contains small path and file helpers shared by the config and
// lists packages.
//
// Relative paths in the configuration are resolved against the directory of the
// configuration file:
//
//	dir := utils.GetAbsolutePath("./hosts", "/etc/hosts-concat")
//	// dir == "/etc/hosts-concat/hosts"
package utils
