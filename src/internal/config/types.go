package config

import (
	"path/filepath"

	"github.com/maksimkurb/hosts-concat/src/internal/utils"
)

const (
	DefaultScanFrom    = "./hosts"
	DefaultSaveTo      = "./build/hosts.txt"
	DefaultAllowHosts  = "./allow.txt"
	DefaultHostIP      = "127.0.0.1"
	DefaultLineSpace   = "\t"
	DefaultLineBreak   = "\n"
	DefaultScanPattern = "*.txt"
	DefaultHeader      = "#\n" +
		"# List of advertisement host names built from different sources.\n" +
		"# Build date: {{date}}\n" +
		"#"
)

type Config struct {
	// ScanFrom is the directory scanned (non-recursively) for block-lists.
	ScanFrom string `toml:"scanFrom" json:"scanFrom" validate:"required"`
	// SaveTo is the output hosts file. Its parent directory is created when missing.
	SaveTo string `toml:"saveTo" json:"saveTo" validate:"required"`
	// AllowHosts is the allow-list file. Empty disables the allow-list.
	AllowHosts string `toml:"allowHosts" json:"allowHosts"`
	// HostIP is the address written in front of every host.
	HostIP string `toml:"hostIp" json:"hostIp" validate:"required,ip"`
	// LineSpace separates the address from the host name.
	LineSpace string `toml:"lineSpace" json:"lineSpace"`
	// LineBreak terminates every line.
	LineBreak string `toml:"lineBreak" json:"lineBreak" validate:"required"`
	// ScanPattern is the glob input file names must match, compared case-insensitively.
	ScanPattern string `toml:"scanPattern" json:"scanPattern" validate:"required,glob_pattern"`
	// Concurrency limits parallel file reads (0 = unbounded).
	Concurrency int `toml:"concurrency" json:"concurrency" validate:"gte=0"`
	// SkipUnchanged leaves the output file untouched when its content would not change.
	SkipUnchanged bool `toml:"skipUnchanged" json:"skipUnchanged"`
	// Header is a template prepended to the output by the CLI. Available variables: {{date}}, {{count}}, {{scanFrom}}, {{saveTo}}.
	// Empty disables the header.
	Header string `toml:"header" json:"header"`

	_absConfigFilePath string
}

// Default returns a Config holding the built-in defaults.
func Default() *Config {
	return &Config{
		ScanFrom:    DefaultScanFrom,
		SaveTo:      DefaultSaveTo,
		AllowHosts:  DefaultAllowHosts,
		HostIP:      DefaultHostIP,
		LineSpace:   DefaultLineSpace,
		LineBreak:   DefaultLineBreak,
		ScanPattern: DefaultScanPattern,
		Header:      DefaultHeader,
	}
}

// GetConfigDir returns the directory of the loaded configuration file, or "." when
// the Config was not loaded from a file.
func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return "."
	}
	return filepath.Dir(c._absConfigFilePath)
}

// GetAbsScanDir returns the input directory resolved against GetConfigDir.
func (c *Config) GetAbsScanDir() string {
	return utils.GetAbsolutePath(c.ScanFrom, c.GetConfigDir())
}

// GetAbsOutputPath returns the output file path resolved against GetConfigDir.
func (c *Config) GetAbsOutputPath() string {
	return utils.GetAbsolutePath(c.SaveTo, c.GetConfigDir())
}

// GetAbsAllowListPath returns the allow-list path resolved against GetConfigDir,
// or "" when the allow-list is disabled.
func (c *Config) GetAbsAllowListPath() string {
	if c.AllowHosts == "" {
		return ""
	}
	return utils.GetAbsolutePath(c.AllowHosts, c.GetConfigDir())
}
