package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	domainerrors "github.com/maksimkurb/hosts-concat/src/internal/errors"
	"github.com/maksimkurb/hosts-concat/src/internal/log"
)

// Overrides maps option names (scanFrom, saveTo, ...) to values that replace the defaults.
type Overrides map[string]string

// New returns the defaults with overrides applied, validated.
func New(overrides Overrides) (*Config, error) {
	cfg := Default()
	if err := cfg.ApplyOverrides(overrides); err != nil {
		return nil, err
	}
	if err := cfg.ValidateConfig(); err != nil {
		return nil, domainerrors.NewConfigError("invalid configuration", err)
	}
	return cfg, nil
}

// LoadConfig reads a TOML file over the defaults. Keys absent from the file keep
// their default values; unknown keys are rejected. The result is not validated.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, domainerrors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domainerrors.NewConfigError(fmt.Sprintf("configuration file not found: %s", configFile), nil)
		}
		return nil, domainerrors.NewConfigError("failed to read config file", err)
	}

	config := Default()
	decoder := toml.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, domainerrors.NewConfigError("failed to parse config file", err)
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			log.Errorf("%s", serr.String())
			return nil, domainerrors.NewConfigError("unknown keys in config file", err)
		}
		return nil, domainerrors.NewConfigError("failed to parse config file", err)
	}

	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Scan directory: %s", config.GetAbsScanDir())

	return config, nil
}

// ApplyOverrides replaces the options named in overrides. Unknown names and
// values that cannot be converted are reported as configuration errors.
func (c *Config) ApplyOverrides(overrides Overrides) error {
	// Sorted so that the first reported error does not depend on map order.
	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := overrides[key]
		switch key {
		case "scanFrom":
			c.ScanFrom = value
		case "saveTo":
			c.SaveTo = value
		case "allowHosts":
			c.AllowHosts = value
		case "hostIp":
			c.HostIP = value
		case "lineSpace":
			c.LineSpace = value
		case "lineBreak":
			c.LineBreak = value
		case "scanPattern":
			c.ScanPattern = value
		case "header":
			c.Header = value
		case "concurrency":
			n, err := strconv.Atoi(value)
			if err != nil {
				return domainerrors.NewConfigError(fmt.Sprintf("option %q must be an integer", key), err)
			}
			c.Concurrency = n
		case "skipUnchanged":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return domainerrors.NewConfigError(fmt.Sprintf("option %q must be a boolean", key), err)
			}
			c.SkipUnchanged = b
		default:
			return domainerrors.NewConfigError(fmt.Sprintf("unknown option %q", key), nil)
		}
	}

	return nil
}

// SerializeConfig renders the configuration as TOML.
func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}
