package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maksimkurb/hosts-concat/src/internal/config"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	// ConfigPath is the TOML file to load. Empty means built-in defaults.
	ConfigPath string
	Verbose    bool
}

// overridesFlag collects repeated -set key=value flags.
type overridesFlag config.Overrides

func (o overridesFlag) String() string {
	pairs := make([]string, 0, len(o))
	for key, value := range o {
		pairs = append(pairs, key+"="+value)
	}
	return strings.Join(pairs, ",")
}

func (o overridesFlag) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	o[key] = unescape(value)
	return nil
}

// unescape interprets Go escape sequences such as \t and \r\n so that
// separators can be passed from a shell. Values that are not valid escaped
// strings (Windows paths, for example) are returned as is.
func unescape(value string) string {
	if !strings.Contains(value, `\`) {
		return value
	}
	unquoted, err := strconv.Unquote(`"` + strings.ReplaceAll(value, `"`, `\"`) + `"`)
	if err != nil {
		return value
	}
	return unquoted
}

// loadAndValidateConfigOrFail loads the configuration file (or the defaults),
// applies the command line overrides and validates the result.
func loadAndValidateConfigOrFail(configPath string, overrides config.Overrides) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadConfig(configPath); err != nil {
			return nil, fmt.Errorf("failed to load configuration: %v", err)
		}
	}

	if err := cfg.ApplyOverrides(overrides); err != nil {
		return nil, err
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}
