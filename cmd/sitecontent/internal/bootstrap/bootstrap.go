package bootstrap

import (
	"fmt"
	"strings"

	sitecontent "github.com/goliatone/go-sitecontent"
)

// Options captures configuration for CLI bootstraps.
type Options struct {
	ContentDir    string
	DefaultLocale string
	BaseURL       string
	Workers       int
	LogLevel      string
	LogFormat     string
	Verbose       bool
	ModuleOptions []sitecontent.Option
}

// BuildModule constructs a module configured from CLI flags.
func BuildModule(opts Options) (*sitecontent.Module, error) {
	cfg := sitecontent.DefaultConfig()
	if dir := strings.TrimSpace(opts.ContentDir); dir != "" {
		cfg.ContentDir = dir
	}
	if loc := strings.TrimSpace(opts.DefaultLocale); loc != "" {
		cfg.DefaultLocale = loc
	}
	cfg.Routes.BaseURL = strings.TrimSpace(opts.BaseURL)
	cfg.Workers = opts.Workers

	if opts.Verbose {
		cfg.Logging.Provider = "gologger"
		cfg.Logging.Format = "console"
		cfg.Logging.Level = "debug"
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}

	module, err := sitecontent.New(cfg, opts.ModuleOptions...)
	if err != nil {
		return nil, fmt.Errorf("initialise sitecontent module: %w", err)
	}
	return module, nil
}
