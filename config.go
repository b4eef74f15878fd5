package sitecontent

import "github.com/goliatone/go-sitecontent/internal/runtimeconfig"

var ErrConfigInvalid = runtimeconfig.ErrConfigInvalid

type (
	Config         = runtimeconfig.Config
	LocaleConfig   = runtimeconfig.LocaleConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	RoutesConfig   = runtimeconfig.RoutesConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	MetricsConfig  = runtimeconfig.MetricsConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
