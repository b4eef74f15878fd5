package bootstrap

import (
	"errors"
	"testing"

	sitecontent "github.com/goliatone/go-sitecontent"
	ditesting "github.com/goliatone/go-sitecontent/internal/di/testing"
)

func TestBuildModuleUsesContentFS(t *testing.T) {
	module, err := BuildModule(Options{
		BaseURL:       "https://example.com",
		ModuleOptions: []sitecontent.Option{sitecontent.WithContentFS(ditesting.Files())},
	})
	if err != nil {
		t.Fatalf("build module: %v", err)
	}
	if module.Container().Config.Routes.BaseURL != "https://example.com" {
		t.Fatalf("expected base url to be applied, got %+v", module.Container().Config.Routes)
	}
	if module.Commands() == nil {
		t.Fatal("expected command handlers")
	}
}

func TestBuildModuleRejectsInvalidFlags(t *testing.T) {
	_, err := BuildModule(Options{
		Workers:       -1,
		ModuleOptions: []sitecontent.Option{sitecontent.WithContentFS(ditesting.Files())},
	})
	if !errors.Is(err, sitecontent.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestBuildModuleVerboseEnablesGoLogger(t *testing.T) {
	module, err := BuildModule(Options{
		Verbose:       true,
		ModuleOptions: []sitecontent.Option{sitecontent.WithContentFS(ditesting.Files())},
	})
	if err != nil {
		t.Fatalf("build module: %v", err)
	}
	if module.Container().LoggerProvider() == nil {
		t.Fatal("expected logger provider when verbose")
	}
}
