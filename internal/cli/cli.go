package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/shelf/internal/app"
	"github.com/thenoetrevino/shelf/internal/config"
	"github.com/thenoetrevino/shelf/internal/testutil"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false for an App injected by tests; Close leaves it open
	owned bool
}

// Options carries the global flags from the root command
type Options struct {
	ConfigPath string
	Memory     bool
}

type optionsKey struct{}

// WithOptions stores the global flags on ctx
func WithOptions(ctx context.Context, opts Options) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

// OptionsFrom returns the global flags stored on ctx
func OptionsFrom(ctx context.Context) Options {
	opts, _ := ctx.Value(optionsKey{}).(Options)
	return opts
}

// LoadConfig reads the config file named by the global flags, or the
// default one, and applies --memory
func LoadConfig(ctx context.Context) (*config.Config, error) {
	opts := OptionsFrom(ctx)

	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFrom(opts.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.Memory {
		cfg.Storage.Backend = config.BackendMemory
	}
	return cfg, nil
}

// NewCLI opens the store selected by the configuration
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		return nil, err
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &CLI{App: application, owned: true}, nil
}

// GetCLIFromContext returns a CLI over the App injected by tests, or opens
// a new one from the configuration
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && testApp != nil {
		return &CLI{App: testApp}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
