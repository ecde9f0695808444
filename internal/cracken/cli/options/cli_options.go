// Package options holds the CLI-wide option bag shared across the root
// command and every subcommand: app configuration, app-level flags
// (--debug, --config, --log-format) and the in/out streams.
package options

import (
	"io"
	"os"

	"github.com/cracken/cracken/internal/config"
)

// AppOptions enumerates the app-level flags parsed before any subcommand
// runs (§9 "Configuration structs": one structure per subcommand, and one
// for the flags that apply regardless of which subcommand is chosen).
type AppOptions struct {
	ConfigPath string
	DebugMode  bool
	LogFormat  string
}

// CliOptions is the root option bag threaded through cli.Cli and every
// subcommand constructor.
type CliOptions struct {
	in        io.Reader
	out       io.Writer
	appConfig *config.AppConfig
	appOpts   *AppOptions
	version   string
}

// NewCliOptions builds a CliOptions bound to the process's real stdin/stdout.
func NewCliOptions(version string) *CliOptions {
	return &CliOptions{
		in:        os.Stdin,
		out:       os.Stdout,
		appConfig: &config.AppConfig{},
		appOpts:   &AppOptions{},
		version:   version,
	}
}

func (o *CliOptions) In() io.Reader { return o.in }

func (o *CliOptions) SetIn(in io.Reader) { o.in = in }

func (o *CliOptions) Out() io.Writer { return o.out }

func (o *CliOptions) SetOut(out io.Writer) { o.out = out }

func (o *CliOptions) AppConfig() *config.AppConfig { return o.appConfig }

func (o *CliOptions) SetAppConfig(c *config.AppConfig) { o.appConfig = c }

func (o *CliOptions) AppOpts() *AppOptions { return o.appOpts }

func (o *CliOptions) SetAppOpts(a *AppOptions) { o.appOpts = a }

func (o *CliOptions) Version() string { return o.version }

func (o *CliOptions) SetVersion(v string) { o.version = v }

func (o *CliOptions) DebugMode() bool { return o.appOpts.DebugMode }
