package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cracken/cracken/internal/cracken/cli/commands"
	"github.com/cracken/cracken/internal/cracken/cli/commands/root"
	clierrors "github.com/cracken/cracken/internal/cracken/cli/errors"
	"github.com/cracken/cracken/internal/cracken/cli/options"
	"github.com/cracken/cracken/internal/cracken/logger/handlers"
)

// Cli owns the cobra command tree and the option bag threaded through it.
type Cli struct {
	opts *options.CliOptions
	cmd  *cobra.Command
}

func NewCli(opts *options.CliOptions) *Cli {
	return &Cli{
		opts: opts,
		cmd:  root.NewRootCommand(opts),
	}
}

func (cli *Cli) MustSetup() {
	if err := cli.handleAppFlags(); err != nil {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}

	if err := cli.initialize(); err != nil {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}
}

func (cli *Cli) Run(ctx context.Context) error {
	var usageErr *clierrors.UsageError

	args := root.DefaultToGenerate(os.Args[1:])
	cli.cmd.SetArgs(args)

	err := cli.cmd.ExecuteContext(ctx)
	if err != nil && errors.As(err, &usageErr) {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}

	return err //nolint:wrapcheck
}

func (cli *Cli) Options() *options.CliOptions {
	return cli.opts
}

// handleAppFlags parses the root command's own flags before executing it,
// so a malformed app-level flag is reported the same way as any other
// usage error (exit code 1) rather than cobra's default stderr dump.
func (cli *Cli) handleAppFlags() error {
	cmd := cli.cmd

	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	flags.SetInterspersed(false)

	flags.AddFlagSet(cmd.Flags())
	flags.AddFlagSet(cmd.PersistentFlags())

	args := root.DefaultToGenerate(os.Args[1:])

	if err := flags.Parse(args); err != nil {
		return commands.FlagErrorFunc(cmd, err)
	}

	return nil
}

// initialize loads the app config, merges CLI overrides and wires the
// logger before any subcommand runs.
func (cli *Cli) initialize() error {
	cliOpts := cli.opts
	appOpts := cliOpts.AppOpts()
	appConfig := cliOpts.AppConfig()

	if err := appConfig.ParseFromFile(appOpts.ConfigPath); err != nil {
		return errors.WithMessage(err, "error during initializing cli")
	}

	if appOpts.LogFormat != "" {
		appConfig.LogFormat = appOpts.LogFormat
	}

	logLevel := slog.LevelInfo
	if appOpts.DebugMode {
		logLevel = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: logLevel}

	var logHandler slog.Handler

	if appConfig.LogFormat == "json" {
		logHandler = slog.NewJSONHandler(cliOpts.Out(), handlerOpts)
	} else {
		logHandler = handlers.NewTextHandler(cliOpts.Out(), handlerOpts)
	}

	slog.SetDefault(slog.New(logHandler))

	return nil
}
