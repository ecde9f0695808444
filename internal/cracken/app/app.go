// Package app wires the CLI into a process: signal-aware lifecycle,
// stack-trace logging in debug mode, and the error that decides the
// process's exit code (mapped by cmd/cracken/main.go).
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"

	"github.com/cracken/cracken/internal/cracken/cli"
	"github.com/cracken/cracken/internal/cracken/cli/options"
)

type App struct {
	cliOpts *options.CliOptions
	cli     *cli.Cli
}

func NewApp(version string) *App {
	cliOpts := options.NewCliOptions(version)
	crackenCli := cli.NewCli(cliOpts)
	crackenCli.MustSetup()

	return &App{
		cliOpts: cliOpts,
		cli:     crackenCli,
	}
}

// Run executes the CLI to completion and returns the error that should
// decide the process's exit code (nil on success or on a clean signal
// shutdown).
func (a *App) Run() error {
	ctx, cancelCtx := a.notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	if err := a.cli.Run(ctx); err != nil {
		cancelCtx(err)
	}

	//nolint:errorlint
	switch cause := context.Cause(ctx); cause.(type) {
	case nil:
		return nil
	case *SignalError:
		slog.Warn("cracken finished due to event", slog.String("event", cause.Error()))

		return nil
	default:
		slog.Error("cracken finished due error", slog.String("error", cause.Error()))

		if a.cliOpts.DebugMode() {
			a.logStackTrace(cause)
		}

		return cause
	}
}

func (a *App) notifyContext(ctx context.Context, signals ...os.Signal) (context.Context, context.CancelCauseFunc) {
	osSignalChannel := make(chan os.Signal, 1)
	signal.Notify(osSignalChannel, signals...)

	ctxCause, cancelCtx := context.WithCancelCause(ctx)

	go func() {
		osSignal := <-osSignalChannel
		slog.Info("got os signal, canceling", slog.String("signal", osSignal.String()))
		cancelCtx(NewSignalError(osSignal))

		osSignal = <-osSignalChannel
		slog.Error("got os signal, force exit", slog.String("signal", osSignal.String()))
		os.Exit(1)
	}()

	return ctxCause, cancelCtx
}

func (a *App) logStackTrace(err error) {
	var e stackTracer
	if errors.As(err, &e) {
		for _, frame := range e.StackTrace() {
			frameTrace := strings.Split(fmt.Sprintf("%+v", frame), "\n")
			slog.Error(frameTrace[0])
			slog.Error(frameTrace[1])
		}
	}
}
