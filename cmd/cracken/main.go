package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/cracken/cracken/internal/cracken/app"
	"github.com/cracken/cracken/internal/errkind"
)

var version = "dev"

func main() {
	application := app.NewApp(version)
	err := application.Run()

	os.Exit(exitCode(err))
}

// exitCode maps a run's terminal error to the exit code §6/§7 calls for:
// 0 success, 1 user-input error (the default for anything not an I/O write
// failure, since the core hot path cannot itself fail except on I/O), 2 an
// I/O error during emission.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var writeErr *errkind.IOWriteFailed
	if errors.As(err, &writeErr) {
		return 2
	}

	return 1
}
