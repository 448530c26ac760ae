package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/desertwitch/linuxsys/fd"
	"github.com/desertwitch/linuxsys/internal/configuration"
	"github.com/desertwitch/linuxsys/internal/transfer"
	"github.com/desertwitch/linuxsys/internal/ui"
	"github.com/desertwitch/linuxsys/sys"
	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

// permMask extracts the permission bits from a stat mode word.
const permMask = 0o777

// App wires the configuration, the copy engine and the optional UI.
type App struct {
	config          *configuration.AppConfiguration
	transferHandler *transfer.Handler
	uiHandler       *ui.Handler

	sourcePath string
	destPath   string
}

// NewApp returns a pointer to a new [App].
func NewApp(config *configuration.AppConfiguration,
	transferHandler *transfer.Handler,
	uiHandler *ui.Handler,
	sourcePath, destPath string,
) *App {
	return &App{
		config:          config,
		transferHandler: transferHandler,
		uiHandler:       uiHandler,
		sourcePath:      sourcePath,
		destPath:        destPath,
	}
}

// Launch runs the copy end to end and logs the outcome.
func (app *App) Launch(ctx context.Context) error {
	start := time.Now()

	if err := app.copy(ctx); err != nil {
		slog.Error("Transfer failed", "err", err, "source", app.sourcePath, "dest", app.destPath)

		return err
	}

	elapsed := time.Since(start)
	progress := app.transferHandler.Progress()

	slog.Info("Transfer complete",
		"copied", humanize.IBytes(progress.DoneBytes),
		"elapsed", elapsed.Round(time.Millisecond),
		"source", app.sourcePath,
		"dest", app.destPath,
	)

	return nil
}

// LaunchUI starts the user interface.
func (app *App) LaunchUI() error {
	if err := app.uiHandler.Launch(); err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	return nil
}

//nolint:funlen
func (app *App) copy(ctx context.Context) error {
	srcFile, err := fd.Open(app.sourcePath, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close() //nolint:errcheck

	st, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file: %w", err)
	}

	dstFile, err := fd.Open(app.destPath,
		unix.O_WRONLY|unix.O_CREAT|unix.O_EXCL|unix.O_CLOEXEC, uint32(st.Mode)&permMask)
	if err != nil {
		return fmt.Errorf("failed to open destination file %s: %w", app.destPath, err)
	}

	var transferComplete bool
	defer func() {
		if !transferComplete {
			if err := sys.Unlinkat(unix.AT_FDCWD, app.destPath, 0); err != nil {
				slog.Warn("Failed to remove partial destination file", "err", err, "dest", app.destPath)
			}
		}
	}()

	result, err := app.transferHandler.Copy(ctx, srcFile, dstFile, uint64(st.Size))
	if err != nil {
		dstFile.Close() //nolint:errcheck

		return fmt.Errorf("failed to copy file: %w", err)
	}

	// A close can surface write-back errors; it must not pass silently.
	if err := dstFile.Close(); err != nil {
		return fmt.Errorf("failed to close destination file: %w", err)
	}

	transferComplete = true

	if app.config.Verify {
		slog.Info("Checksums verified", "blake3", result.SourceSum)
	}

	return nil
}
