// rawcopy copies a single file strictly through the safe handle layer in
// [fd], verifying the transfer with checksums. It exists to exercise the
// library end to end; it deliberately never touches os.File.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/desertwitch/linuxsys/internal/configuration"
	"github.com/desertwitch/linuxsys/internal/transfer"
	"github.com/desertwitch/linuxsys/internal/ui"
	"github.com/lmittmann/tint"
)

const (
	stackTraceBufMax = 1 << 24
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	uiEnabled  = flag.Bool("ui", false, "enable the UI")
	configPath = flag.String("config", "", "read configuration from this env file")
)

func setupLogging(w io.Writer) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	sigChan2 := make(chan os.Signal, 1)
	signal.Notify(sigChan2, syscall.SIGUSR1)
	go func() {
		for range sigChan2 {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen])
		}
	}()
}

func loadConfiguration() *configuration.AppConfiguration {
	appConfig := configuration.NewAppConfiguration()

	if *configPath == "" {
		return appConfig
	}

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	envMap, err := configHandler.ReadGeneric(*configPath)
	if err != nil {
		slog.Warn("Using defaults: failed to read configuration", "err", err, "path", *configPath)

		return appConfig
	}

	appConfig.Populate(configHandler, envMap)

	return appConfig
}

func startApp(ctx context.Context, wg *sync.WaitGroup, app *App) {
	defer wg.Done()

	if app.uiHandler != nil {
		slog.Info("Waiting for UI...")
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if app.uiHandler.Ready.Load() || app.uiHandler.Failed.Load() {
				break
			}
		}
	}

	if err := app.Launch(ctx); err != nil {
		ExitCode = 1
	}

	if app.uiHandler != nil {
		app.uiHandler.Quit()
	}
}

func startUI(cancel context.CancelFunc, wg *sync.WaitGroup, app *App) {
	defer wg.Done()
	defer cancel()

	if err := app.LaunchUI(); err != nil {
		slog.Error("Failed to launch UI", "err", err)
		ExitCode = 1
	}
}

func main() {
	defer func() { os.Exit(ExitCode) }()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] SOURCE DEST\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 { //nolint:mnd
		flag.Usage()
		ExitCode = 2

		return
	}

	setupLogging(os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandlers(cancel)

	appConfig := loadConfiguration()
	transferHandler := transfer.NewHandler(appConfig.BufferSize, appConfig.Verify)

	var uiHandler *ui.Handler
	if *uiEnabled {
		uiHandler = ui.NewHandler(ctx, cancel, transferHandler)
		setupLogging(uiHandler.LogWriter)
	}

	app := NewApp(appConfig, transferHandler, uiHandler, flag.Arg(0), flag.Arg(1))

	slog.Info("rawcopy starting", "version", Version, "source", app.sourcePath, "dest", app.destPath)

	var wg sync.WaitGroup

	wg.Add(1)
	go startApp(ctx, &wg, app)

	if uiHandler != nil {
		wg.Add(1)
		go startUI(cancel, &wg, app)
	}

	wg.Wait()
}
