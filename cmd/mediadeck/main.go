// Package main provides the deck server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	apiconnect "github.com/osa030/mediadeck/internal/api/connect"
	"github.com/osa030/mediadeck/internal/app/session"
	"github.com/osa030/mediadeck/internal/gen/mediadeck/v1/mediadeckv1connect"
	"github.com/osa030/mediadeck/internal/infra/config"
	"github.com/osa030/mediadeck/internal/infra/engine"
	"github.com/osa030/mediadeck/internal/infra/logger"
	"github.com/osa030/mediadeck/internal/infra/store"
)

const defaultConfigPath = "config/mediadeck.yaml"

var (
	app        = kingpin.New("mediadeck", "Headless multi-session media deck")
	configPath = app.Flag("config", "Path to config file").Default(defaultConfigPath).String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stdout)").String()

	// start command (default)
	startCmd   = app.Command("start", "Start the server (default)").Default()
	startFiles = startCmd.Arg("files", "Media files to queue in the first session").Strings()

	// list-engines command
	listEnginesCmd = app.Command("list-engines", "List available playback engines and exit")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if command == listEnginesCmd.FullCommand() {
		printEngines()
		return
	}

	loggerConfig := logger.Config{
		Output: "stdout",
		Level:  "info",
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = *logfile
	}
	logCloser, err := logger.Init(loggerConfig)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logCloser.Close()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}

	if err := run(cfg, *startFiles); err != nil {
		zlog.Error().Msgf("Server error: %v", err)
		logCloser.Close()
		os.Exit(1)
	}
}

// loadConfig reads the config file. A missing file at the default
// location falls back to the built-in configuration.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			zlog.Info().Msgf("No config at %s, using defaults", path)
			return config.Default()
		}
	}
	zlog.Info().Msgf("Loading config from %s", path)
	return config.Load(path)
}

// run executes the main server logic. Using a separate function ensures
// defer statements are executed even when returning with an error.
func run(cfg *config.Config, files []string) error {
	newEngine, err := engine.NewFactory(cfg.Engine)
	if err != nil {
		return errors.Wrap(err, "invalid engine config")
	}
	zlog.Info().Msgf("Using %s engine", cfg.Engine.Type)

	playlistStore := store.NewSettings(cfg.Store.Path)
	zlog.Info().Msgf("Playlist store: %s (restore=%t)", playlistStore.Path(), cfg.RestorePlaylist())
	sessionMgr := session.NewManager(cfg, newEngine, playlistStore)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := sessionMgr.Start(ctx, files); err != nil {
		return errors.Wrap(err, "failed to start session manager")
	}

	deckService := apiconnect.NewDeckService(sessionMgr, cfg)
	deckPath, deckHandler := mediadeckv1connect.NewDeckServiceHandler(
		deckService,
		connect.WithInterceptors(apiconnect.NewAuthInterceptor(cfg.Server.Token)),
	)
	if cfg.Server.Token == "" {
		zlog.Warn().Msg("No control token configured, RPC calls are not authenticated")
	}

	mux := http.NewServeMux()
	mux.Handle(deckPath, deckHandler)

	// Create server with h2c (HTTP/2 cleartext) support
	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           h2c.NewHandler(mux, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrCh := make(chan error, 1)
	serverStartedCh := make(chan struct{})

	go func() {
		zlog.Info().Msgf("Starting server: addr=%s", cfg.Server.Addr)
		close(serverStartedCh)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	<-serverStartedCh
	time.Sleep(100 * time.Millisecond)

	executeHooks(cfg.Server.Hooks.OnStarted, "on_started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-sigCh:
		zlog.Info().Msg("Received shutdown signal...")
	case <-sessionMgr.Done():
		zlog.Info().Msg("Sessions closed, shutting down...")
	case err := <-serverErrCh:
		runErr = errors.Wrap(err, "server error")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Close sessions first so notice streams end and the playlist is saved
	sessionMgr.Close()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Msgf("Failed to shutdown server: %v", err)
	}

	zlog.Info().Msg("Server stopped")

	executeHooks(cfg.Server.Hooks.OnStopped, "on_stopped")

	return runErr
}

// printEngines prints available engines.
func printEngines() {
	fmt.Println("Available Engines:")
	for _, name := range engine.Types() {
		switch name {
		case engine.TypeSimulated:
			fmt.Printf("  %-12s - %s\n", name, "timer-driven engine without audio output")
		case engine.TypeBeep:
			fmt.Printf("  %-12s - %s\n", name, "WAV playback through the system speaker")
		default:
			fmt.Printf("  %s\n", name)
		}
	}
}

// executeHooks runs a list of shell commands.
func executeHooks(hooks []string, stage string) {
	if len(hooks) == 0 {
		return
	}

	zlog.Info().Msgf("Executing %s hooks (%d commands)", stage, len(hooks))

	for _, hook := range hooks {
		zlog.Info().Msgf("Executing hook: %s", hook)
		// Use sh -c to allow shell features like redirection or pipes
		cmd := exec.Command("sh", "-c", hook)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			zlog.Error().Err(err).Msgf("Failed to execute hook: %s", hook)
		}
	}
}
