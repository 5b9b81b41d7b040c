package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/dodorz/albumdesk/internal/app"
	"github.com/dodorz/albumdesk/internal/config"
	"github.com/dodorz/albumdesk/internal/input"
	"github.com/dodorz/albumdesk/internal/logging"
	"github.com/dodorz/albumdesk/internal/server"
	"github.com/dodorz/albumdesk/internal/theme"
	"github.com/dodorz/albumdesk/pkg/albumdesk"
	"golang.org/x/term"
)

// loadConfig reads the config file named by --config, or the XDG one, and
// applies the command line flags on top of it.
func loadConfig() (*config.UserConfig, error) {
	var (
		cfg *config.UserConfig
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadUserConfigFrom(configPath)
	} else {
		cfg, err = config.LoadUserConfig()
	}
	if err != nil {
		return nil, err
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:       asciiOnly,
		BorderStyle:     borderStyle,
		TaskbarPosition: taskbarPosition,
		HideClock:       hideClock,
		HideSysInfo:     hideSysInfo,
		NoAnimations:    noAnimations,
		ThemeName:       themeName,
		Device:          device,
		CatalogPath:     catalogPath,
	}, cfg)
	if debugMode {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// setup loads the config, opens the log file and initializes the theme.
func setup() (*config.UserConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := logging.Init(cfg.Logging.File, cfg.Logging.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	if err := theme.Initialize(cfg.Appearance.Theme); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	app.SetInputHandler(input.HandleInput)
	return cfg, nil
}

// desktopFactory builds a fresh desktop per remote session.
func desktopFactory(cfg *config.UserConfig) server.ModelFactory {
	return func() (tea.Model, error) {
		return app.NewFromConfig(cfg, logging.Logger)
	}
}

func runLocal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("albumdesk requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logging.Close()

	// Dumb terminals get ASCII glyphs unless the user chose otherwise.
	if !config.UseASCIIOnly {
		switch colorprofile.Detect(os.Stdout, os.Environ()) {
		case colorprofile.Ascii, colorprofile.NoTTY:
			config.UseASCIIOnly = true
		}
	}

	desktop, err := app.NewFromConfig(cfg, logging.Logger)
	if err != nil {
		return err
	}
	if debugMode {
		path, _ := config.GetConfigPath()
		desktop.LogInfo("Configuration: %s", path)
	}

	opts := append(albumdesk.ProgramOptions(), tea.WithoutSignalHandler())
	p := tea.NewProgram(desktop, opts...)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

// serve runs fn until SIGINT or SIGTERM.
func serve(fn func(ctx context.Context, cfg *config.UserConfig) error) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logging.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return fn(ctx, cfg)
}

func runSSHServer(host, port, keyPath string) error {
	return serve(func(ctx context.Context, cfg *config.UserConfig) error {
		fmt.Printf("Starting albumdesk SSH server on %s:%s\n", host, port)
		sshCfg := server.SSHConfig{Host: host, Port: port, KeyPath: keyPath}
		if err := server.ServeSSH(ctx, sshCfg, desktopFactory(cfg), logging.Logger); err != nil {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	})
}

func runWebServer(host, port string) error {
	return serve(func(ctx context.Context, cfg *config.UserConfig) error {
		fmt.Printf("Serving albumdesk at http://%s:%s\n", host, port)
		webCfg := server.WebConfig{Host: host, Port: port}
		return server.ServeWeb(ctx, webCfg, desktopFactory(cfg), logging.Logger)
	})
}
