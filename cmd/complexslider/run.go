package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/complexslider/complexslider/internal/app"
	"github.com/complexslider/complexslider/internal/config"
	"github.com/complexslider/complexslider/internal/input"
	"github.com/complexslider/complexslider/internal/server"
	"golang.org/x/term"
)

// errNoTTY is returned when the local UI is started without a terminal.
var errNoTTY = errors.New("stdout is not a terminal; use 'complexslider value' for scripted use")

// loadConfig loads the user config and applies the global flags on top of it.
func loadConfig() *config.UserConfig {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:       asciiOnly,
		BorderStyle:     borderStyle,
		CellWidth:       cellWidth,
		CellHeight:      cellHeight,
		NoHelp:          noHelp,
		SignedImaginary: signedImaginary,
		ThemeName:       themeName,
	}, userConfig)

	if debugMode {
		configPath, _ := config.GetConfigPath()
		log.Printf("Configuration: %s", configPath)
		log.Printf("Cell size: %dx%d units", config.CellWidth, config.CellHeight)
	}
	return userConfig
}

func runLocal() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTTY
	}

	userConfig := loadConfig()
	app.SetInputHandler(input.HandleInput)

	model := app.New(app.OptionsFromConfig(userConfig))
	if debugMode {
		model.ShowLogs = true
	}

	p := tea.NewProgram(
		model,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(server.FilterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		if _, ok := <-sigChan; ok {
			p.Send(tea.QuitMsg{})
		}
	}()

	finalModel, err := p.Run()

	if final, ok := finalModel.(*app.App); ok {
		final.Registry.Stop()
		if debugMode {
			for _, s := range final.Sliders {
				log.Printf("%s: %s", s.Widget.Label, s.Readout.String())
			}
		}
	}

	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

// serverContext returns a context cancelled on SIGINT or SIGTERM.
func serverContext(what string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-c:
			log.Printf("Shutting down %s server...", what)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(c)
	}()
	return ctx, cancel
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	userConfig := loadConfig()
	app.SetInputHandler(input.HandleInput)

	log.Printf("Starting complexslider SSH server on %s:%s", sshHost, sshPort)

	ctx, cancel := serverContext("SSH")
	defer cancel()

	cfg := &server.SSHServerConfig{
		Host:       sshHost,
		Port:       sshPort,
		KeyPath:    sshKeyPath,
		Version:    version,
		UserConfig: userConfig,
	}
	if err := server.StartSSHServer(ctx, cfg); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}

func runWebServer(webHost, webPort string) error {
	userConfig := loadConfig()
	app.SetInputHandler(input.HandleInput)

	log.Printf("Starting complexslider web server on http://%s:%s", webHost, webPort)

	ctx, cancel := serverContext("web")
	defer cancel()

	cfg := &server.WebServerConfig{
		Host:       webHost,
		Port:       webPort,
		UserConfig: userConfig,
	}
	if err := server.StartWebServer(ctx, cfg); err != nil {
		return fmt.Errorf("web server error: %w", err)
	}
	return nil
}
