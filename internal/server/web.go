package server

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"github.com/Gaurav-Gosain/sip"
	"github.com/complexslider/complexslider/internal/app"
	"github.com/complexslider/complexslider/internal/config"
)

// WebServerConfig holds configuration for the browser terminal server.
type WebServerConfig struct {
	Host string
	Port string

	// UserConfig supplies sliders and physics for every session. Defaults
	// are used when nil.
	UserConfig *config.UserConfig
}

// StartWebServer serves the app in the browser through sip until ctx is
// cancelled.
func StartWebServer(ctx context.Context, cfg *WebServerConfig) error {
	if cfg.UserConfig == nil {
		cfg.UserConfig = config.DefaultConfig()
	}

	sipCfg := sip.DefaultConfig()
	if cfg.Host != "" {
		sipCfg.Host = cfg.Host
	}
	if cfg.Port != "" {
		sipCfg.Port = cfg.Port
	}

	log.Info("Starting web server", "host", sipCfg.Host, "port", sipCfg.Port)
	srv := sip.NewServer(sipCfg)
	err := srv.Serve(ctx, func(_ sip.Session) (tea.Model, []tea.ProgramOption) {
		a := app.New(app.OptionsFromConfig(cfg.UserConfig))
		a.LogInfo("web session started")
		log.Info("Session started", "transport", "web", "sliders", len(a.Sliders))
		return a, ProgramOptions()
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("web server stopped: %w", err)
	}
	return nil
}
