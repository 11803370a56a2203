// Package server serves the slider app to remote clients, one independent
// app and registry per connection.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/activeterm"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/charmbracelet/ssh"
	"github.com/complexslider/complexslider/internal/app"
	"github.com/complexslider/complexslider/internal/config"
)

// shutdownTimeout bounds how long open sessions get to finish on shutdown.
const shutdownTimeout = 30 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Host    string
	Port    string
	KeyPath string
	Version string

	// UserConfig supplies sliders and physics for every session. Defaults
	// are used when nil.
	UserConfig *config.UserConfig
}

// Addr returns the listen address.
func (c *SSHServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// hostKeyPath returns the configured key path or the default one, which
// wish generates on first start.
func (c *SSHServerConfig) hostKeyPath() string {
	if c.KeyPath != "" {
		return c.KeyPath
	}
	return ".ssh/complexslider_ed25519"
}

// StartSSHServer serves the app over SSH until ctx is cancelled.
func StartSSHServer(ctx context.Context, cfg *SSHServerConfig) error {
	if cfg.UserConfig == nil {
		cfg.UserConfig = config.DefaultConfig()
	}

	s, err := wish.NewServer(
		wish.WithAddress(cfg.Addr()),
		wish.WithHostKeyPath(cfg.hostKeyPath()),
		wish.WithVersion("complexslider-"+cfg.Version),
		wish.WithMiddleware(
			bubbletea.Middleware(sessionHandler(cfg.UserConfig)),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting SSH server", "addr", cfg.Addr())
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("SSH server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Stopping SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("failed to shut down SSH server: %w", err)
	}
	return nil
}

// sessionHandler builds a fresh app for every SSH session.
func sessionHandler(cfg *config.UserConfig) bubbletea.Handler {
	return func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		opts := app.OptionsFromConfig(cfg)
		if pty, _, ok := sess.Pty(); ok {
			opts.Width = pty.Window.Width
			opts.Height = pty.Window.Height
		}
		a := app.New(opts)
		a.LogInfo("SSH session for %s from %s", sess.User(), sess.RemoteAddr())
		log.Info("Session started", "user", sess.User(), "remote", sess.RemoteAddr(), "sliders", len(a.Sliders))
		return a, ProgramOptions()
	}
}

// ProgramOptions returns the tea.ProgramOption values every served session
// runs with.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(FilterMouseMotion),
	}
}

// FilterMouseMotion drops mouse motion unless a drag is in progress.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	a, ok := model.(*app.App)
	if !ok || a.Registry.Dragging() {
		return msg
	}
	return nil
}
