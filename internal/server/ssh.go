package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/activeterm"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/ssh"
	"github.com/rs/zerolog"
)

// SSHConfig holds the SSH server settings.
type SSHConfig struct {
	Host    string
	Port    string
	KeyPath string // host key; generated under $XDG_DATA_HOME when empty
}

// DefaultHostKeyPath returns where the generated host key lives.
func DefaultHostKeyPath() (string, error) {
	return xdg.DataFile("albumdesk/ssh_host_ed25519")
}

// ServeSSH runs the SSH server until ctx is cancelled.
func ServeSSH(ctx context.Context, cfg SSHConfig, newModel ModelFactory, log zerolog.Logger) error {
	keyPath := cfg.KeyPath
	if keyPath == "" {
		var err error
		if keyPath, err = DefaultHostKeyPath(); err != nil {
			return fmt.Errorf("failed to resolve host key path: %w", err)
		}
	}

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	s, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(keyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(sshHandler(newModel, log)),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("ssh server listening")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("failed to shut down SSH server: %w", err)
	}
	log.Info().Msg("ssh server stopped")
	return nil
}

// sshHandler builds one desktop per session. A session whose desktop
// cannot be built is refused with the error.
func sshHandler(newModel ModelFactory, log zerolog.Logger) bubbletea.Handler {
	return func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		log.Info().
			Str("user", sess.User()).
			Str("remote", sess.RemoteAddr().String()).
			Msg("ssh session started")

		model, err := newModel()
		if err != nil {
			log.Error().Err(err).Msg("failed to build desktop")
			wish.Fatalln(sess, err)
			return nil, nil
		}
		return model, programOptions()
	}
}
