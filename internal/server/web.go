package server

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/sip"
	"github.com/rs/zerolog"
)

// WebConfig holds the browser server settings.
type WebConfig struct {
	Host string
	Port string
}

// ServeWeb serves the desktop to browsers until ctx is cancelled.
func ServeWeb(ctx context.Context, cfg WebConfig, newModel ModelFactory, log zerolog.Logger) error {
	sipCfg := sip.DefaultConfig()
	if cfg.Host != "" {
		sipCfg.Host = cfg.Host
	}
	if cfg.Port != "" {
		sipCfg.Port = cfg.Port
	}

	server := sip.NewServer(sipCfg)
	log.Info().Str("host", sipCfg.Host).Str("port", sipCfg.Port).Msg("web server listening")

	err := server.Serve(ctx, func(_ sip.Session) (tea.Model, []tea.ProgramOption) {
		model, err := newModel()
		if err != nil {
			log.Error().Err(err).Msg("failed to build desktop")
			return nil, nil
		}
		log.Info().Msg("web session started")
		return model, programOptions()
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("web server: %w", err)
	}
	return nil
}
