// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

//go:build nats

package eventprocessor

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/debatelive/internal/logging"
)

// natsTransport owns the publisher and, when embedded, the server it talks to.
type natsTransport struct {
	publisher *Publisher
	server    *EmbeddedServer
}

func openTransport(cfg MirrorConfig) (transport, error) {
	pubCfg := cfg.Publisher

	var srv *EmbeddedServer
	if cfg.Embedded {
		var err error
		srv, err = NewEmbeddedServer(&cfg.Server)
		if err != nil {
			return nil, fmt.Errorf("start embedded NATS server: %w", err)
		}
		pubCfg.URL = srv.ClientURL()
		logging.Info().Str("url", pubCfg.URL).Msg("Embedded NATS server started")
	}

	pub, err := NewPublisher(pubCfg, NewWatermillLogger(logging.WithComponent("nats-mirror")))
	if err != nil {
		if srv != nil {
			_ = srv.Shutdown(context.Background())
		}
		return nil, err
	}

	return &natsTransport{publisher: pub, server: srv}, nil
}

func (t *natsTransport) Publish(ctx context.Context, subject string, rec ChangeRecord) error {
	return t.publisher.PublishChange(ctx, subject, rec)
}

func (t *natsTransport) Close(ctx context.Context) error {
	err := t.publisher.Close()
	if t.server != nil {
		err = errors.Join(err, t.server.Shutdown(ctx))
	}
	return err
}
