package worker

import (
	"context"
	"errors"

	"github.com/rajat6235/Robusters-POS-sub001/internal/config"
	"github.com/rajat6235/Robusters-POS-sub001/internal/queue"

	"github.com/hibiken/asynq"
)

// Service runs the asynq consumer under the app runner.
type Service struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewService creates the queue worker service. The queue must be enabled;
// callers decide based on mode/config whether a worker belongs in the
// process at all.
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}

	opt, serverCfg := queue.BuildServerConfig(cfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)

	return &Service{
		server: asynq.NewServer(opt, serverCfg),
		mux:    mux,
	}, nil
}

func (s *Service) Name() string {
	return "worker"
}

// Start runs the worker until the server stops.
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	return s.server.Run(s.mux)
}

// Stop shuts the worker down, waiting for in-flight tasks.
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	s.server.Shutdown()
	return nil
}
