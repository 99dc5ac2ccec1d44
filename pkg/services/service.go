package service

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

type (
	Service interface {
		Name() string
		Init() error
		Run(ctx context.Context)
		Stop()
	}
	Services interface {
		AddService(service ...Service)
		Run(ctx context.Context) error
	}
	Manager struct {
		log      Logger
		services []Service
	}
)

func NewManager(log Logger) *Manager {
	return &Manager{log: log}
}

func (s *Manager) AddService(service ...Service) {
	s.services = append(s.services, service...)
}

// Run initializes every service in order and starts them. It blocks until
// ctx is done or the process receives SIGINT/SIGTERM, then stops them all.
// If an Init fails, the services already started are stopped.
func (s *Manager) Run(ctx context.Context) error {
	if len(s.services) == 0 {
		return fmt.Errorf("no services configured")
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s.log.Info("going to start services", "count", len(s.services))
	for count, svc := range s.services {
		if err := svc.Init(); err != nil {
			for i := 0; i < count; i++ {
				s.services[i].Stop()
			}
			return fmt.Errorf("init %s: %w", svc.Name(), err)
		}
		s.log.Info("service started", "service", svc.Name())
		go svc.Run(ctx)
	}

	<-ctx.Done()
	s.stop()
	return nil
}

func (s *Manager) stop() {
	s.log.Info("going to stop")
	for _, svc := range s.services {
		svc.Stop()
		s.log.Info("service stopped", "service", svc.Name())
	}
}
