package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type nopLogger struct{}

func (nopLogger) Error(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}

type fakeService struct {
	name    string
	initErr error

	mu      sync.Mutex
	running bool
	stopped bool
}

func (f *fakeService) Name() string { return f.name }
func (f *fakeService) Init() error  { return f.initErr }

func (f *fakeService) Run(ctx context.Context) {
	f.mu.Lock()
	f.running = true
	f.mu.Unlock()
}

func (f *fakeService) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func TestManagerStopsOnContextDone(t *testing.T) {
	a, b := &fakeService{name: "a"}, &fakeService{name: "b"}
	m := NewManager(nopLogger{})
	m.AddService(a, b)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := m.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.stopped || !b.stopped {
		t.Fatalf("expected all services to be stopped")
	}
}

func TestManagerInitFailureStopsStarted(t *testing.T) {
	boom := errors.New("boom")
	a := &fakeService{name: "a"}
	b := &fakeService{name: "b", initErr: boom}
	c := &fakeService{name: "c"}

	m := NewManager(nopLogger{})
	m.AddService(a, b, c)

	err := m.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected init error, got %v", err)
	}
	if !a.stopped {
		t.Fatalf("expected started service to be stopped")
	}
	if b.stopped || c.stopped {
		t.Fatalf("services that never started must not be stopped")
	}
}

func TestManagerWithoutServices(t *testing.T) {
	if err := NewManager(nopLogger{}).Run(context.Background()); err == nil {
		t.Fatalf("expected error without services")
	}
}
