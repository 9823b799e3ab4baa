package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/delito/admin-api/pkg/config"
	"github.com/delito/admin-api/pkg/logger"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

func TestHealthLive(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "dev"}}
	resp := serve(t, HealthLive(cfg), http.MethodGet, "/health/live", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := resp.Header().Get("X-Delito-Env"); got != "dev" {
		t.Fatalf("unexpected env header %q", got)
	}
}

func TestHealthReadyReportsChecks(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "prod"}}
	h := HealthReady(cfg, logger.Nop(),
		Dependency{Name: "firestore", Pinger: stubPinger{}},
		Dependency{Name: "redis"},
	)

	resp := serve(t, h, http.MethodGet, "/health/ready", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	env := decode[struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}](t, resp)
	if env.Data.Checks["firestore"] != "ok" || env.Data.Checks["redis"] != "disabled" {
		t.Fatalf("unexpected checks %v", env.Data.Checks)
	}
}

func TestHealthReadyFailsOnDependency(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "prod"}}
	h := HealthReady(cfg, logger.Nop(), Dependency{Name: "firestore", Pinger: stubPinger{err: errors.New("unavailable")}})

	resp := serve(t, h, http.MethodGet, "/health/ready", "")
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
	if env := decode[any](t, resp); env.Success || env.Error != "failed to fetch data" {
		t.Fatalf("store detail must not leak, got %+v", env)
	}
}
