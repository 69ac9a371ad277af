package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("CEREBRO_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
}

func TestVersionCmd(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "cerebro "+version) {
		t.Errorf("output = %q", out)
	}
}

func TestInfoCmdShowsEffectiveConfig(t *testing.T) {
	isolateConfig(t)
	t.Setenv("CEREBRO_API_BASE_URL", "http://cerebro.internal:9000")

	out, err := execute(t, "info")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"http://cerebro.internal:9000", "telemetry  disabled", "log file   disabled"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStatusCmdPrintsBackendStatus(t *testing.T) {
	isolateConfig(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/status" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_projects":4,"active_projects":2,"total_intelligence":17,"health_score":0.8}`))
	}))
	defer srv.Close()
	t.Setenv("CEREBRO_API_BASE_URL", srv.URL)

	out, err := execute(t, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, want := range []string{`"total_projects": 4`, `"health_score": 0.8`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStatusCmdFailsWhenUnreachable(t *testing.T) {
	isolateConfig(t)
	t.Setenv("CEREBRO_API_BASE_URL", "http://127.0.0.1:1")

	_, err := execute(t, "status")
	if err == nil {
		t.Fatal("expected error against an unreachable backend")
	}
	if !strings.Contains(err.Error(), "http://127.0.0.1:1") {
		t.Errorf("error should name the backend: %v", err)
	}
}
