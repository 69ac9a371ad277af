package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDisabledTracerIsNilSafe(t *testing.T) {
	tr, err := New(context.Background(), "", "cerebro-dashboard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr != nil {
		t.Fatal("empty endpoint should disable tracing")
	}

	// Every method must work on the nil Tracer.
	tr.Navigation("/projects", "projects", time.Now().Add(-time.Second), time.Now())
	if err := tr.Shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestNilTracerTransportPassthrough(t *testing.T) {
	var tr *Tracer

	base := http.DefaultTransport
	if got := tr.Transport(base); got != base {
		t.Error("nil tracer should return the base transport unchanged")
	}
}

func TestTracingTransportForwardsRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	// A collector endpoint that accepts nothing is fine: spans are batched
	// and only flushed on Shutdown, which we skip here.
	tr, err := New(context.Background(), "localhost:43178", "cerebro-dashboard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	client := &http.Client{Transport: tr.Transport(nil)}
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("request through tracing transport: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
