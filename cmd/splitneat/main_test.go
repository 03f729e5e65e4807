package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/splitneat/internal/config"
	"github.com/mmynk/splitneat/internal/service"
)

func setupServer(t *testing.T, store string) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Store = store

	reg := prometheus.NewRegistry()
	l, m, s, err := openLedger(context.Background(), cfg, reg)
	if err != nil {
		t.Fatalf("openLedger failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	handler, err := newHandler(l, m, reg)
	if err != nil {
		t.Fatalf("newHandler failed: %v", err)
	}

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, url string) string {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return string(body)
}

func TestServe_PageRPCAndMetrics(t *testing.T) {
	for _, store := range []string{config.StoreMemory, config.StoreSQLite} {
		t.Run(store, func(t *testing.T) {
			server := setupServer(t, store)

			page := get(t, server.URL+"/")
			if !strings.Contains(page, "You owe Bob Smith $7") {
				t.Errorf("page missing Bob's balance")
			}

			client := service.NewFriendServiceClient(http.DefaultClient, server.URL)
			resp, err := client.GetState(context.Background(), connect.NewRequest(&service.GetStateRequest{}))
			if err != nil {
				t.Fatalf("GetState failed: %v", err)
			}
			if len(resp.Msg.State.Friends) != 3 {
				t.Errorf("expected 3 friends, got %d", len(resp.Msg.State.Friends))
			}

			metrics := get(t, server.URL+"/metrics")
			if !strings.Contains(metrics, "splitneat_http_requests_total") {
				t.Errorf("metrics missing request counter:\n%s", metrics)
			}
		})
	}
}

func TestServe_CORSPreflight(t *testing.T) {
	server := setupServer(t, config.StoreMemory)

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/splitneat.v1.FriendService/GetState", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected allow origin *, got %q", got)
	}
}

func TestPrintFriends(t *testing.T) {
	cfg := config.Default()
	l, _, s, err := openLedger(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("openLedger failed: %v", err)
	}
	defer s.Close()

	snap, err := l.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	var buf bytes.Buffer
	printFriends(&buf, snap)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}

	tests := []struct {
		line int
		want string
	}{
		{0, "You and Alice Johnson are even"},
		{1, "You owe Bob Smith $7"},
		{2, "Charlie Rose owes you $14"},
		{3, "Overall you are owed $7"},
	}
	for _, tt := range tests {
		if !strings.Contains(lines[tt.line], tt.want) {
			t.Errorf("line %d = %q, want it to contain %q", tt.line, lines[tt.line], tt.want)
		}
	}
}

func TestOpenStore_Unknown(t *testing.T) {
	if _, err := openStore("postgres"); err == nil {
		t.Error("expected error for unknown store")
	}
}
