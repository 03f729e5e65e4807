package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/splitneat/internal/ledger"
	"github.com/mmynk/splitneat/internal/metrics"
	"github.com/mmynk/splitneat/internal/middleware"
	"github.com/mmynk/splitneat/internal/service"
	"github.com/mmynk/splitneat/internal/web"
	"github.com/mmynk/splitneat/pkg/logging"
)

var addr string

// serveCmd starts the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web page, the RPC API and metrics",
	Long: `Starts an HTTP server with:
  /                           the SplitNeat page
  /splitneat.v1.FriendService Connect RPC API (JSON)
  /metrics                    Prometheus metrics`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logging.Setup(os.Stderr, cfg.LogLevel)

	reg := prometheus.NewRegistry()
	l, m, store, err := openLedger(cmd.Context(), cfg, reg)
	if err != nil {
		slog.Error("Failed to initialize ledger", "error", err)
		return err
	}
	defer store.Close()

	handler, err := newHandler(l, m, reg)
	if err != nil {
		slog.Error("Failed to build handler", "error", err)
		return err
	}

	slog.Info("Server starting", "address", cfg.Addr, "url", fmt.Sprintf("http://localhost%s", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		return err
	}
	return nil
}

// newHandler wires the page, the RPC service and /metrics behind the
// logging, CORS and h2c layers.
func newHandler(l *ledger.Ledger, m *metrics.Metrics, reg *prometheus.Registry) (http.Handler, error) {
	mux := http.NewServeMux()

	page, err := web.New(l, m)
	if err != nil {
		return nil, err
	}
	page.Register(mux)

	path, rpc := service.NewFriendServiceHandler(
		service.NewFriendService(l, m),
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)
	mux.Handle(path, rpc)

	mux.Handle("GET /metrics", metrics.Handler(reg))

	h := middleware.Logging(middleware.CORS(m.InstrumentHandler(mux)))

	// h2c lets Connect clients speak HTTP/2 without TLS.
	return h2c.NewHandler(h, &http2.Server{}), nil
}
