package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cerebro/internal/api"
	"cerebro/internal/config"
	"cerebro/internal/logging"
	"cerebro/internal/telemetry"
	"cerebro/internal/ui"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "cerebro",
	Short: "CEREBRO - project intelligence dashboard",
	Long: `cerebro is a terminal dashboard for the CEREBRO project intelligence
ecosystem: tracked projects, gathered intelligence, and the daily briefing.

Run without arguments to start the interactive dashboard.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "cerebro "+version)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "backend    %s\n", cfg.API.BaseURL)
		fmt.Fprintf(out, "timeout    %s\n", cfg.API.Timeout)
		fmt.Fprintf(out, "refresh    %s\n", cfg.UI.RefreshInterval)
		fmt.Fprintf(out, "toast ttl  %s\n", cfg.UI.ToastTTL)
		fmt.Fprintf(out, "telemetry  %s\n", orDisabled(cfg.Telemetry.Endpoint))
		fmt.Fprintf(out, "log file   %s\n", orDisabled(cfg.Log.File))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Query the backend status endpoint and exit",
	Long: `Fetches the ecosystem status from the backend and prints it as JSON.
Exits nonzero when the backend is unreachable, so it can back health checks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		client, err := api.New(cfg.API.BaseURL)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.API.Timeout)
		defer cancel()
		status, err := client.Status(ctx)
		if err != nil {
			return fmt.Errorf("backend at %s: %w", cfg.API.BaseURL, err)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	},
}

func orDisabled(s string) string {
	if s == "" {
		return "disabled"
	}
	return s
}

func runDashboard(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	tracer, err := telemetry.New(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tracer.Shutdown(shutdownCtx)
	}()

	client, err := api.New(cfg.API.BaseURL,
		api.WithHTTPClient(apiHTTPClient(cfg, tracer)),
	)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	app, err := ui.NewApp(cfg, client, tracer, logger)
	if err != nil {
		return err
	}

	logger.Info("starting dashboard",
		zap.String("version", version),
		zap.String("backend", cfg.API.BaseURL),
	)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

// apiHTTPClient builds the backend HTTP client, instrumented for tracing
// when telemetry is enabled.
func apiHTTPClient(cfg config.Config, tracer *telemetry.Tracer) *http.Client {
	return &http.Client{
		Timeout:   cfg.API.Timeout,
		Transport: tracer.Transport(nil),
	}
}

func init() {
	rootCmd.AddCommand(versionCmd, infoCmd, statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
