package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/youssefsiam38/answerui/internal/logging"
	"github.com/youssefsiam38/answerui/ui"
	"github.com/youssefsiam38/answerui/ui/service"
)

func newServeCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "serve",
		Short: "Serve the answer UI and JSON API",
		Long: "Serves the answer UI under --base-path and the JSON API under /api.\n\n" +
			"Cited documents are not served by this command. Citation clicks redirect\n" +
			"to {content-base-path}/content/{label}; point --content-base-path (or\n" +
			"ui.content_base_path) at the server hosting the documents. It defaults to\n" +
			"the base path, where a host application is expected to mount /content/.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServeConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logging.NewAdapter(logger))
		},
	}
	command.Flags().String("addr", ":8080", "listen address")
	command.Flags().String("base-path", "/ui", "URL prefix of the frontend")
	command.Flags().String("content-base-path", "", "prefix of cited document paths (default: base path)")
	command.Flags().Bool("markdown", false, "render answer bodies as markdown")
	command.Flags().Bool("followups", true, "show follow-up questions")
	return command
}

func loadServeConfig(cmd *cobra.Command) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	if err := loader.BindFlags(cmd.Flags(), map[string]string{
		"server.addr":                "addr",
		"ui.base_path":               "base-path",
		"ui.content_base_path":       "content-base-path",
		"ui.render_markdown":         "markdown",
		"ui.show_followup_questions": "followups",
	}); err != nil {
		return nil, err
	}
	return loader.Load()
}

// newMux mounts the frontend at the base path, the JSON API under /api and
// a health check.
func newMux(cfg *Config, log ui.Logger) *http.ServeMux {
	store := service.NewMemoryStore(cfg.Server.MaxAnswers)
	uiCfg := cfg.UI.uiConfig(log)
	base := strings.TrimRight(uiCfg.BasePath, "/")

	mux := http.NewServeMux()
	mux.Handle(base+"/", http.StripPrefix(base, ui.UIHandler(store, &loggingActions{log: log}, uiCfg)))
	mux.Handle("/api/", http.StripPrefix("/api", ui.APIHandler(store, cfg.UI.uiConfig(log))))
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return mux
}

func serve(ctx context.Context, cfg *Config, log ui.Logger) error {
	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: newMux(cfg, log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", cfg.Server.Addr, "base_path", cfg.UI.BasePath)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
