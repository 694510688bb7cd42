package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Vladislav15-maker/FamilyCourse/internal/auth"
	"github.com/Vladislav15-maker/FamilyCourse/internal/catalog"
	"github.com/Vladislav15-maker/FamilyCourse/internal/httpapi"
	"github.com/Vladislav15-maker/FamilyCourse/internal/llm"
	"github.com/Vladislav15-maker/FamilyCourse/internal/practice"
	"github.com/Vladislav15-maker/FamilyCourse/internal/progress"
	"github.com/Vladislav15-maker/FamilyCourse/internal/speech"
	"github.com/Vladislav15-maker/FamilyCourse/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the LinguaLearn HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		rosterPath, _ := cmd.Flags().GetString("roster")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		llmCfg := llm.ConfigFromEnv()
		if llmCfg.Provider != "mock" {
			if err := llmCfg.Validate(); err != nil {
				if discovered, ok := llm.DiscoverConfig(); ok {
					llmCfg = discovered
				} else {
					return err
				}
			}
		}

		provider, err := llm.NewProvider(ctx, llmCfg, s.EventRepo())
		if err != nil {
			return fmt.Errorf("initialize LLM provider: %w", err)
		}

		roster, err := auth.LoadRoster(afero.NewOsFs(), rosterPath)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}

		cat := catalog.Default()
		prog := progress.NewStore(ctx, cat, s.Documents())
		svc := practice.NewService(ctx, provider, prog, cat, s.Documents(), practice.DefaultConfig())

		// Headless deployments have no audio device; browsers synthesize
		// locally, so the server-side speaker stays a no-op.
		api := httpapi.New(roster, cat, prog, svc, speech.Nop{})

		srv := &http.Server{
			Addr:              addr,
			Handler:           api.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		fmt.Printf("lingualearn listening on %s (db: %s, llm: %s)\n", addr, dbPath, provider.ModelID())
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("roster", "", "Path to roster YAML (defaults to the XDG config location)")
}
