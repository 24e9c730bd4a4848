package cli

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/RumanAkhtar/lms-app-backend/engine/infra/server"
	"github.com/RumanAkhtar/lms-app-backend/pkg/config"
	"github.com/RumanAkhtar/lms-app-backend/pkg/logger"
)

// ServeCmd starts the HTTP gateway.
func ServeCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"start"},
		Short:   "Start the gateway server",
		Long:    "Load configuration from the environment and serve HTTP until interrupted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, envFile)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to an env file loaded before configuration")
	return cmd
}

func runServe(cmd *cobra.Command, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file %q: %w", envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.SetupLogger(cfg.Log.Level, cfg.Log.JSON)
	gin.SetMode(gin.ReleaseMode)

	srv := server.NewServer(cfg, log)
	return srv.Run(cmd.Context())
}
