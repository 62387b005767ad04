package cmd

import (
	"context"
	"log"

	"github.com/skillsift/skillsift/internal/jsearch"
	"github.com/skillsift/skillsift/internal/logger"
	"github.com/skillsift/skillsift/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resume matching HTTP API",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 5001, "port to listen on")

	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

// serve starts the HTTP API used by browser front ends.
func serve(_ *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil {
		logger.Fatal("config is required")
	}

	apiKey, err := resolveAPIKey(config)
	if err != nil {
		logger.Fatal(
			"loading jsearch api key",
			zap.Error(err),
			zap.String("hint", "set JSEARCH_API_KEY_FILE environment variable or the 'api-key-file' key in the configuration file"),
		)
	}

	source := jsearch.New(ctx, logger, apiKey)
	if config.UserAgent != "" {
		source.UserAgent = config.UserAgent
	}

	port := viper.GetInt("server.port")

	logger.Info("starting the skillsift api",
		zap.String("version", version),
		zap.Int("port", port),
	)

	srv := server.New(server.Config{
		Port:      port,
		JobRoles:  config.JobRoles,
		Locations: config.Locations,
	}, source, logger)

	if err := srv.Start(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
