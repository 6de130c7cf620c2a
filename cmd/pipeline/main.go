package main

import (
	"context"
	"os"

	"github.com/shaharia-lab/code-navigator/internal/infrastructure/config"
	"github.com/shaharia-lab/code-navigator/internal/logging"
	"github.com/shaharia-lab/code-navigator/internal/pipeline"
)

func main() {
	cfg := config.LoadOrDefault()

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		logger = logging.NewDefault()
	}
	defer logger.Sync()

	flow := pipeline.NewFlow(os.Stdout,
		pipeline.WithFetchLatency(cfg.Pipeline.FetchLatency),
		pipeline.WithLogger(logger.Logger),
	)

	if err := flow.Run(context.Background()); err != nil {
		logger.Fatal("pipeline run failed: " + err.Error())
	}
}
