package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/shaharia-lab/code-navigator/internal/infrastructure/config"
	"github.com/shaharia-lab/code-navigator/internal/infrastructure/monitoring"
	"github.com/shaharia-lab/code-navigator/internal/logging"
	mathprovider "github.com/shaharia-lab/code-navigator/internal/providers/math"
	pipelineprovider "github.com/shaharia-lab/code-navigator/internal/providers/pipeline"
	"github.com/shaharia-lab/code-navigator/internal/service"
)

func main() {
	// Parse flags
	toolID := flag.String("tool", "", "Tool ID to execute (e.g. math.add)")
	paramsJSON := flag.String("params", "{}", "Tool parameters as JSON")
	list := flag.Bool("list", false, "List registered services and exit")
	flag.Parse()

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

	metrics := monitoring.NewMetrics(nil)
	registry := service.NewRegistry().WithMetrics(metrics)

	providers := []service.Provider{
		mathprovider.NewProvider(),
		pipelineprovider.NewProvider(
			pipelineprovider.WithFetchLatency(cfg.Pipeline.FetchLatency),
			pipelineprovider.WithLogCapacity(cfg.Pipeline.LogCapacity),
		),
	}
	for _, p := range providers {
		if err := registry.Register(p); err != nil {
			logger.Fatal("failed to register provider", zap.Error(err))
		}
	}

	if *list {
		printJSON(registry.List(nil))
		return
	}

	if *toolID == "" {
		fmt.Fprintln(os.Stderr, "usage: tools -tool <service.tool> [-params '{...}']")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var params map[string]interface{}
	if err := json.Unmarshal([]byte(*paramsJSON), &params); err != nil {
		logger.Fatal("invalid -params JSON", zap.Error(err))
	}

	result, err := registry.Execute(context.Background(), *toolID, params, nil)
	if err != nil {
		logger.Error("tool execution failed", zap.String("tool", *toolID), zap.Error(err))
	}

	metrics.UpdateUptime()
	snapshot := metrics.GetSnapshot()
	logger.Info("execution recorded",
		zap.String("tool", *toolID),
		zap.Int64("total_calls", snapshot.TotalCalls),
		zap.Int64("total_errors", snapshot.TotalErrors),
	)

	printJSON(result)
	if result != nil && !result.Success {
		os.Exit(1)
	}
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
