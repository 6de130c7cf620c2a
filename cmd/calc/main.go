package main

import (
	"fmt"

	"github.com/shaharia-lab/code-navigator/internal/calc"
	"github.com/shaharia-lab/code-navigator/internal/infrastructure/config"
	"github.com/shaharia-lab/code-navigator/internal/logging"
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

	calculator := calc.NewCalculator(calc.WithLogger(logger.Logger))
	sum := calculator.Add(5, 3)
	product := calculator.Multiply(4, 5)

	fmt.Printf("Sum: %d, Product: %d\n", sum, product)
}
