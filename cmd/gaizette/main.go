package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gaizette/internal/config"
	"gaizette/internal/core"
)

var (
	configPath = flag.String("config", "config.toml", "Path to configuration file")
	feedsPath  = flag.String("feeds", "", "Path to feeds file (overrides config)")
	topicsPath = flag.String("topics", "", "Path to topics file (overrides config)")
	outputPath = flag.String("output", "", "Path to HTML output file (overrides config)")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Printf("\nReceived signal: %v, aborting run\n", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	if *feedsPath != "" {
		cfg.Files.Feeds = *feedsPath
	}
	if *topicsPath != "" {
		cfg.Files.Topics = *topicsPath
	}
	if *outputPath != "" {
		cfg.Digest.Output = *outputPath
	}

	pipeline, err := core.NewPipeline(cfg)
	if err != nil {
		return err
	}

	if err := pipeline.Run(ctx); err != nil {
		return err
	}

	fmt.Printf("Digest written to %s\n", cfg.Digest.Output)
	return nil
}
