// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/piyushdhoka/drdo-docxsummarizer/internal/config"
	"github.com/piyushdhoka/drdo-docxsummarizer/internal/logger"
	"github.com/piyushdhoka/drdo-docxsummarizer/internal/server"
	"github.com/piyushdhoka/drdo-docxsummarizer/internal/summarizer"
)

var (
	configPath = flag.String("config", "", "Path to yaml config file")
	httpPort   = flag.Int("http-port", 0, "HTTP server port (overrides config)")
)

func main() {
	flag.Parse()

	// Best effort; the key can also come from the real environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env: %v\n", err)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *httpPort != 0 {
		cfg.Server.Port = *httpPort
	}

	log, err := logger.Init(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	gen, err := summarizer.NewOpenAIGenerator(summarizer.Config{
		APIKey: cfg.LLM.APIKey,
		Options: summarizer.Options{
			Model:           cfg.LLM.Model,
			Temperature:     cfg.LLM.Temperature,
			TopP:            cfg.LLM.TopP,
			MaxOutputTokens: cfg.LLM.MaxOutputTokens,
		},
	})
	if err != nil {
		logger.Fatalf("failed to init generator: %v", err)
	}

	svc := summarizer.NewService(gen)
	srv := server.NewServer(svc, gen, cfg.MaxUploadMB)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Routes(),
	}

	go func() {
		logger.Printf("HTTP server listening on %d (model %s)", cfg.Server.Port, cfg.LLM.Model)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("HTTP server error: %v", err)
		}
	}()

	waitForShutdown(httpServer)
}

func waitForShutdown(httpServer *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Println("Shutting down server...")

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorf("HTTP shutdown error: %v", err)
	}
}
