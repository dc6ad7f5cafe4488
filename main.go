package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rainbet-service/api"
	"rainbet-service/datasource"
	"rainbet-service/forecast"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Parse command line arguments
	port := flag.Int("port", 8080, "Port to run the server on")
	configFile := flag.String("config", "config.json", "Path to configuration file")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable rate limiting of the observation API")
	sessionTTL := flag.Duration("session-ttl", 2*time.Hour, "How long an idle session keeps its votes")
	flag.Parse()

	// Load configuration, falling back to the built-in Tokyo defaults when
	// no config file is present
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		log.Printf("No config file at %s, using defaults", *configFile)
		config = datasource.DefaultConfig()
	}

	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone %q: %v", config.Timezone, err)
	}

	// Create the data source adapters. The forecast feed is permanently
	// mocked; observations come from the public endpoint.
	forecastAdapter := datasource.NewMockForecastAPI()

	var historicalAdapter datasource.HistoricalAdapter
	historicalAdapter = datasource.NewCultivationHistoricalAPIWithBaseURL(config.Historical.BaseURL)
	if *enableRateLimiting {
		// The observation endpoint is a free public service; keep traffic
		// to 1 request per second with small bursts
		historicalAdapter = datasource.NewRateLimitedHistoricalSource(historicalAdapter, 1.0, 5)
		log.Println("Applied rate limiting to the observation adapter")
	}

	forecaster := forecast.New(
		forecastAdapter,
		historicalAdapter,
		config.Forecast.LocationID,
		config.Historical.LocationID,
		location,
		config.RainThresholdMM,
	)

	// One vote ledger per visitor session, created lazily
	sessions := api.NewSessionStore()

	server := api.NewServer(sessions, forecaster, *port)

	// Set up channels for graceful shutdown
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	pruneStop := make(chan struct{})

	// Periodically drop idle sessions and their tallies
	go func() {
		ticker := time.NewTicker(*sessionTTL / 2)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if pruned := sessions.PruneIdleSessions(*sessionTTL); pruned > 0 {
					log.Printf("Pruned %d idle sessions", pruned)
				}
			case <-pruneStop:
				return
			}
		}
	}()

	// Start the server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdownChan
	fmt.Printf("Shutting down due to %s signal\n", sig)

	close(pruneStop)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	fmt.Println("Shutdown complete")
}
