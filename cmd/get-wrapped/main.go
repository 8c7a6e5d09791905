package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/chesswrapped/chesswrapped/internal/adapters/gameprovider"
	"github.com/chesswrapped/chesswrapped/internal/domain"
	"github.com/chesswrapped/chesswrapped/internal/getwrapped"
)

// Fetches a player's games straight from the platform API and prints the
// aggregated report as JSON. Useful for eyeballing aggregation changes
// without running the server.
//
//	go run ./cmd/get-wrapped -platform lichess -year 2025 someplayer
func main() {
	platformFlag := flag.String("platform", "chesscom", "chesscom or lichess")
	yearFlag := flag.Int("year", time.Now().UTC().Year(), "year to aggregate")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("No player name provided")
	}
	username := flag.Arg(0)

	platform, ok := domain.PlatformFromString(*platformFlag)
	if !ok {
		log.Fatalf("Unknown platform: %s", *platformFlag)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}

	var provider gameprovider.GameProvider
	var err error
	switch platform {
	case domain.PlatformChessCom:
		provider, err = gameprovider.NewChessComProvider(httpClient, 0)
	case domain.PlatformLichess:
		provider, err = gameprovider.NewLichessProvider(httpClient, os.Getenv("LICHESS_TOKEN"), 0, time.Now)
	}
	if err != nil {
		log.Fatalf("Failed to initialize provider: %v", err)
	}

	start := time.Date(*yearFlag, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(*yearFlag+1, 1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)

	getWrapped := getwrapped.BuildGetWrapped(
		map[domain.Platform]gameprovider.GameProvider{platform: provider},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	stats, err := getWrapped(ctx, username, platform, start, end)
	if err != nil {
		log.Fatalf("Failed to get wrapped stats: %v", err)
	}

	marshalled, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal stats: %v", err)
	}

	fmt.Println(string(marshalled))
}
