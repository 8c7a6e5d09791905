package gameprovider

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

type providerMetricsCollection struct {
	fetchCount   metric.Int64Counter
	gamesFetched metric.Int64Counter
}

func setupProviderMetrics(meter metric.Meter, platform string) (providerMetricsCollection, error) {
	fetchCount, err := meter.Int64Counter(
		fmt.Sprintf("gameprovider/%s/fetch_count", platform),
		metric.WithDescription("Number of bulk game fetches performed"),
	)
	if err != nil {
		return providerMetricsCollection{}, fmt.Errorf("failed to create metric: %w", err)
	}

	gamesFetched, err := meter.Int64Counter(
		fmt.Sprintf("gameprovider/%s/games_fetched", platform),
		metric.WithDescription("Number of games returned by bulk fetches"),
	)
	if err != nil {
		return providerMetricsCollection{}, fmt.Errorf("failed to create metric: %w", err)
	}

	return providerMetricsCollection{
		fetchCount:   fetchCount,
		gamesFetched: gamesFetched,
	}, nil
}
