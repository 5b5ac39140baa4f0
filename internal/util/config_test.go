package util

import (
	"perftracker/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("yaml with defaults", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("provider: postgres\ndb:\n  host: localhost\n  port: \"5440\"\n"))
		require.NoError(t, err)
		require.Equal(t, ProviderPostgres, cfg.Provider)
		require.Equal(t, 3009, cfg.Port)
		require.Equal(t, 30, cfg.FetchTimeoutSeconds)
		require.Equal(t, domain.DefaultBenchmarks(), cfg.Benchmarks)
		require.Equal(t, "host=localhost port=5440 user= password= dbname= sslmode=disable", cfg.Db.ToConnectionStr())
	})

	t.Run("json", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`{"provider": "csv", "pricesFile": "prices.csv", "benchmarks": [{"name": "SPY", "symbol": "SPY"}]}`))
		require.NoError(t, err)
		require.Equal(t, "prices.csv", cfg.PricesFile)
		require.Equal(t, []domain.Benchmark{{Name: "SPY", Symbol: "SPY"}}, cfg.Benchmarks)
	})

	t.Run("csv without file", func(t *testing.T) {
		_, err := ParseConfig([]byte("provider: csv"))
		require.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := ParseConfig([]byte("provider: bloomberg"))
		require.Error(t, err)
	})
}
