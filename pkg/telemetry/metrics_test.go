package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func setupTelemetryDisabled(t *testing.T) func() {
	ctx := context.Background()
	cfg := &Config{
		Enabled:     false,
		ServiceName: "test-service",
	}

	_, err := Init(ctx, cfg)
	require.NoError(t, err)

	return func() {
		_ = Shutdown(ctx)
	}
}

func TestNewCounter_Disabled(t *testing.T) {
	cleanup := setupTelemetryDisabled(t)
	defer cleanup()

	counter, err := NewCounter(MetricOpts{
		Name:        "test_counter",
		Description: "A test counter",
		Unit:        "1",
	})
	require.NoError(t, err)
	assert.NotNil(t, counter)
}

func TestCounter_Add_Disabled(t *testing.T) {
	cleanup := setupTelemetryDisabled(t)
	defer cleanup()

	counter, err := NewCounter(MetricOpts{
		Name:        "test_counter_add",
		Description: "A test counter for Add",
		Unit:        "1",
	})
	require.NoError(t, err)

	ctx := context.Background()

	// Should not panic
	counter.Add(ctx, 5)
	counter.Add(ctx, 10, attribute.String("key", "value"))
}

func TestCounter_Inc_Disabled(t *testing.T) {
	cleanup := setupTelemetryDisabled(t)
	defer cleanup()

	counter, err := NewCounter(MetricOpts{
		Name:        "test_counter_inc",
		Description: "A test counter for Inc",
		Unit:        "1",
	})
	require.NoError(t, err)

	ctx := context.Background()

	// Should not panic
	counter.Inc(ctx)
	counter.Inc(ctx, attribute.String("key", "value"))
}

func TestNewHistogram_Disabled(t *testing.T) {
	cleanup := setupTelemetryDisabled(t)
	defer cleanup()

	histogram, err := NewHistogram(MetricOpts{
		Name:        "test_histogram",
		Description: "A test histogram",
		Unit:        "ms",
	})
	require.NoError(t, err)
	assert.NotNil(t, histogram)
}

func TestHistogram_Record_Disabled(t *testing.T) {
	cleanup := setupTelemetryDisabled(t)
	defer cleanup()

	histogram, err := NewHistogram(MetricOpts{
		Name:        "test_histogram_record",
		Description: "A test histogram for Record",
		Unit:        "ms",
	})
	require.NoError(t, err)

	ctx := context.Background()

	// Should not panic
	histogram.Record(ctx, 12.5)
	histogram.Record(ctx, 99.9, attribute.String("key", "value"))
}
