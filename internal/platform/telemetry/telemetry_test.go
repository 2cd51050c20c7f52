package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/undoable/internal/platform/telemetry"
)

// Init tests are not parallel because they replace the global providers.

type shutdowner interface {
	Shutdown(context.Context) error
}

func TestInit(t *testing.T) {
	inits := map[string]func(ctx context.Context, exporter, endpoint string) (shutdowner, error){
		"tracer": func(ctx context.Context, exporter, endpoint string) (shutdowner, error) {
			return telemetry.InitTracer(ctx, "undoable-test", exporter, endpoint)
		},
		"meter": func(ctx context.Context, exporter, endpoint string) (shutdowner, error) {
			return telemetry.InitMeter(ctx, "undoable-test", exporter, endpoint)
		},
	}

	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  error
	}{
		{"stdout", telemetry.ExporterStdout, "", nil},
		{"otlp", telemetry.ExporterOTLP, "http://localhost:4318", nil},
		{"otlp without endpoint", telemetry.ExporterOTLP, "", telemetry.ErrMissingEndpoint},
		{"unsupported", "zipkin", "", telemetry.ErrUnsupportedExporter},
	}

	for kind, initFn := range inits {
		for _, tt := range tests {
			t.Run(kind+"/"+tt.name, func(t *testing.T) {
				ctx := context.Background()

				p, err := initFn(ctx, tt.exporter, tt.endpoint)
				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr)
					return
				}
				require.NoError(t, err)
				// No collector runs under test, so OTLP shutdown may fail to flush.
				t.Cleanup(func() { _ = p.Shutdown(ctx) })
			})
		}
	}
}

func TestInitTracer_SetsGlobalPropagator(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "undoable-test", telemetry.ExporterStdout, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	assert.ElementsMatch(t, []string{"traceparent", "tracestate", "baggage"}, otel.GetTextMapPropagator().Fields())
}

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	mp := sdkmetric.NewMeterProvider()
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	if metrics.ServerRequestDuration == nil {
		t.Error("ServerRequestDuration is nil")
	}
	if metrics.ServerRequestTotal == nil {
		t.Error("ServerRequestTotal is nil")
	}
	if metrics.HistoryTransitionTotal == nil {
		t.Error("HistoryTransitionTotal is nil")
	}
	if metrics.HistoryCallbackDuration == nil {
		t.Error("HistoryCallbackDuration is nil")
	}
}

func TestNewMetrics_RecordsTransitions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	metrics.HistoryTransitionTotal.Add(ctx, 2, metric.WithAttributes(
		telemetry.AttrTransition.String("undo"),
		telemetry.AttrResult.String("success"),
	))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}

	var found bool
	for _, sm := range rm.ScopeMetrics {
		if sm.Scope.Name != telemetry.ScopeName {
			continue
		}
		for _, m := range sm.Metrics {
			if m.Name != "undo.history.transition.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("data type = %T, want metricdata.Sum[int64]", m.Data)
			}
			if len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 2 {
				t.Errorf("data points = %+v, want single point with value 2", sum.DataPoints)
			}
			found = true
		}
	}
	if !found {
		t.Error("undo.history.transition.total not collected")
	}
}
