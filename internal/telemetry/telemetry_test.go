package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"valid", Config{ServiceName: "orders", SampleRate: 1}, nil},
		{"missing service name", Config{SampleRate: 1}, ErrMissingServiceName},
		{"negative sample rate", Config{ServiceName: "orders", SampleRate: -0.1}, ErrInvalidSampleRate},
		{"sample rate above one", Config{ServiceName: "orders", SampleRate: 1.5}, ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestInitialize_WithTracing(t *testing.T) {
	ctx := context.Background()

	tel, err := Initialize(ctx, Config{ServiceName: "orders", EnableTracing: true, SampleRate: 1},
		WithTraceExporter(NewNoopTraceExporter()))
	require.NoError(t, err)
	require.NotNil(t, tel.TracerProvider())

	spanCtx, span := StartSpan(ctx, "test")
	assert.NotEmpty(t, TraceID(spanCtx))
	RecordSpanError(span, errors.New("boom"))
	span.End()

	assert.NoError(t, tel.Shutdown(ctx))
}

func TestInitialize_WithoutTracing(t *testing.T) {
	tel, err := Initialize(context.Background(), Config{ServiceName: "orders"})

	require.NoError(t, err)
	assert.Nil(t, tel.TracerProvider())
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestTraceID_NoSpan(t *testing.T) {
	assert.Empty(t, TraceID(context.Background()))
}

func TestCreateSampler(t *testing.T) {
	assert.Contains(t, createSampler(0).Description(), "AlwaysOff")
	assert.Contains(t, createSampler(1).Description(), "AlwaysOn")
	assert.Contains(t, createSampler(0.5).Description(), "TraceIDRatioBased")
}
