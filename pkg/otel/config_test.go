package otel_test

import (
	"errors"
	"testing"
	"time"

	"github.com/easyops/portfolio-context-go/pkg/core/config"
	"github.com/easyops/portfolio-context-go/pkg/otel"
)

func TestDefaultConfig(t *testing.T) {
	cfg := otel.DefaultConfig()

	if cfg.Enabled {
		t.Fatal("expected Enabled to be false by default")
	}
	if cfg.ServiceName != "portfolio-context" {
		t.Fatalf("expected ServiceName 'portfolio-context', got %s", cfg.ServiceName)
	}
	if cfg.Exporter.Type != otel.ExporterNone {
		t.Fatalf("expected exporter none, got %s", cfg.Exporter.Type)
	}
	if cfg.Metrics.Interval != 60*time.Second {
		t.Fatalf("expected Metrics.Interval 60s, got %v", cfg.Metrics.Interval)
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := otel.Config{ServiceName: "custom"}.WithDefaults()

	if cfg.ServiceName != "custom" {
		t.Fatalf("expected ServiceName to be preserved, got %s", cfg.ServiceName)
	}
	if cfg.Tracing.SampleRate != 1.0 {
		t.Fatalf("expected default SampleRate 1.0, got %f", cfg.Tracing.SampleRate)
	}
	if cfg.Logging.Format != "text" {
		t.Fatalf("expected default log format text, got %s", cfg.Logging.Format)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*otel.Config)
		wantErr error
	}{
		{"valid", func(*otel.Config) {}, nil},
		{"negative sample rate", func(c *otel.Config) { c.Tracing.SampleRate = -0.1 }, otel.ErrInvalidSampleRate},
		{"sample rate above one", func(c *otel.Config) { c.Tracing.SampleRate = 1.5 }, otel.ErrInvalidSampleRate},
		{"unknown exporter", func(c *otel.Config) { c.Exporter.Type = "zipkin" }, otel.ErrUnsupportedExporter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := otel.DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromConfig(t *testing.T) {
	cfg := otel.FromConfig(config.ObservabilityConfig{
		Enabled:    true,
		Exporter:   "otlp-http",
		Endpoint:   "collector:4318",
		SampleRate: 0.5,
		LogFormat:  "json",
	})

	if !cfg.Enabled || !cfg.Tracing.Enabled || !cfg.Metrics.Enabled {
		t.Fatalf("expected tracing and metrics enabled, got %+v", cfg)
	}
	if cfg.Exporter.Type != otel.ExporterOTLPHTTP || cfg.Exporter.Endpoint != "collector:4318" {
		t.Fatalf("unexpected exporter config: %+v", cfg.Exporter)
	}
	if cfg.Tracing.SampleRate != 0.5 {
		t.Fatalf("expected SampleRate 0.5, got %f", cfg.Tracing.SampleRate)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}
