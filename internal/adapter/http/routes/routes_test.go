package routes

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseDueInDays(t *testing.T) {
	t.Run("unset defers to the usecase default", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		if got := parseDueInDays("", zap.New(core)); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
		if logs.Len() != 0 {
			t.Fatalf("expected no warnings, got %d", logs.Len())
		}
	})

	t.Run("valid value", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		if got := parseDueInDays("45", zap.New(core)); got != 45 {
			t.Fatalf("expected 45, got %d", got)
		}
		if logs.Len() != 0 {
			t.Fatalf("expected no warnings, got %d", logs.Len())
		}
	})

	t.Run("malformed value is warned about and ignored", func(t *testing.T) {
		for _, value := range []string{"soon", "-5", "0"} {
			core, logs := observer.New(zap.WarnLevel)
			if got := parseDueInDays(value, zap.New(core)); got != 0 {
				t.Fatalf("expected 0 for %q, got %d", value, got)
			}
			if logs.Len() != 1 {
				t.Fatalf("expected one warning for %q, got %d", value, logs.Len())
			}
		}
	})
}
