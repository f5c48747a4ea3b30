package logging

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		debug bool
		level zapcore.Level
	}{
		{debug: false, level: zapcore.InfoLevel},
		{debug: true, level: zapcore.DebugLevel},
	}

	for _, tc := range cases {
		logger := NewLogger(tc.debug)
		if logger == nil {
			t.Fatal("logger cannot be nil")
		}
		if !logger.Desugar().Core().Enabled(tc.level) {
			t.Errorf("expected %s enabled for debug %t", tc.level, tc.debug)
		}
		if !tc.debug && logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
			t.Error("expected debug disabled in production")
		}
	}
}

func TestDefaultLoggerOnce(t *testing.T) {
	t.Parallel()

	if DefaultLogger() != DefaultLogger() {
		t.Error("expected the same default logger")
	}
}

func TestFromContextFallsBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if FromContext(ctx) != DefaultLogger() {
		t.Error("expected default logger for a bare context")
	}

	named := NewLogger(false).Named("match")
	ctx = WithLogger(ctx, named)
	if got := FromContext(ctx); got != named {
		t.Errorf("expected %#v got %#v", named, got)
	}
}
