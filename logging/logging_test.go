package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stayease/navbar/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextAttributesAreLogged(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.NewLogger(&buf, slog.LevelInfo)
	ctx := logging.SessionCtx(context.Background(), "abc-123")
	ctx = logging.AppendCtx(ctx, slog.String("path", "/blog"))

	logger.InfoContext(ctx, "Session opened")

	out := buf.String()
	assert.Contains(t, out, "msg=\"Session opened\"")
	assert.Contains(t, out, "session=abc-123")
	assert.Contains(t, out, "path=/blog")
}

func TestAppendCtxDoesNotLeakBetweenSiblings(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.NewLogger(&buf, slog.LevelInfo)
	parent := logging.AppendCtx(context.Background(), slog.String("a", "1"))
	left := logging.AppendCtx(parent, slog.String("b", "left"))
	_ = logging.AppendCtx(parent, slog.String("b", "right"))

	logger.InfoContext(left, "hello")

	assert.Contains(t, buf.String(), "b=left")
	assert.NotContains(t, buf.String(), "b=right")
}

func TestWithKeepsContextHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.NewLogger(&buf, slog.LevelInfo).With("component", "live")
	ctx := logging.SessionCtx(context.Background(), "s1")

	logger.InfoContext(ctx, "hi")

	assert.Contains(t, buf.String(), "component=live")
	assert.Contains(t, buf.String(), "session=s1")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tc.in)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tc.want, got)
		})
	}
}
