package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by step on every call.
type fakeClock struct {
	current time.Time
	step    time.Duration
}

func (c *fakeClock) now() time.Time {
	t := c.current
	c.current = c.current.Add(c.step)
	return t
}

func newTestSlowQueryTracer(threshold, queryTime time.Duration) (*slowQueryTracer, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	tracer := newSlowQueryTracer(threshold, &logger)
	clock := &fakeClock{current: time.Unix(0, 0), step: queryTime}
	tracer.now = clock.now
	return tracer, &buf
}

func runQuery(tracer pgx.QueryTracer, sql string, queryErr error) {
	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: sql})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: queryErr})
}

func TestSlowQueryTracer(t *testing.T) {
	tests := []struct {
		name      string
		queryTime time.Duration
		queryErr  error
		wantLog   bool
	}{
		{name: "fast query", queryTime: 20 * time.Millisecond},
		{name: "at threshold", queryTime: 100 * time.Millisecond, wantLog: true},
		{name: "slow query", queryTime: 2 * time.Second, wantLog: true},
		{name: "slow failing query", queryTime: time.Second, queryErr: errors.New("canceling statement"), wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracer, buf := newTestSlowQueryTracer(100*time.Millisecond, tt.queryTime)

			runQuery(tracer, "SELECT id, title, calories FROM sweets", tt.queryErr)

			if !tt.wantLog {
				assert.Empty(t, buf.String())
				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "warn", entry["level"])
			assert.Equal(t, "slow query", entry["message"])
			assert.Equal(t, "SELECT id, title, calories FROM sweets", entry["sql"])
			assert.EqualValues(t, tt.queryTime.Milliseconds(), entry["duration"])
			if tt.queryErr != nil {
				assert.Equal(t, tt.queryErr.Error(), entry["error"])
			} else {
				assert.NotContains(t, entry, "error")
			}
		})
	}
}

func TestSlowQueryTracerWithoutStart(t *testing.T) {
	tracer, buf := newTestSlowQueryTracer(time.Millisecond, time.Hour)

	tracer.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})

	assert.Empty(t, buf.String())
}

func TestMultiTracerCallsEveryTracer(t *testing.T) {
	first, firstBuf := newTestSlowQueryTracer(time.Millisecond, time.Second)
	second, secondBuf := newTestSlowQueryTracer(time.Millisecond, time.Second)

	runQuery(&multiTracer{tracers: []pgx.QueryTracer{first, second}}, "DELETE FROM sweets WHERE id = $1", nil)

	assert.Contains(t, firstBuf.String(), "DELETE FROM sweets")
	assert.Contains(t, secondBuf.String(), "DELETE FROM sweets")
}
