package telemetry

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/automoto/starcarrier/shared/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestEventLogger_Levels(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	tests := []struct {
		kind  events.Kind
		level string
	}{
		{events.CollisionsResolved, "trace"},
		{events.FighterLaunched, "debug"},
		{events.LandingStageChanged, "debug"},
		{events.LandingComplete, "info"},
		{events.UnitDestroyed, "info"},
		{events.LandingAborted, "warn"},
		{events.LandingDiscarded, "warn"},
		{events.InvariantClamped, "error"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			var buf bytes.Buffer
			l := &EventLogger{logger: zerolog.New(&buf)}
			l.Handle(events.Event{Kind: tt.kind})

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.level, lines[0]["level"])
			assert.Equal(t, tt.kind.String(), lines[0]["event"])
		})
	}
}

func TestEventLogger_Fields(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	bus := events.NewBus()
	AttachEventLogger(bus, zerolog.New(&buf))

	unit, carrier := uuid.New(), uuid.New()
	bus.Publish(events.Event{
		Kind:      events.LandingAborted,
		UnitID:    unit,
		CarrierID: carrier,
		Stage:     "store",
		Reason:    "carrier full",
	})
	bus.Publish(events.Event{Kind: events.LaunchQueued, Count: 3})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "sim", lines[0]["component"])
	assert.Equal(t, unit.String(), lines[0]["unit"])
	assert.Equal(t, carrier.String(), lines[0]["carrier"])
	assert.Equal(t, "store", lines[0]["stage"])
	assert.Equal(t, "carrier full", lines[0]["reason"])
	assert.Equal(t, "Landing aborted", lines[0]["message"])

	assert.NotContains(t, lines[1], "unit")
	assert.Equal(t, 3.0, lines[1]["count"])
}
