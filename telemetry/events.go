package telemetry

import (
	"github.com/automoto/starcarrier/shared/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EventLogger writes one structured line per simulation event.
type EventLogger struct {
	logger zerolog.Logger
}

// AttachEventLogger subscribes a new EventLogger to bus.
func AttachEventLogger(bus *events.Bus, logger zerolog.Logger) *EventLogger {
	l := &EventLogger{logger: logger.With().Str("component", "sim").Logger()}
	bus.Subscribe(l.Handle)
	return l
}

// Handle logs e at a level matching its severity.
func (l *EventLogger) Handle(e events.Event) {
	ev := l.logger.WithLevel(levelFor(e.Kind)).Str("event", e.Kind.String())

	if e.UnitID != uuid.Nil {
		ev = ev.Str("unit", e.UnitID.String())
	}
	if e.CarrierID != uuid.Nil {
		ev = ev.Str("carrier", e.CarrierID.String())
	}
	if e.Faction != "" {
		ev = ev.Str("faction", e.Faction)
	}
	if e.Stage != "" {
		ev = ev.Str("stage", e.Stage)
	}
	if e.Reason != "" {
		ev = ev.Str("reason", e.Reason)
	}
	if e.Count != 0 {
		ev = ev.Int("count", e.Count)
	}

	ev.Msg(message(e.Kind))
}

func levelFor(k events.Kind) zerolog.Level {
	switch k {
	case events.CollisionsResolved:
		return zerolog.TraceLevel
	case events.FighterLaunched, events.LaunchQueued, events.LandingQueued, events.LandingStageChanged:
		return zerolog.DebugLevel
	case events.LandingComplete, events.UnitDestroyed:
		return zerolog.InfoLevel
	case events.LandingAborted, events.LandingDiscarded:
		return zerolog.WarnLevel
	case events.InvariantClamped:
		return zerolog.ErrorLevel
	}
	return zerolog.DebugLevel
}

func message(k events.Kind) string {
	switch k {
	case events.FighterLaunched:
		return "Fighter launched"
	case events.LaunchQueued:
		return "Launch queued"
	case events.LandingQueued:
		return "Landing queued"
	case events.LandingStageChanged:
		return "Landing stage changed"
	case events.LandingComplete:
		return "Fighter landed"
	case events.LandingAborted:
		return "Landing aborted"
	case events.LandingDiscarded:
		return "Stale landing request discarded"
	case events.UnitDestroyed:
		return "Unit destroyed"
	case events.CollisionsResolved:
		return "Collisions resolved"
	case events.InvariantClamped:
		return "Carrier state clamped"
	}
	return k.String()
}
