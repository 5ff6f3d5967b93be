package telemetry

import (
	"context"
	"fmt"

	"github.com/automoto/starcarrier/shared/events"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ActiveCounter reports live units keyed by faction name.
type ActiveCounter func() map[string]int

// Metrics counts simulation events. Uses the global OTel meter, which is a
// no-op unless a provider is configured.
type Metrics struct {
	launched   metric.Int64Counter
	landed     metric.Int64Counter
	aborted    metric.Int64Counter
	destroyed  metric.Int64Counter
	collisions metric.Int64Counter
	clamped    metric.Int64Counter
	active     metric.Int64ObservableGauge
}

// NewMetrics creates the instruments. active may be nil, in which case the
// gauge is not registered.
func NewMetrics(active ActiveCounter) (*Metrics, error) {
	return newMetrics(meter(), active)
}

func newMetrics(m metric.Meter, active ActiveCounter) (*Metrics, error) {
	mt := &Metrics{}
	var err error

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&mt.launched, "sim.fighters.launched", "Fighters launched from carriers"},
		{&mt.landed, "sim.fighters.landed", "Fighters stored after landing"},
		{&mt.aborted, "sim.landings.aborted", "Landings aborted or discarded"},
		{&mt.destroyed, "sim.units.destroyed", "Units destroyed"},
		{&mt.collisions, "sim.collisions.resolved", "Overlapping pairs separated"},
		{&mt.clamped, "sim.invariant.clamped", "Carrier state corrections"},
	}
	for _, c := range counters {
		*c.dst, err = m.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("creating %s counter: %w", c.name, err)
		}
	}

	mt.active, err = m.Int64ObservableGauge(
		"sim.units.active",
		metric.WithDescription("Live units per faction"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating active units gauge: %w", err)
	}
	if active != nil {
		_, err = m.RegisterCallback(
			func(ctx context.Context, o metric.Observer) error {
				for faction, n := range active() {
					o.ObserveInt64(mt.active, int64(n),
						metric.WithAttributes(attribute.String("faction", faction)))
				}
				return nil
			},
			mt.active,
		)
		if err != nil {
			return nil, fmt.Errorf("registering active units callback: %w", err)
		}
	}

	return mt, nil
}

// Attach feeds the counters from bus.
func (m *Metrics) Attach(bus *events.Bus) {
	bus.Subscribe(m.Handle)
}

// Handle records e.
func (m *Metrics) Handle(e events.Event) {
	ctx := context.Background()
	switch e.Kind {
	case events.FighterLaunched:
		m.launched.Add(ctx, 1)
	case events.LandingComplete:
		m.landed.Add(ctx, 1)
	case events.LandingAborted, events.LandingDiscarded:
		reason := e.Reason
		if e.Kind == events.LandingDiscarded {
			reason = "discarded"
		}
		m.aborted.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	case events.UnitDestroyed:
		m.destroyed.Add(ctx, 1, metric.WithAttributes(attribute.String("faction", e.Faction)))
	case events.CollisionsResolved:
		m.collisions.Add(ctx, int64(e.Count))
	case events.InvariantClamped:
		m.clamped.Add(ctx, 1)
	}
}
