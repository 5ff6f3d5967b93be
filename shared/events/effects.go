// Package events holds the value types the simulation hands to its host:
// short-lived visual effect descriptors and observability events.
// It depends on no unit type.
package events

import (
	"image/color"

	"github.com/automoto/starcarrier/shared/gamemath"
	"github.com/tanema/gween/ease"
)

// EffectKind identifies how the render layer should draw an Effect.
type EffectKind int

const (
	EffectAttackLine EffectKind = iota
	EffectExplosion
	EffectLaunchFlare
	EffectDestination
)

func (k EffectKind) String() string {
	switch k {
	case EffectAttackLine:
		return "attack_line"
	case EffectExplosion:
		return "explosion"
	case EffectLaunchFlare:
		return "launch_flare"
	case EffectDestination:
		return "destination"
	}
	return "unknown"
}

// Effect is a transient descriptor consumed by rendering. It carries no
// behavior beyond aging.
type Effect struct {
	Kind      EffectKind
	Start     gamemath.Vector
	End       gamemath.Vector // equals Start for point effects
	Color     color.RGBA
	Duration  float64 // seconds
	Remaining float64 // seconds
	MaxRadius float64 // explosions and destination rings
}

func NewAttackLine(start, end gamemath.Vector, c color.RGBA, duration float64) Effect {
	return Effect{Kind: EffectAttackLine, Start: start, End: end, Color: c, Duration: duration, Remaining: duration}
}

func NewExplosion(pos gamemath.Vector, c color.RGBA, maxRadius, duration float64) Effect {
	return Effect{Kind: EffectExplosion, Start: pos, End: pos, Color: c, Duration: duration, Remaining: duration, MaxRadius: maxRadius}
}

// NewLaunchFlare marks a fighter leaving the deck; End is the exit direction
// scaled to the flare length.
func NewLaunchFlare(pos, exit gamemath.Vector, c color.RGBA, duration float64) Effect {
	return Effect{Kind: EffectLaunchFlare, Start: pos, End: pos.Add(exit), Color: c, Duration: duration, Remaining: duration}
}

func NewDestination(pos gamemath.Vector, c color.RGBA, radius, duration float64) Effect {
	return Effect{Kind: EffectDestination, Start: pos, End: pos, Color: c, Duration: duration, Remaining: duration, MaxRadius: radius}
}

// Update ages the effect by dt seconds.
func (e *Effect) Update(dt float64) {
	e.Remaining -= dt
	if e.Remaining < 0 {
		e.Remaining = 0
	}
}

func (e Effect) Expired() bool {
	return e.Remaining <= 0
}

// Progress runs from 0 at creation to 1 at expiry.
func (e Effect) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	return gamemath.Clamp(1-e.Remaining/e.Duration, 0, 1)
}

// Alpha fades from opaque to transparent, fast at first.
func (e Effect) Alpha() uint8 {
	faded := ease.OutQuad(float32(e.Progress()), 0, 255, 1)
	return uint8(gamemath.Clamp(255-float64(faded), 0, 255))
}

// Radius grows toward MaxRadius over the effect lifetime.
func (e Effect) Radius() float64 {
	return e.MaxRadius * float64(ease.OutQuad(float32(e.Progress()), 0, 1, 1))
}
