package events

import (
	"image/color"
	"testing"

	"github.com/automoto/starcarrier/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestBus_FanOutInOrder(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(func(e Event) { got = append(got, "a:"+e.Kind.String()) })
	bus.Subscribe(func(e Event) { got = append(got, "b:"+e.Kind.String()) })

	bus.Publish(Event{Kind: LandingComplete})

	assert.Equal(t, []string{"a:landing_complete", "b:landing_complete"}, got)
}

func TestBus_NilIsSilent(t *testing.T) {
	var bus *Bus
	assert.NotPanics(t, func() { bus.Publish(Event{Kind: UnitDestroyed}) })
}

func TestEffect_Aging(t *testing.T) {
	e := NewAttackLine(gamemath.Vec(0, 0), gamemath.Vec(10, 0), color.RGBA{B: 255, A: 255}, 0.15)
	assert.False(t, e.Expired())
	assert.Equal(t, uint8(255), e.Alpha())

	e.Update(0.1)
	assert.False(t, e.Expired())
	assert.Less(t, e.Alpha(), uint8(255))

	e.Update(0.1)
	assert.True(t, e.Expired())
	assert.Equal(t, 0.0, e.Remaining)
	assert.Equal(t, uint8(0), e.Alpha())
}

func TestEffect_ExplosionRadiusGrows(t *testing.T) {
	e := NewExplosion(gamemath.Vec(5, 5), color.RGBA{R: 255, A: 255}, 50, 0.5)
	assert.Equal(t, 0.0, e.Radius())
	e.Update(0.25)
	mid := e.Radius()
	assert.Greater(t, mid, 25.0)
	e.Update(0.25)
	assert.InDelta(t, 50.0, e.Radius(), 1e-6)
}
