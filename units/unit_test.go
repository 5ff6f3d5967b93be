package units

import (
	"testing"

	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/automoto/starcarrier/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60.0

func TestNew_Defaults(t *testing.T) {
	u := New(Friendly, gamemath.Vec(10, 20), config.Unit)

	assert.Equal(t, KindUnit, u.Kind)
	assert.Equal(t, 100, u.HP)
	assert.Equal(t, 100, u.HPMax)
	assert.Equal(t, StateIdle, u.State)
	assert.True(t, u.CollisionEnabled)
	assert.Equal(t, 255.0, u.Opacity)
	assert.Equal(t, gamemath.Vec(10, 20), u.Pos)
	assert.True(t, u.Alive())
}

func TestNew_ZeroMassDefaultsToOne(t *testing.T) {
	stats := config.Unit
	stats.Mass = 0
	assert.Equal(t, 1.0, New(Enemy, gamemath.Vector{}, stats).Mass)
}

func TestAlive_NilUnit(t *testing.T) {
	var u *Unit
	assert.False(t, u.Alive())
}

func TestMoveToPoint_Arrives(t *testing.T) {
	u := New(Friendly, gamemath.Vec(0, 0), config.Unit)
	u.MoveToPoint(200, 0)
	require.Equal(t, StateMoving, u.State)

	for i := 0; i < 600 && u.State == StateMoving; i++ {
		u.Update(tick)
		assert.LessOrEqual(t, u.Vel.Len(), u.MaxSpeed+1e-9)
	}

	assert.Equal(t, StateIdle, u.State)
	assert.Equal(t, gamemath.Vec(200, 0), u.Pos)
	assert.Equal(t, gamemath.Vector{}, u.Vel)
	assert.Nil(t, u.Target)
	assert.True(t, u.TrailReset)
}

func TestMoveToPoint_IgnoredWhenDestroyed(t *testing.T) {
	u := New(Friendly, gamemath.Vector{}, config.Unit)
	u.TakeDamage(1000)
	u.MoveToPoint(50, 50)

	assert.Equal(t, StateDestroyed, u.State)
	assert.Nil(t, u.Target)
}

func TestTakeDamage_FloorsAtZeroAndDestroys(t *testing.T) {
	bus := events.NewBus()
	var got []events.Event
	bus.Subscribe(func(e events.Event) { got = append(got, e) })

	u := New(Enemy, gamemath.Vec(5, 5), config.Unit)
	u.Bus = bus
	u.TakeDamage(30)
	assert.Equal(t, 70, u.HP)
	assert.Empty(t, got)

	u.TakeDamage(500)
	assert.Equal(t, 0, u.HP)
	assert.Equal(t, StateDestroyed, u.State)
	require.Len(t, got, 1)
	assert.Equal(t, events.UnitDestroyed, got[0].Kind)
	assert.Equal(t, u.ID, got[0].UnitID)
	assert.Equal(t, "enemy", got[0].Faction)

	// Further damage and state changes are ignored.
	u.TakeDamage(10)
	u.SetState(StateIdle)
	assert.Equal(t, StateDestroyed, u.State)
	assert.Len(t, got, 1)
}

func TestAttack_Refusals(t *testing.T) {
	u := New(Friendly, gamemath.Vector{}, config.Unit)
	dead := New(Enemy, gamemath.Vec(10, 0), config.Enemy)
	dead.TakeDamage(1000)

	assert.False(t, u.Attack(u))
	assert.False(t, u.Attack(dead))
	assert.False(t, u.Attack(nil))
	assert.Equal(t, StateIdle, u.State)
}

func TestAttack_ChasesThenFires(t *testing.T) {
	attacker := New(Friendly, gamemath.Vec(0, 0), config.Unit)
	target := New(Enemy, gamemath.Vec(200, 0), config.Enemy)
	require.True(t, attacker.Attack(target))

	var fx []events.Effect
	for i := 0; i < 600 && len(fx) == 0; i++ {
		fx = attacker.Update(tick)
	}

	require.NotEmpty(t, fx)
	assert.Equal(t, events.EffectAttackLine, fx[0].Kind)
	assert.Equal(t, StateAttacking, attacker.State)
	assert.Equal(t, 90, target.HP)
	assert.InDelta(t, attacker.AttackCooldown, attacker.CurrentAttackCooldown, 1e-9)
	assert.True(t, InRange(attacker, target))
}

func TestAttack_StopsWhenTargetDies(t *testing.T) {
	attacker := New(Friendly, gamemath.Vec(0, 0), config.Unit)
	target := New(Enemy, gamemath.Vec(30, 0), config.Enemy)
	target.HP = 5
	require.True(t, attacker.Attack(target))

	attacker.Update(tick) // close enough: switches to attacking
	require.Equal(t, StateAttacking, attacker.State)

	fx := attacker.Update(tick)
	require.Len(t, fx, 2)
	assert.Equal(t, events.EffectAttackLine, fx[0].Kind)
	assert.Equal(t, events.EffectExplosion, fx[1].Kind)
	assert.False(t, target.Alive())

	attacker.Update(tick)
	assert.Equal(t, StateIdle, attacker.State)
	assert.Nil(t, attacker.Target)
	assert.Equal(t, 0.0, attacker.CurrentAttackCooldown)
}

func TestAttack_ResumesChaseWhenTargetLeavesRange(t *testing.T) {
	attacker := New(Friendly, gamemath.Vec(0, 0), config.Unit)
	target := New(Enemy, gamemath.Vec(30, 0), config.Enemy)
	require.True(t, attacker.Attack(target))
	attacker.Update(tick)
	attacker.Update(tick)
	require.Equal(t, StateAttacking, attacker.State)

	target.Pos = gamemath.Vec(300, 0)
	attacker.Update(tick)

	assert.Equal(t, StateMoving, attacker.State)
	assert.Equal(t, 0.0, attacker.CurrentAttackCooldown)
}

func TestUpdate_CooldownTicksOutsideCombat(t *testing.T) {
	u := New(Friendly, gamemath.Vector{}, config.Unit)
	u.CurrentAttackCooldown = 0.05

	for i := 0; i < 10; i++ {
		u.Update(tick)
	}
	assert.Equal(t, 0.0, u.CurrentAttackCooldown)
}

func TestUpdate_IdleCoastsToRest(t *testing.T) {
	u := New(Friendly, gamemath.Vector{}, config.Unit)
	u.Vel = gamemath.Vec(50, 0)

	prev := u.Vel.Len()
	for i := 0; i < 120; i++ {
		u.Update(tick)
		assert.Less(t, u.Vel.Len(), prev)
		prev = u.Vel.Len()
	}
	assert.Greater(t, u.Pos.X, 0.0)
}

func TestSetState_TrailResetOnLeavingMoving(t *testing.T) {
	u := New(Friendly, gamemath.Vector{}, config.Unit)
	u.SetState(StateMoving)
	assert.False(t, u.TrailReset)
	u.SetState(StateAttacking)
	assert.True(t, u.TrailReset)
}

func TestKindFactionStateStrings(t *testing.T) {
	assert.Equal(t, "carrier", KindCarrier.String())
	assert.Equal(t, "fighter", KindFighter.String())
	assert.Equal(t, "unit", KindUnit.String())
	assert.Equal(t, "enemy", Enemy.String())
	assert.Equal(t, Friendly, Enemy.Opponent())
	assert.Equal(t, Enemy, Friendly.Opponent())
	assert.Equal(t, "attacking", StateAttacking.String())
	assert.Equal(t, "align", StageAlign.String())
}
