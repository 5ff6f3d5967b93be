package units

import (
	"github.com/automoto/starcarrier/shared/gamemath"
	"github.com/google/uuid"
)

// Snapshot is the read-only view of a unit handed to rendering and UI.
type Snapshot struct {
	ID           uuid.UUID
	Kind         Kind
	Faction      Faction
	Pos          gamemath.Vector
	Rotation     float64
	HP           int
	HPMax        int
	Radius       float64
	State        State
	Selected     bool
	Opacity      float64
	LandingStage LandingStage
}

// CarrierStatus is the flight-deck view of a carrier for UI display.
type CarrierStatus struct {
	ID                     uuid.UUID
	StoredFighters         int
	FighterCapacity        int
	CurrentLaunchCooldown  float64
	CurrentLandingCooldown float64
	LaunchQueueLen         int
	LandingQueueLen        int
	MovementRestricted     bool
	RotationRestricted     bool
	RestrictionReason      string
}

func (u *Unit) Snapshot() Snapshot {
	return Snapshot{
		ID:       u.ID,
		Kind:     u.Kind,
		Faction:  u.Faction,
		Pos:      u.Pos,
		Rotation: u.Rotation,
		HP:       u.HP,
		HPMax:    u.HPMax,
		Radius:   u.Radius,
		State:    u.State,
		Selected: u.Selected,
		Opacity:  u.Opacity,
	}
}

func (f *Fighter) Snapshot() Snapshot {
	s := f.Unit.Snapshot()
	s.LandingStage = f.LandingStage
	return s
}

func (c *Carrier) Status() CarrierStatus {
	return CarrierStatus{
		ID:                     c.ID,
		StoredFighters:         len(c.StoredFighters),
		FighterCapacity:        c.FighterCapacity,
		CurrentLaunchCooldown:  c.CurrentLaunchCooldown,
		CurrentLandingCooldown: c.CurrentLandingCooldown,
		LaunchQueueLen:         len(c.LaunchQueue),
		LandingQueueLen:        len(c.LandingQueue),
		MovementRestricted:     c.MovementRestricted,
		RotationRestricted:     c.RotationRestricted,
		RestrictionReason:      c.RestrictionReason,
	}
}
