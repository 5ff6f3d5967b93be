package units

import (
	"slices"

	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/shared/events"
)

// QueueLandingRequest puts f in line to land and starts its approach. It
// fails when the hangar is full, the fighter is already queued, or the
// fighter is dead or returning to another carrier.
func (c *Carrier) QueueLandingRequest(f *Fighter) bool {
	if f == nil || !f.Alive() || !c.Alive() {
		return false
	}
	if len(c.StoredFighters) >= c.FighterCapacity {
		return false
	}
	if c.IsQueuedForLanding(f) {
		return false
	}
	if f.IsReturningToCarrier && f.TargetCarrier != nil && f.TargetCarrier != c {
		return false
	}

	c.LandingQueue = append(c.LandingQueue, f)
	f.beginLanding(c)
	c.publish(events.Event{Kind: events.LandingQueued, UnitID: f.ID, CarrierID: c.ID, Count: len(c.LandingQueue)})
	c.UpdateMovementRestrictions()
	return true
}

// IsQueuedForLanding reports whether f is in the landing queue.
func (c *Carrier) IsQueuedForLanding(f *Fighter) bool {
	return slices.Contains(c.LandingQueue, f)
}

// CancelLanding drops f from the landing queue.
func (c *Carrier) CancelLanding(f *Fighter) {
	if i := slices.Index(c.LandingQueue, f); i >= 0 {
		c.LandingQueue = slices.Delete(c.LandingQueue, i, i+1)
	}
}

// ProcessLandingQueue retires the head of the landing queue once that
// fighter has stored itself, and discards heads that are no longer valid.
// It never moves fighters; their own updates fly the landing. inWorld
// reports whether a fighter is still in the active unit collection and may
// be nil.
func (c *Carrier) ProcessLandingQueue(inWorld func(*Fighter) bool) {
	defer c.UpdateMovementRestrictions()

	if len(c.LandingQueue) == 0 {
		c.IsLandingSequenceActive = false
		return
	}
	c.IsLandingSequenceActive = true
	if c.CurrentLandingCooldown > 0 {
		return
	}

	head := c.LandingQueue[0]
	switch {
	case head.LandingComplete:
		c.LandingQueue = c.LandingQueue[1:]
		c.CurrentLandingCooldown = c.LandingCooldown
	case !head.Alive(),
		inWorld != nil && !inWorld(head),
		!head.IsReturningToCarrier || head.TargetCarrier != c:
		c.LandingQueue = c.LandingQueue[1:]
		c.CurrentLandingCooldown = config.Carrier.StaleLandingPenalty
		c.publish(events.Event{Kind: events.LandingDiscarded, UnitID: head.ID, CarrierID: c.ID, Reason: "stale queue entry"})
	}
}
