package units

import (
	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/shared/events"
)

// QueueLaunchRequest adds one pending launch. It refuses to promise more
// launches than there are fighters aboard.
func (c *Carrier) QueueLaunchRequest() bool {
	if !c.Alive() || len(c.LaunchQueue) >= len(c.StoredFighters) {
		return false
	}
	c.launchSeq++
	c.LaunchQueue = append(c.LaunchQueue, LaunchRequest{seq: c.launchSeq})
	c.publish(events.Event{Kind: events.LaunchQueued, CarrierID: c.ID, Count: len(c.LaunchQueue)})
	return true
}

// LaunchAllFighters queues a launch for every fighter aboard and clears the
// cooldown so the first one leaves immediately. It returns the number of
// requests added.
func (c *Carrier) LaunchAllFighters() int {
	n := 0
	for c.QueueLaunchRequest() {
		n++
	}
	if n > 0 {
		c.CurrentLaunchCooldown = 0
	}
	return n
}

// ProcessLaunchQueue serves the head launch request when the deck is clear
// and the cooldown has expired.
func (c *Carrier) ProcessLaunchQueue() *Fighter {
	if len(c.LaunchQueue) == 0 {
		c.IsLaunchSequenceActive = false
		return nil
	}
	c.IsLaunchSequenceActive = true
	if c.IsAnimatingLaunch || c.CurrentLaunchCooldown > 0 {
		return nil
	}

	c.LaunchQueue = c.LaunchQueue[1:]
	if len(c.StoredFighters) == 0 {
		return nil
	}
	f := c.launchFighter(true)
	if f != nil {
		c.CurrentLaunchCooldown = c.LaunchCooldown
	}
	return f
}

// LaunchFighter launches the most recently stored fighter out of the bow.
// It returns nil when the hangar is empty or the catapult is cooling down.
func (c *Carrier) LaunchFighter() *Fighter {
	return c.launchFighter(false)
}

func (c *Carrier) launchFighter(skipCooldown bool) *Fighter {
	if !c.Alive() || len(c.StoredFighters) == 0 || c.CurrentLaunchCooldown > 0 {
		return nil
	}

	last := len(c.StoredFighters) - 1
	f := c.StoredFighters[last]
	c.StoredFighters[last] = nil
	c.StoredFighters = c.StoredFighters[:last]
	if len(c.LaunchQueue) > len(c.StoredFighters) {
		c.LaunchQueue = c.LaunchQueue[:len(c.StoredFighters)]
	}
	// A fighter stored behind another landing can still sit in the queue.
	c.CancelLanding(f)

	forward := c.Forward()
	pos := c.Pos.Add(forward.Scale(config.Carrier.LaunchOffset * c.Radius))
	vel := c.Vel.Add(forward.Scale(f.MaxSpeed * config.Fighter.LaunchSpeedMultiplier))
	f.launch(pos, vel, c.Rotation)
	f.Bus = c.Bus

	if !skipCooldown {
		c.CurrentLaunchCooldown = c.LaunchCooldown
	}
	c.IsLaunching = true
	c.IsAnimatingLaunch = true
	c.AnimationFrame = 1

	f.publish(events.Event{Kind: events.FighterLaunched, CarrierID: c.ID, Count: len(c.StoredFighters)})
	return f
}

// LaunchFlare returns the deck effect for a fighter that just left.
func LaunchFlare(c *Carrier, f *Fighter) events.Effect {
	return events.NewLaunchFlare(f.Pos, c.Forward().Scale(-f.Radius*3), config.LaunchFlare, config.Combat.LaunchFlareDuration)
}
