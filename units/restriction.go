package units

import "github.com/automoto/starcarrier/config"

const (
	reasonLaunch  = "Active launch operations"
	reasonLanding = "Active landing operations"
	reasonBoth    = "Active launch and landing operations"
)

// UpdateMovementRestrictions recomputes the speed and turn limits from the
// current operation flags. It is idempotent.
func (c *Carrier) UpdateMovementRestrictions() {
	launching := c.IsLaunching || len(c.LaunchQueue) > 0
	landing := c.IsLandingSequenceActive || len(c.LandingQueue) > 0

	if (launching || landing) && !c.EmergencyMove {
		c.MaxSpeed = c.OriginalMaxSpeed * config.Carrier.RestrictedSpeedFactor
		c.MaxRotationSpeed = c.OriginalMaxRotationSpeed * config.Carrier.RestrictedRotationFactor
		c.MovementRestricted = true
		c.RotationRestricted = true
		switch {
		case launching && landing:
			c.RestrictionReason = reasonBoth
		case launching:
			c.RestrictionReason = reasonLaunch
		default:
			c.RestrictionReason = reasonLanding
		}
		return
	}

	c.MaxSpeed = c.OriginalMaxSpeed
	c.MaxRotationSpeed = c.OriginalMaxRotationSpeed
	c.MovementRestricted = false
	c.RotationRestricted = false
	c.RestrictionReason = ""
}

// SetEmergencyMove toggles the full override of the restriction policy.
func (c *Carrier) SetEmergencyMove(on bool) {
	c.EmergencyMove = on
	c.UpdateMovementRestrictions()
}

// MoveToPoint orders the carrier to a point. It is refused while flight
// operations restrict movement, unless emergency movement is on.
func (c *Carrier) MoveToPoint(x, y float64) bool {
	c.UpdateMovementRestrictions()
	if c.MovementRestricted && !c.EmergencyMove {
		return false
	}
	c.Unit.MoveToPoint(x, y)
	return true
}
