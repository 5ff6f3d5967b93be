package components

import "github.com/yohamta/donburi"

// DeathData marks a unit entity that leaves the world at the end of the
// tick, either destroyed or stored aboard a carrier.
type DeathData struct {
	Reason string
}

const (
	DeathDestroyed = "destroyed"
	DeathStored    = "stored"
)

var Death = donburi.NewComponentType[DeathData]()
