package tags

import "github.com/yohamta/donburi"

var (
	Friendly = donburi.NewTag().SetName("Friendly")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Carrier  = donburi.NewTag().SetName("Carrier")
	Fighter  = donburi.NewTag().SetName("Fighter")
)

// Resolv tags for the collision broad phase
const (
	ResolvUnit     = "unit"
	ResolvFriendly = "friendly"
	ResolvEnemy    = "enemy"
	ResolvCarrier  = "carrier"
	ResolvFighter  = "fighter"
)
