package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a unit's broad-phase collision box.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the resolv space holding every unit's collision box.
var Space = donburi.NewComponentType[resolv.Space]()
