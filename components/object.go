package components

import (
	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Bounds returns the object's rectangle for overlap tests.
func (o *ObjectData) Bounds() gamemath.Rect {
	return gamemath.RectFromObject(o.Object)
}

var Object = donburi.NewComponentType[ObjectData]()
