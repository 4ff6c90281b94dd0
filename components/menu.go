package components

import "github.com/yohamta/donburi"

// MenuData stores the current state of the title menu
type MenuData struct {
	SecondsIndex int // Index into config.Session.SecondsOptions
}

var Menu = donburi.NewComponentType[MenuData]()
