package components

import "github.com/yohamta/donburi"

// ParentData is the back-reference from an owned entity to its direct owner.
type ParentData struct {
	Entity donburi.Entity
}

var Parent = donburi.NewComponentType[ParentData]()

// ChildrenData lists the entities an owner holds, in attach order.
type ChildrenData struct {
	Entities []donburi.Entity
}

var Children = donburi.NewComponentType[ChildrenData]()
