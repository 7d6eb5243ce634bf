package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Enemy   = donburi.NewTag().SetName("Enemy")
	Hitbox  = donburi.NewTag().SetName("Hitbox")
	Hurtbox = donburi.NewTag().SetName("Hurtbox")
	Camera  = donburi.NewTag().SetName("Camera")
)
