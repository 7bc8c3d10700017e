package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Camera         = donburi.NewTag().SetName("Camera")
	Npc            = donburi.NewTag().SetName("Npc")
	Orb            = donburi.NewTag().SetName("Orb")
	OrbLight       = donburi.NewTag().SetName("OrbLight")
	DialogueRunner = donburi.NewTag().SetName("DialogueRunner")
)

// Resolv tags double as collision layers: an object is a member of the layers
// named by its tags, and a sensor only reacts to the tags it lists.
const (
	ResolvPlayer = "player"
	ResolvSensor = "sensor"
	ResolvTalk   = "talk"
)
