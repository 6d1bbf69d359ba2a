package ecs

import (
	bgsp "github.com/tac-xpon/bgsp-lib2"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// SpriteData binds an entity to one slot of a SpritePool.
type SpriteData struct {
	Slot   int
	Sprite bgsp.Sprite
}

// SpriteComponent is the Donburi component holding an entity's sprite.
var SpriteComponent = donburi.NewComponentType[SpriteData]()

// FrameRenderedEvent is the Donburi event type carrying per-frame compositor
// stats. Subscribe to it in your ECS systems and drain it with ProcessEvents.
var FrameRenderedEvent = events.NewEventType[bgsp.FrameStats]()

var spriteQuery = donburi.NewQuery(filter.Contains(SpriteComponent))

// SyncSprites copies every entity's sprite into its pool slot and hides the
// slots no entity claims. Entities whose slot is outside the pool are
// skipped. When two entities claim the same slot, the one visited last wins.
// It returns the number of entities copied.
func SyncSprites(world donburi.World, pool *bgsp.SpritePool) int {
	claimed := make([]bool, pool.MaxSprites())
	synced := 0
	spriteQuery.Each(world, func(entry *donburi.Entry) {
		data := SpriteComponent.Get(entry)
		if data.Slot < 0 || data.Slot >= len(claimed) {
			return
		}
		*pool.Sp(data.Slot) = data.Sprite
		claimed[data.Slot] = true
		synced++
	})
	for i, ok := range claimed {
		if !ok {
			pool.Sp(i).Visible = false
		}
	}
	return synced
}

// PublishFrame queues a FrameRenderedEvent for the world.
func PublishFrame(world donburi.World, stats bgsp.FrameStats) {
	FrameRenderedEvent.Publish(world, stats)
}
