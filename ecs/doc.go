// Package ecs provides ECS adapters for bgsp.
//
// [SyncSprites] copies sprite state kept on [Donburi] entities into the slots
// of a bgsp.SpritePool, so game systems can own sprites as components while the
// pool stays a fixed arena. [PublishFrame] reports per-frame compositor stats
// as a typed Donburi event.
//
// Usage:
//
//	e := world.Create(ecs.SpriteComponent)
//	ecs.SpriteComponent.SetValue(world.Entry(e), ecs.SpriteData{Slot: 3, Sprite: sp})
//	ecs.SyncSprites(world, pool)
//	frame := pool.Rendering(viewW, viewH)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
