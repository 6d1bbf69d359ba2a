package ecs

import (
	"testing"

	bgsp "github.com/tac-xpon/bgsp-lib2"

	"github.com/yohamta/donburi"
)

func newPool(n int) *bgsp.SpritePool {
	return bgsp.NewSpritePool(n, bgsp.NewTextureBank(nil, nil, 1))
}

func addSprite(world donburi.World, data SpriteData) donburi.Entity {
	e := world.Create(SpriteComponent)
	SpriteComponent.SetValue(world.Entry(e), data)
	return e
}

func TestSyncSpritesCopiesIntoSlots(t *testing.T) {
	world := donburi.NewWorld()
	pool := newPool(4)

	addSprite(world, SpriteData{Slot: 1, Sprite: bgsp.Sprite{X: 10, Y: 20, Code: 7, Priority: 3, Visible: true}})
	addSprite(world, SpriteData{Slot: 3, Sprite: bgsp.Sprite{X: -5, Code: 2, Visible: true}})

	if got := SyncSprites(world, pool); got != 2 {
		t.Fatalf("SyncSprites = %d, want 2", got)
	}

	s := pool.Sp(1)
	if s.X != 10 || s.Y != 20 || s.Code != 7 || s.Priority != 3 || !s.Visible {
		t.Errorf("slot 1 = %+v", *s)
	}
	if s := pool.Sp(3); s.X != -5 || s.Code != 2 || !s.Visible {
		t.Errorf("slot 3 = %+v", *s)
	}
}

func TestSyncSpritesHidesUnclaimedSlots(t *testing.T) {
	world := donburi.NewWorld()
	pool := newPool(3)
	pool.Sp(0).Visible = true
	pool.Sp(2).Visible = true

	addSprite(world, SpriteData{Slot: 2, Sprite: bgsp.Sprite{Visible: true}})
	SyncSprites(world, pool)

	if pool.Sp(0).Visible {
		t.Error("slot 0 should be hidden when no entity claims it")
	}
	if !pool.Sp(2).Visible {
		t.Error("slot 2 should stay visible")
	}
}

func TestSyncSpritesSkipsOutOfRangeSlots(t *testing.T) {
	world := donburi.NewWorld()
	pool := newPool(2)

	addSprite(world, SpriteData{Slot: -1, Sprite: bgsp.Sprite{Visible: true}})
	addSprite(world, SpriteData{Slot: 2, Sprite: bgsp.Sprite{Visible: true}})

	if got := SyncSprites(world, pool); got != 0 {
		t.Errorf("SyncSprites = %d, want 0", got)
	}
}

func TestSyncSpritesFollowsComponentChanges(t *testing.T) {
	world := donburi.NewWorld()
	pool := newPool(2)

	e := addSprite(world, SpriteData{Slot: 0, Sprite: bgsp.Sprite{X: 1, Visible: true}})
	SyncSprites(world, pool)

	SpriteComponent.Get(world.Entry(e)).Sprite.X = 42
	SyncSprites(world, pool)

	if pool.Sp(0).X != 42 {
		t.Errorf("slot 0 X = %d, want 42", pool.Sp(0).X)
	}

	world.Remove(e)
	SyncSprites(world, pool)
	if pool.Sp(0).Visible {
		t.Error("slot 0 should be hidden after its entity is removed")
	}
}

func TestPublishFrame(t *testing.T) {
	world := donburi.NewWorld()

	var received []bgsp.FrameStats
	FrameRenderedEvent.Subscribe(world, func(w donburi.World, e bgsp.FrameStats) {
		received = append(received, e)
	})

	PublishFrame(world, bgsp.FrameStats{Redrawn: 12, Sprites: 3})
	PublishFrame(world, bgsp.FrameStats{})

	// Events are queued; process them.
	FrameRenderedEvent.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Redrawn != 12 || received[0].Sprites != 3 {
		t.Errorf("event 0: %+v", received[0])
	}
}
