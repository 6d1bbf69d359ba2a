// Package bgsp is a retained-mode 2D tile and sprite compositor in the style
// of classic arcade video hardware.
//
// A frame is built from two layers that share one [TextureBank]:
//
//   - a [BgPlane], a toroidal grid of attributed characters rendered into a
//     persistent image where only changed cells are redrawn, and
//   - a [SpritePool], a fixed arena of sprites composited into a fresh
//     transparent image on every call, culled and ordered by priority.
//
// Patterns are packed 4-bit images measured in 8×8 cells. Every pattern is
// colored through a 16-entry palette and drawn in one of eight orientations
// ([Symmetry]), then upscaled by an integer pixel scale.
//
// # Quick start
//
//	patterns, palettes, err := bgsp.LoadTables(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	bank := bgsp.NewTextureBank(patterns, palettes, 2)
//	plane := bgsp.NewBgPlane(32, 28, bank)
//	sprites := bgsp.NewSpritePool(64, bank)
//
//	plane.PutString(2, 1, "HELLO", bgsp.CharAttributes{})
//	s := sprites.Sp(0)
//	s.SetPos(100, 80)
//	s.SetPattern(0x40, 1, bgsp.SymFlipH)
//	s.Visible = true
//
//	plane.Rendering()
//	frame := sprites.Rendering(256, 224)
//
// [Config] bundles the construction parameters and can bind them to a
// [flag.FlagSet].
//
// # Presenting with Ebitengine
//
// The compositor works on [image.RGBA] and never touches the GPU. A
// [Presenter] uploads the plane and sprite images to [Ebitengine] and draws
// them with toroidal scrolling:
//
//	pr.UploadPlane(plane)
//	pr.UploadSprites(frame)
//	pr.Draw(screen, scrollX, scrollY)
//
// ECS integration (via [Donburi]) lives in the bgsp/ecs module.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package bgsp
