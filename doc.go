// Package sapling is a tick-driven 2D game runtime core for [Ebitengine].
//
// Sapling provides a composition tree of entities, each running its own
// finite state machine, plus (in sapling/input) a device-independent input
// pipeline. Rendering, physics and UI are left to the game.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	root := sapling.NewEntity("game")
//	level := root.AddChildGroup(sapling.NewGroup("level"))
//	// ... spawn entities into level ...
//	sapling.Run(root, sapling.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// For full control, embed a [Game] or implement [ebiten.Game] yourself and
// call [Entity.Update] and [Entity.Draw] on the root once per tick.
//
// # Entities and state
//
// Every [Entity] has one current [StateFunc]. [Entity.Update] runs the state,
// then updates the entity's child groups in order, then advances the
// tick-in-state counter. [Entity.SetState] resets the counter to zero, so a
// state can ask how long it has been running with [Entity.Tick]:
//
//	var idle, jump sapling.StateFunc
//	idle = func() {
//		if pad.Get("A").IsPressed() {
//			e.SetState(jump)
//		}
//	}
//	jump = func() {
//		if e.Tick() > 20 {
//			e.SetState(idle)
//		}
//	}
//
// # Groups
//
// A [Group] is an ordered list of entities. Group order is draw order, and an
// entity's child groups are its layers, so the tree as a whole defines the
// painter's order. Entities may belong to several groups; [Entity.Kill]
// removes an entity from all of them. Killing or spawning entities while a
// group is being updated is safe: each pass visits exactly the entities that
// were live when it started, and skips those killed along the way.
//
// [Ebitengine]: https://ebitengine.org
package sapling
