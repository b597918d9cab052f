// Package dragon renders an animated dragon curve on top of [Ebitengine].
//
// The curve starts as the unit segment (0,0)→(1,0). Every fold reflects the
// current path about its last vertex, rotated by the fold angle, so each
// fold doubles the number of edges. The resulting vertices are fitted to
// the viewport with a 5% margin and drawn as a rainbow polyline.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := dragon.NewScene()
//	dragon.Run(scene, dragon.RunConfig{
//		Title: "Dragon Curve", Width: 800, Height: 600,
//	})
//
// For full control, drive the scene yourself. Any [Canvas] implementation
// can be drawn to; the terminal package provides a tcell one and
// [RasterCanvas] renders into an in-memory image:
//
//	scene := dragon.NewScene()
//	for {
//		if err := scene.Update(dt, pressedKeys); err != nil {
//			break // dragon.ErrQuit
//		}
//		if err := scene.Draw(canvas); err != nil {
//			return err
//		}
//	}
//
// # Controls
//
//	Up     one more fold
//	Down   one fewer fold (never below zero)
//	Left   spin slower (-0.01 rad/s)
//	Right  spin faster (+0.01 rad/s)
//	Q      quit
//
// # Geometry
//
// [Generate] and [Curve.Generate] build the vertex sequence, [FitToScreen]
// computes the [Affine] mapping it into the viewport and [BuildSegments]
// pairs up transformed vertices with their hue along the path.
//
// [Ebitengine]: https://ebitengine.org
package dragon
