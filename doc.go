// Package twisty implements the rotation engine for a virtual 3x3x3 twisty
// puzzle: the 27-cubelet state model, face-layer selection, the discrete
// quarter-turn permutations, animated turn interpolation, and a timed
// scrambler.
//
// # Features
//
//   - 27-cubelet model with per-cubelet positions and facelet colors
//   - Animated quarter turns (cubic ease-out, drift-free commit)
//   - Randomized scrambling with cooperative cancellation
//   - Externally clocked: the host drives the engine with Tick(now)
//   - Read-model suitable for polling by any renderer
//
// # Quick Start
//
// Construct a Controller once and hand it to both the renderer and the
// input layer:
//
//	ctrl := twisty.New()
//
//	ctrl.RotateFace(twisty.FaceFront, true)
//
//	// Advance the engine from the host's frame loop.
//	ctrl.Tick(time.Now())
//
//	// Poll the read-model every frame.
//	for _, cl := range ctrl.Cube().Cubelets() {
//	    _ = cl.Position
//	    _ = cl.Facelets
//	    _ = cl.Rotation
//	}
//
// # Scrambling
//
// Shuffle queues randomized quarter turns (no face ever repeats
// back-to-back) and dispatches them on a fixed interval:
//
//	ctrl.Shuffle(20)
//	// ...
//	ctrl.Stop()  // cancel pending moves
//	ctrl.Reset() // back to solved
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	twisty.F      // Front clockwise
//	twisty.FPrime // Front counter-clockwise
//	// ... and similarly for B, L, R, U, D
//
// The engine is single-threaded by design: all state is advanced on the
// caller's control flow through Tick, and busy-state rejections are silent
// no-ops rather than errors.
package twisty
