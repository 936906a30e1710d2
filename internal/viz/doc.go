// Package viz renders a live terminal view of an oscillator run.
//
// The package implements a Bubble Tea model drawing the wall, spring
// and mass on a Braille [Canvas], with an asciigraph energy history and
// the derived frequency readouts.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	S     - Stop the run (keeps collected samples)
//	R     - Reset and re-run
//	Q     - Quit
package viz
