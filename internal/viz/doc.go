// Package viz is the terminal shell, built on Bubble Tea.
//
//   - [Model]: live session with a braille view of the world and a stats panel
//   - [Canvas]: braille dot grid the world is rendered onto
//   - [Theme]: color schemes, cycled with T
//
// # Key Bindings
//
//	A, D   - toggle rotate left / right
//	Space  - toggle thrust
//	P      - pause / resume
//	R      - reset
//	Q      - quit
//
// Terminals deliver no key-release events, so controls latch until pressed
// again.
package viz
