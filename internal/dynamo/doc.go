// Package dynamo provides the primitives shared by the simulation core and
// its presentation shells.
//
//   - [Vec2], [Rect]: plane geometry in screen units (Y grows downward)
//   - [Controls]: the three logical inputs read once per tick
//   - [Clock]: elapsed-time source used for particle expiry
//   - [Controller]: produces Controls for a tick
//   - [Renderer]: drawing boundary implemented by the GUI and TUI shells
//   - [TextureID]: non-owning handle to a texture owned by the shell
//   - [ParallelFor]: chunked fan-out used by batch runs
//   - [TrigTable]: degree-indexed sin/cos lookup for outline drawing
//
// # Angles
//
// Body angles are in degrees with 0 pointing up the screen; use [Heading]
// to turn one into a unit forward vector.
package dynamo
