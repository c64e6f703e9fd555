// Package control provides the input sources that drive the rocket.
//
// Controllers implement the [dynamo.Controller] interface and are asked
// once per tick for the logical controls:
//
//   - [None]: no input, the rocket coasts
//   - [Manual]: held-key state fed by a window or terminal shell
//   - [Schedule]: scripted burns over tick ranges, for headless runs
//
// # Usage
//
//	sched := control.NewSchedule(cfg.Burns)
//	s := sim.New(world, clock, sched)
package control
