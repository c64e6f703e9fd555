// Package gui is the raylib window shell: it opens the window, owns the
// textures, folds key-down and key-up events into controls and draws the
// world once per frame. Frame pacing comes from vsync and the target FPS.
package gui
