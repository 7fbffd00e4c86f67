// Package render assembles gauge and widget scenes.
//
// The [Renderer] turns a value, a range, thresholds and a [Style] into a
// [scene.Scene] laid out on the 200x200 canvas described in package gauge.
// Derived values (ticks, threshold colors) can be memoized; memoized and
// plain renders are identical.
//
// Dynamic styling is delegated to an injected [StyleResolver] so that data
// bindings never reach the geometry code.
package render
