// Package scene defines a small backend-neutral vector scene graph.
//
// A [Scene] is an ordered list of [Node]s drawn back to front. Nodes carry
// their own paint; color and font strings are kept exactly as configured
// and interpreted only by the backend that draws them.
package scene
