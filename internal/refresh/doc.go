// Package refresh implements the pull-to-refresh header core: the Controller
// turns drag input into a DragState, the Renderer turns a DragState into a
// Frame of draw operations, and the Driver ties both to the animation
// scheduler so that drag updates, release animations and the refreshing spin
// share one serialized frame loop.
//
// Nothing in this package is safe for concurrent use. Hosts call every method
// from their UI goroutine and hand results from other goroutines over to it.
package refresh
