// Package anim drives timed value sequences on a single cooperative tick.
//
// A Sequence maps elapsed time to a value. The Scheduler plays sequences and
// repeating tasks when its owner calls Tick, so every callback runs on the
// caller's goroutine. Cancelling a Task guarantees none of its callbacks fire
// afterwards, which is how a new release animation supersedes an old one.
package anim
