// Package monitor runs the background status poll as an explicit,
// cancellable scheduled task.
//
// A Monitor owns one ticker goroutine. Start is guarded by a running flag so a
// second call is a no-op, and Stop cancels the loop and waits for it to exit.
// Poll failures are the caller's concern; the monitor only schedules.
package monitor
