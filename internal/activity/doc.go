// Package activity keeps the controller's user-facing activity log: a
// bounded, append-only list of timestamped entries where the oldest entry is
// evicted first once capacity is reached.
package activity
