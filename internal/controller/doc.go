// Package controller owns the whisperctl view state and the operations that
// change it.
//
// A Controller binds user commands to single-attempt calls against the
// transcription server and reflects every outcome into three surfaces: the
// status panel (see package dashboard), the activity log and a transient
// notification banner. Errors never escape an operation; each one becomes a
// log entry and, for user-initiated actions, a notification.
//
// The status monitor is an explicit handle owned by the controller. Start
// launches it and Stop tears it down; starting twice is a no-op. Polls and
// user commands may overlap, and poll results are applied in arrival order
// with no sequencing, so a slow response can briefly show stale data.
//
// Renderers read state through Snapshot and never touch the controller's
// fields directly. Dispatch maps console action names to handlers so the
// whole command surface is testable without a terminal.
package controller
