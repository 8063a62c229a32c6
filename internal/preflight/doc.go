// Package preflight provides readiness checks for the transcription server
// and the local paths whisperctl writes to.
//
// The "whisperctl doctor" command runs RunAll and prints each Result. The
// individual checks are exported so other commands can reuse them.
package preflight
