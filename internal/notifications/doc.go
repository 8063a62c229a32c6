// Package notifications owns the two ways whisperctl tells a user about an
// outcome.
//
// Banner is the single transient on-screen notification: each Show replaces
// whatever is displayed and restarts its dismissal timer, so the newest
// message always wins and nothing is queued. Service is the optional ntfy
// push channel used when a transcription finishes or fails, handy when a
// long upload runs in a console the user is not watching. When no topic is
// configured a no-op Service is returned.
package notifications
