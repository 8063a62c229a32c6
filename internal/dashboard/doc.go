// Package dashboard projects server status snapshots onto the status panel
// and progress bar shown by whisperctl.
//
// Apply is a pure function of the previous panel and a snapshot. It never
// performs I/O, so every rendering surface (the watch console, one-shot
// commands, tests) shares the same display rules.
package dashboard
