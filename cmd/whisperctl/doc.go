// Command whisperctl drives a Whisper transcription server from the terminal.
//
// One-shot subcommands (status, health, reset, transcribe) run a single
// controller operation and print the resulting activity log and
// notification. The watch subcommand keeps a controller alive, polls the
// server in the background and reads console actions from stdin.
package main
