// Package download stores transcript payloads returned by the server.
//
// Saver streams a payload into a temporary file inside the download
// directory, then moves it to a free name, appending " (n)" before the
// extension when the requested name is taken. Name selection happens under a
// file lock on the directory so two whisperctl processes saving the same
// transcript never overwrite each other.
package download
