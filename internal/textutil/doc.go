// Package textutil cleans server-provided text before it reaches the
// filesystem or the terminal.
package textutil
