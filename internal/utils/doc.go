// Package utils provides small helpers shared by the command line.
//
// # Terminal Utilities
//
//   - IsTerminal: checks whether a file is attached to a terminal, used to
//     decide whether progress is drawn
package utils
