// Package ui provides semantic text formatting for CLI output.
//
// This package defines formatters for different types of content (code,
// paths, errors, etc.) that render appropriately based on terminal
// capabilities. When colors are available, content is colorized. When
// NO_COLOR is set or the terminal doesn't support colors, text-based
// decorations (backticks, quotes) are used instead.
//
// # Semantic Formatters
//
//	ui.Code.Sprint("followscraper -c tool.json") // Commands
//	ui.Path.Sprint("./log/followscraper.log")    // File paths
//	ui.Success.Sprint("✓")                        // Success indicators
//	ui.Error.Sprint("✗")                          // Error indicators
//	ui.Highlight.Sprint("jack")                   // User values
//	ui.Muted.Sprint("optional")                   // De-emphasized text
//
// # Severity Formatters
//
// The console log sink colors each line by severity:
//
//	DebugLine    faint
//	InfoLine     green
//	WarningLine  yellow, bold
//	ErrorLine    red, bold
//	CriticalLine bright red, bold
//
// # Color Behavior
//
// Colors are disabled when:
//   - NO_COLOR environment variable is set (any value)
//   - Terminal doesn't support colors (TERM=dumb, not a TTY)
package ui
