// Package ui provides styled terminal output shared by sot's commands.
//
// Colors are ANSI codes for broad terminal compatibility, with a small neon
// palette for headers:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text
//
// Use DisableColors() to switch to monochrome output (for --no-color).
//
// Tables wrap bubbles/table so the dashboard's process list and plain CLI
// output share column definitions and styling.
package ui
