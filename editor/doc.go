// Package editor is the interactive part of rpgeditor: the cursor and
// viewport rules, the frame renderer and the key-driven controller that ties
// a buffer.Store to a terminal.
//
// Everything runs on one goroutine. A frame is composed into an AppendBuffer
// and reaches the terminal in a single Write, so a partially drawn screen is
// never visible.
package editor
