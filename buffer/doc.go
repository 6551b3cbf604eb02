// Package buffer implements the byte-oriented row model edited by rpgeditor.
//
// A document is an ordered list of rows. Each row owns its bytes without the
// line terminator, and a "character" is exactly one byte: no UTF-8 decoding
// happens anywhere in this package, so column math is byte math.
//
// Every edit is total. Row and column indices outside the document degrade to
// no-ops (or clamp, where documented) instead of panicking.
package buffer
