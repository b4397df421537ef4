// Package buffer implements the plain-text document model behind a text box.
//
// Text is stored as hard lines (split on '\n'). Positions are 0-based
// (Row, Col) pairs where Col is a byte offset into the row's UTF-8 text and
// always sits on a grapheme cluster boundary.
//
// The buffer knows nothing about layout. Motions that depend on rendered
// geometry (visual lines, pages, bidi order) live with the layout-aware
// editor; the buffer only provides logical motions.
package buffer
