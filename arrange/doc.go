// Package arrange draws random glyph fills for the nine-box.
//
// CreateNonRepeatingBatch is the sampling primitive. Generator applies it
// to a set of grid positions and caches batches per master, alphabet and
// position count for the lifetime of a font session.
package arrange
