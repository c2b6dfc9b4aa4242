// Package pipeline executes an ordered cipher sequence over text.
//
// Decryption runs the sequence in reverse. The text is split into a fixed
// number of contiguous chunks, each chunk is pushed through every stage on
// its own goroutine, and the outputs are joined in chunk order. A failing
// chunk fails the whole run once every worker has returned.
//
// Chunking interacts with position-dependent ciphers. By default chunks are
// phase aligned: positional stages learn where their chunk starts, and a
// sequence containing a stage that changes text length runs as one chunk.
// LegacyChunking restores the historical behaviour where every chunk starts
// at key position zero.
package pipeline
