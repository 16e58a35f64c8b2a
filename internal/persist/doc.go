// Package persist provides the two on-disk formats for Slate networks.
//
// The binary .slate format is the primary checkpoint format:
//
//	Format Structure:
//	  [4 bytes: Magic "SLNN"]
//	  [4 bytes: Version (uint32 LE)]
//	  [4 bytes: Layer count (uint32 LE)]
//	  [Layer sizes: uint64 LE each]
//	  [Weight blocks, layer order: uint64 LE element count + raw float64 bits]
//	  [Bias blocks, layer order: same framing]
//
// Floats are stored as their IEEE-754 bit patterns, so a binary
// encode/decode round trip reproduces the network bit for bit.
//
// The plain-text format is a single bracketed, comma-separated line:
// layer count, then each layer size, then all weight entries (row-major,
// layer by layer), then all bias entries. It exists for inspection and
// interchange, and it is lossy: values pass through a decimal text
// representation, so residual bit-level differences after a round trip
// are expected and acceptable. Use the binary format when exactness
// matters.
package persist
