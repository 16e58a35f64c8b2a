package persist

import "errors"

// Common errors.
//
// Decode failures always indicate which part of the file was bad: header
// problems wrap ErrCorruptHeader (or one of the more specific header
// sentinels), per-matrix problems wrap ErrCorruptBlock, and text parse
// problems wrap ErrParse.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrCorruptHeader      = errors.New("corrupt header")
	ErrCorruptBlock       = errors.New("corrupt matrix block")
	ErrParse              = errors.New("text parse error")
)
