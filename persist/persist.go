// Copyright 2025 Slate ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package persist provides the public API for saving and loading Slate
// networks in the binary .slate format (bit-exact) and the plain-text
// format (human-readable, lossy).
//
// Example:
//
//	if err := persist.WriteFile("model.slate", net); err != nil {
//	    log.Fatal(err)
//	}
//	net, err := persist.ReadFile("model.slate")
package persist

import (
	"io"

	"github.com/slate-ml/slate/internal/network"
	"github.com/slate-ml/slate/internal/persist"
)

// Common errors.
var (
	ErrInvalidMagic       = persist.ErrInvalidMagic
	ErrUnsupportedVersion = persist.ErrUnsupportedVersion
	ErrCorruptHeader      = persist.ErrCorruptHeader
	ErrCorruptBlock       = persist.ErrCorruptBlock
	ErrParse              = persist.ErrParse
)

// EncodeBinary writes the network to w in the binary .slate format.
func EncodeBinary(w io.Writer, net *network.Network) error {
	return persist.EncodeBinary(w, net)
}

// DecodeBinary reads a network from the binary .slate format.
func DecodeBinary(r io.Reader) (*network.Network, error) {
	return persist.DecodeBinary(r)
}

// WriteFile writes the network to path in the binary .slate format.
func WriteFile(path string, net *network.Network) error {
	return persist.WriteFile(path, net)
}

// ReadFile reads a network from a binary .slate file.
func ReadFile(path string) (*network.Network, error) {
	return persist.ReadFile(path)
}

// EncodeText writes the network to w as a single bracketed line of
// comma-separated numbers. Lossy; see the binary format for bit-exact
// persistence.
func EncodeText(w io.Writer, net *network.Network) error {
	return persist.EncodeText(w, net)
}

// DecodeText parses the plain-text form back into a network.
func DecodeText(r io.Reader) (*network.Network, error) {
	return persist.DecodeText(r)
}

// WriteTextFile writes the network to path in the plain-text format.
func WriteTextFile(path string, net *network.Network) error {
	return persist.WriteTextFile(path, net)
}

// ReadTextFile reads a network from a plain-text file.
func ReadTextFile(path string) (*network.Network, error) {
	return persist.ReadTextFile(path)
}
