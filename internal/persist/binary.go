package persist

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/slate-ml/slate/internal/matrix"
	"github.com/slate-ml/slate/internal/network"
)

// Format constants.
const (
	MagicBytes    = "SLNN"
	FormatVersion = 1

	// Sanity limits applied while decoding untrusted files. A header
	// that exceeds these is rejected before any allocation.
	maxLayers    = 1 << 10
	maxLayerSize = 1 << 24
)

// EncodeBinary writes the network to w in the binary .slate format.
//
// The encoding is self-describing: the layer sizes are embedded, so the
// stream alone reconstructs a full network. Float values are written as
// raw IEEE-754 bits and survive a round trip exactly.
func EncodeBinary(w io.Writer, net *network.Network) error {
	sizes := net.Sizes()

	if _, err := w.Write([]byte(MagicBytes)); err != nil {
		return fmt.Errorf("failed to write magic bytes: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(sizes))); err != nil {
		return fmt.Errorf("failed to write layer count: %w", err)
	}
	for _, s := range sizes {
		if err := binary.Write(w, binary.LittleEndian, uint64(s)); err != nil {
			return fmt.Errorf("failed to write layer sizes: %w", err)
		}
	}

	if err := writeBlocks(w, "weights", net.Weights()); err != nil {
		return err
	}
	return writeBlocks(w, "biases", net.Biases())
}

// writeBlocks writes one length-prefixed flattened block per matrix.
func writeBlocks(w io.Writer, section string, ms []*matrix.Matrix) error {
	for i, m := range ms {
		data := m.Data()
		if err := binary.Write(w, binary.LittleEndian, uint64(len(data))); err != nil {
			return fmt.Errorf("failed to write %s block %d length: %w", section, i, err)
		}
		if err := binary.Write(w, binary.LittleEndian, data); err != nil {
			return fmt.Errorf("failed to write %s block %d: %w", section, i, err)
		}
	}
	return nil
}

// DecodeBinary reads a network from the binary .slate format.
//
// Truncated or corrupt input fails with an error that identifies whether
// the damage was in the header (magic, version, layer sizes) or in a
// specific weight or bias block.
func DecodeBinary(r io.Reader) (*network.Network, error) {
	sizes, err := readBinaryHeader(r)
	if err != nil {
		return nil, err
	}

	n := len(sizes) - 1
	weights := make([]*matrix.Matrix, n)
	biases := make([]*matrix.Matrix, n)
	for i := 0; i < n; i++ {
		weights[i], err = readBlock(r, "weights", i, sizes[i+1], sizes[i])
		if err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		biases[i], err = readBlock(r, "biases", i, sizes[i+1], 1)
		if err != nil {
			return nil, err
		}
	}

	net, err := network.Load(sizes, weights, biases)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptHeader, err)
	}
	return net, nil
}

// readBinaryHeader reads and validates magic, version, and layer sizes.
func readBinaryHeader(r io.Reader) ([]int, error) {
	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("%w: failed to read magic bytes: %v", ErrCorruptHeader, err)
	}
	if string(magic) != MagicBytes {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidMagic, magic)
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("%w: failed to read version: %v", ErrCorruptHeader, err)
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: failed to read layer count: %v", ErrCorruptHeader, err)
	}
	if count < 2 || count > maxLayers {
		return nil, fmt.Errorf("%w: layer count %d out of range [2, %d]", ErrCorruptHeader, count, maxLayers)
	}

	sizes := make([]int, count)
	for i := range sizes {
		var s uint64
		if err := binary.Read(r, binary.LittleEndian, &s); err != nil {
			return nil, fmt.Errorf("%w: failed to read layer size %d: %v", ErrCorruptHeader, i, err)
		}
		if s == 0 || s > maxLayerSize {
			return nil, fmt.Errorf("%w: layer size %d is %d, out of range [1, %d]", ErrCorruptHeader, i, s, maxLayerSize)
		}
		sizes[i] = int(s)
	}
	return sizes, nil
}

// readBlock reads one length-prefixed flattened block and reshapes it.
//
// The declared element count must agree with the shape derived from the
// layer sizes; a disagreement is a decode error, never a silent reshape.
func readBlock(r io.Reader, section string, layer, rows, cols int) (*matrix.Matrix, error) {
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: failed to read %s block %d length: %v", ErrCorruptBlock, section, layer, err)
	}
	want := uint64(rows) * uint64(cols)
	if count != want {
		return nil, fmt.Errorf("%w: %s block %d declares %d elements, layer sizes require %d",
			ErrCorruptBlock, section, layer, count, want)
	}

	data := make([]float64, count)
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return nil, fmt.Errorf("%w: failed to read %s block %d: %v", ErrCorruptBlock, section, layer, err)
	}

	m, err := matrix.FromSlice(data, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %s block %d: %v", ErrCorruptBlock, section, layer, err)
	}
	return m, nil
}

// WriteFile writes the network to path in the binary .slate format.
func WriteFile(path string, net *network.Network) (err error) {
	//nolint:gosec // G304: file path comes from the caller, expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return EncodeBinary(file, net)
}

// ReadFile reads a network from a binary .slate file.
func ReadFile(path string) (*network.Network, error) {
	//nolint:gosec // G304: file path comes from the caller, expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return DecodeBinary(file)
}
