package persist

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/slate-ml/slate/internal/matrix"
	"github.com/slate-ml/slate/internal/network"
)

// EncodeText writes the network to w as a single bracketed line of
// comma-separated numbers: layer count, layer sizes, all weight entries
// (row-major, layer by layer), then all bias entries.
//
// The representation is human-readable and lossy: a decode of this text
// may differ from the original values at the last few bits. Use the
// binary format for bit-exact persistence.
func EncodeText(w io.Writer, net *network.Network) error {
	sizes := net.Sizes()

	fields := make([]string, 0, textFieldCount(sizes))
	fields = append(fields, strconv.Itoa(len(sizes)))
	for _, s := range sizes {
		fields = append(fields, strconv.Itoa(s))
	}
	for _, m := range net.Weights() {
		for _, v := range m.Data() {
			fields = append(fields, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	for _, m := range net.Biases() {
		for _, v := range m.Data() {
			fields = append(fields, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}

	if _, err := fmt.Fprintf(w, "[%s]\n", strings.Join(fields, ", ")); err != nil {
		return fmt.Errorf("failed to write text form: %w", err)
	}
	return nil
}

// textFieldCount is the number of fields EncodeText emits: the depth,
// one size per layer, and every weight and bias entry.
func textFieldCount(sizes []int) int {
	n := 1 + len(sizes)
	for i := 0; i+1 < len(sizes); i++ {
		n += sizes[i+1]*sizes[i] + sizes[i+1]
	}
	return n
}

// DecodeText parses the plain-text form back into a network.
//
// The parser splits the bracketed list on commas, reads the declared
// layer count and sizes, then slices the weight and bias entries out of
// the flat tail using an offset table computed once from the sizes.
// Non-numeric tokens and wrong element counts fail with an ErrParse
// error naming what was wrong; nothing is silently truncated.
func DecodeText(r io.Reader) (*network.Network, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read input: %v", ErrParse, err)
	}

	body := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(body, "[") || !strings.HasSuffix(body, "]") {
		return nil, fmt.Errorf("%w: expected a bracketed list", ErrParse)
	}
	tokens := strings.Split(body[1:len(body)-1], ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	sizes, tokens, err := parseTextHeader(tokens)
	if err != nil {
		return nil, err
	}

	// Offset table over the flat tail: weight blocks first, then bias
	// blocks, both in layer order.
	n := len(sizes) - 1
	counts := make([]int, 0, 2*n)
	total := 0
	for i := 0; i < n; i++ {
		counts = append(counts, sizes[i+1]*sizes[i])
		total += sizes[i+1] * sizes[i]
	}
	for i := 0; i < n; i++ {
		counts = append(counts, sizes[i+1])
		total += sizes[i+1]
	}
	if len(tokens) != total {
		weightTotal := 0
		for i := 0; i < n; i++ {
			weightTotal += counts[i]
		}
		section := "weight"
		if len(tokens) >= weightTotal {
			section = "bias"
		}
		return nil, fmt.Errorf("%w: got %d parameter values, want %d for layer sizes %v (mismatch in the %s blocks)",
			ErrParse, len(tokens), total, sizes, section)
	}

	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q at parameter index %d", ErrParse, tok, i)
		}
		values[i] = v
	}

	weights := make([]*matrix.Matrix, n)
	biases := make([]*matrix.Matrix, n)
	offset := 0
	for i := 0; i < n; i++ {
		weights[i], err = matrix.FromSlice(values[offset:offset+counts[i]], sizes[i+1], sizes[i])
		if err != nil {
			return nil, fmt.Errorf("%w: weights block %d: %v", ErrParse, i, err)
		}
		offset += counts[i]
	}
	for i := 0; i < n; i++ {
		biases[i], err = matrix.FromSlice(values[offset:offset+counts[n+i]], sizes[i+1], 1)
		if err != nil {
			return nil, fmt.Errorf("%w: biases block %d: %v", ErrParse, i, err)
		}
		offset += counts[n+i]
	}

	net, err := network.Load(sizes, weights, biases)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return net, nil
}

// parseTextHeader consumes the depth and layer sizes, returning the
// sizes and the remaining (parameter) tokens.
func parseTextHeader(tokens []string) ([]int, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("%w: empty list", ErrParse)
	}
	depth, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: bad layer count %q", ErrParse, tokens[0])
	}
	if depth < 2 || depth > maxLayers {
		return nil, nil, fmt.Errorf("%w: layer count %d out of range [2, %d]", ErrParse, depth, maxLayers)
	}
	if len(tokens) < 1+depth {
		return nil, nil, fmt.Errorf("%w: %d layer sizes declared but only %d tokens follow",
			ErrParse, depth, len(tokens)-1)
	}

	sizes := make([]int, depth)
	for i := range sizes {
		s, err := strconv.Atoi(tokens[1+i])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: bad layer size %q at index %d", ErrParse, tokens[1+i], i)
		}
		if s <= 0 || s > maxLayerSize {
			return nil, nil, fmt.Errorf("%w: layer size %d at index %d out of range [1, %d]",
				ErrParse, s, i, maxLayerSize)
		}
		sizes[i] = s
	}
	return sizes, tokens[1+depth:], nil
}

// WriteTextFile writes the network to path in the plain-text format.
func WriteTextFile(path string, net *network.Network) (err error) {
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
	return EncodeText(file, net)
}

// ReadTextFile reads a network from a plain-text file.
func ReadTextFile(path string) (*network.Network, error) {
	//nolint:gosec // G304: file path comes from the caller, expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return DecodeText(file)
}
