package persist

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func encodeText(t *testing.T, sizes ...int) string {
	t.Helper()
	net := testNetwork(t, sizes...)
	var buf bytes.Buffer
	if err := EncodeText(&buf, net); err != nil {
		t.Fatalf("EncodeText failed: %v", err)
	}
	return buf.String()
}

func TestEncodeText_Layout(t *testing.T) {
	text := encodeText(t, 2, 3)

	line := strings.TrimSpace(text)
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		t.Fatalf("text form should be bracketed, got %q", line)
	}

	fields := strings.Split(line[1:len(line)-1], ",")
	// depth + 2 sizes + 3*2 weights + 3 biases
	if want := 1 + 2 + 6 + 3; len(fields) != want {
		t.Fatalf("field count = %d, want %d", len(fields), want)
	}
	if got := strings.TrimSpace(fields[0]); got != "2" {
		t.Errorf("first field = %q, want layer count 2", got)
	}
	if got := strings.TrimSpace(fields[1]); got != "2" {
		t.Errorf("second field = %q, want input size 2", got)
	}
	if got := strings.TrimSpace(fields[2]); got != "3" {
		t.Errorf("third field = %q, want output size 3", got)
	}
}

func TestTextRoundTrip(t *testing.T) {
	net := testNetwork(t, 4, 7, 3)
	var buf bytes.Buffer
	if err := EncodeText(&buf, net); err != nil {
		t.Fatalf("EncodeText failed: %v", err)
	}

	decoded, err := DecodeText(&buf)
	if err != nil {
		t.Fatalf("DecodeText failed: %v", err)
	}

	// Sizes round-trip exactly.
	got, want := decoded.Sizes(), net.Sizes()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sizes = %v, want %v", got, want)
		}
	}

	// Parameters round-trip within tolerance; the decimal text path is
	// not promised to be bit-exact.
	const tol = 1e-5
	for i := range net.Weights() {
		if !decoded.Weights()[i].EqualApprox(net.Weights()[i], tol) {
			t.Errorf("weight %d outside %v after round trip", i, tol)
		}
		if !decoded.Biases()[i].EqualApprox(net.Biases()[i], tol) {
			t.Errorf("bias %d outside %v after round trip", i, tol)
		}
	}
}

func TestDecodeText_NotBracketed(t *testing.T) {
	_, err := DecodeText(strings.NewReader("2, 1, 1, 0.5, 0"))
	if !errors.Is(err, ErrParse) {
		t.Errorf("error = %v, want ErrParse", err)
	}
}

func TestDecodeText_Empty(t *testing.T) {
	for _, in := range []string{"", "[]", "[ ]"} {
		if _, err := DecodeText(strings.NewReader(in)); !errors.Is(err, ErrParse) {
			t.Errorf("input %q: error = %v, want ErrParse", in, err)
		}
	}
}

func TestDecodeText_NonNumericToken(t *testing.T) {
	tests := []struct {
		name, input string
	}{
		{"bad depth", "[two, 1, 1, 0.5, 0]"},
		{"bad size", "[2, 1, banana, 0.5, 0]"},
		{"bad weight", "[2, 1, 1, abc, 0]"},
		{"bad bias", "[2, 1, 1, 0.5, xyz]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeText(strings.NewReader(tt.input)); !errors.Is(err, ErrParse) {
				t.Errorf("error = %v, want ErrParse", err)
			}
		})
	}
}

func TestDecodeText_WrongElementCount(t *testing.T) {
	tests := []struct {
		name, input string
	}{
		{"missing bias", "[2, 1, 1, 0.5]"},
		{"missing weight and bias", "[2, 1, 1]"},
		{"extra values", "[2, 1, 1, 0.5, 0, 7]"},
		{"sizes run out", "[3, 1, 1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeText(strings.NewReader(tt.input)); !errors.Is(err, ErrParse) {
				t.Errorf("error = %v, want ErrParse", err)
			}
		})
	}
}

func TestDecodeText_BadDepth(t *testing.T) {
	for _, in := range []string{"[1, 5]", "[0]", "[-3, 1, 1]"} {
		if _, err := DecodeText(strings.NewReader(in)); !errors.Is(err, ErrParse) {
			t.Errorf("input %q: error = %v, want ErrParse", in, err)
		}
	}
}

func TestDecodeText_HandWritten(t *testing.T) {
	// A 1-2-1 network written by hand: depth 3, sizes 1 2 1, weight
	// blocks (2x1 then 1x2), bias blocks (2x1 then 1x1).
	in := "[3, 1, 2, 1, 0.1, -0.2, 0.3, 0.4, 0.5, -0.6, 0.7]"
	net, err := DecodeText(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeText failed: %v", err)
	}

	if net.Weights()[0].At(1, 0) != -0.2 {
		t.Errorf("weights[0](1,0) = %v, want -0.2", net.Weights()[0].At(1, 0))
	}
	if net.Weights()[1].At(0, 1) != 0.4 {
		t.Errorf("weights[1](0,1) = %v, want 0.4", net.Weights()[1].At(0, 1))
	}
	if net.Biases()[0].At(0, 0) != 0.5 {
		t.Errorf("biases[0](0,0) = %v, want 0.5", net.Biases()[0].At(0, 0))
	}
	if net.Biases()[1].At(0, 0) != 0.7 {
		t.Errorf("biases[1](0,0) = %v, want 0.7", net.Biases()[1].At(0, 0))
	}
}

func TestTextFileRoundTrip(t *testing.T) {
	net := testNetwork(t, 3, 2)
	path := t.TempDir() + "/model.txt"

	if err := WriteTextFile(path, net); err != nil {
		t.Fatalf("WriteTextFile failed: %v", err)
	}
	decoded, err := ReadTextFile(path)
	if err != nil {
		t.Fatalf("ReadTextFile failed: %v", err)
	}
	if !decoded.Weights()[0].EqualApprox(net.Weights()[0], 1e-5) {
		t.Error("weights not preserved through the text file round trip")
	}
}
