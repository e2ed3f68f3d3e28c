// Binary integer literal codec: "int" followed by exactly 10 bits.
// instruction_set.py's i2s(n) builds this with a plain Python format string
// (f"int{n:010b}"); we keep the same plain formatting (strconv, zero-padded)
// for the character-level ASCII literal (the wire format needs the ten
// digits as text, not a packed binary), and after EncodeInt's own bound
// test additionally round the value through
// github.com/funvibe/funbit's bit-syntax builder as the representability
// check: Build() fails exactly when the value does not fit in 10 unsigned
// bits, which is the one piece funbit's Erlang-style bit-field builder is
// actually suited to here.
package state

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/funbit"
)

const binaryIntBits = 10
const binaryIntMax = 1 << binaryIntBits // 1024

// EncodeInt renders v as the wire literal "int" followed by 10 binary
// digits, e.g. EncodeInt(3) == "int0000000011".
func EncodeInt(v int) (string, error) {
	if v < 0 || v >= binaryIntMax {
		return "", fmt.Errorf("state: %d out of range for a %d-bit binary integer literal", v, binaryIntBits)
	}
	if err := checkFitsTenBits(v); err != nil {
		return "", err
	}
	return "int" + fixedWidthBinary(v, binaryIntBits), nil
}

// DecodeInt parses a wire literal of the form "int" + 10 binary digits.
func DecodeInt(lit string) (int, error) {
	if !strings.HasPrefix(lit, "int") {
		return 0, fmt.Errorf("state: %q is not a binary integer literal", lit)
	}
	bits := lit[3:]
	if len(bits) != binaryIntBits {
		return 0, fmt.Errorf("state: %q does not have exactly %d bits", lit, binaryIntBits)
	}
	v, err := strconv.ParseInt(bits, 2, 32)
	if err != nil {
		return 0, fmt.Errorf("state: %q is not a binary literal: %w", lit, err)
	}
	return int(v), nil
}

// checkFitsTenBits packs v through funbit's bit-field builder with an
// explicit 10-bit field width; the builder rejects values that overflow the
// requested width, which serves as a second range check after EncodeInt's
// explicit bound test.
func checkFitsTenBits(v int) error {
	b := funbit.NewBuilder()
	b.AddInteger(uint64(v), funbit.WithSize(binaryIntBits))
	if _, err := b.Build(); err != nil {
		return fmt.Errorf("state: %d does not fit a %d-bit field: %w", v, binaryIntBits, err)
	}
	return nil
}

func fixedWidthBinary(v, width int) string {
	s := strconv.FormatInt(int64(v), 2)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}
