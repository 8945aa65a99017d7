// Package gen renders the PFLAG parity lookup table as a C declaration.
package gen

import (
	"fmt"
	"io"
	"strings"

	"github.com/oisee/paritygen/pkg/cpu"
)

// Token is a single element of the emitted table.
type Token string

const (
	// TokenSet must match the even-parity flag macro of the consuming source.
	TokenSet   Token = "PF_FLAG"
	TokenClear Token = "0"
)

// Name is the identifier of the emitted array.
const Name = "PFLAG"

// Table maps every byte value to its flag token.
type Table [256]Token

// Build computes the table for all byte values.
func Build() Table {
	var t Table
	for i := range t {
		if cpu.Parity(uint8(i)) {
			t[i] = TokenSet
		} else {
			t[i] = TokenClear
		}
	}
	return t
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t)
}

// String returns the declaration without a trailing newline.
func (t Table) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "static const uint32_t %s[%d] = {", Name, len(t))
	for i, tok := range t {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(tok))
	}
	sb.WriteString("};")
	return sb.String()
}

// WriteTo writes the declaration to w as a single line.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String()+"\n")
	if err != nil {
		return int64(n), fmt.Errorf("writing %s table: %w", Name, err)
	}
	return int64(n), nil
}
