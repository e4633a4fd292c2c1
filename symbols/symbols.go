// Package symbols turns raw syscall integers into the symbolic names a reader
// expects from strace: flag bit-sets, enum constants, octal modes, errno
// values. Every decoder here is a pure function of its input.
package symbols

import (
	"fmt"
	"strings"
)

// Flag is one (mask, name) pair of a flag set. Order matters for output:
// flags render in table order.
type Flag struct {
	Mask uint64
	Name string
}

// FlagSet decodes a bit-set into "SYM1|SYM2|0x<residual>". ZeroName, when
// set, names the zero value (e.g. O_RDONLY); otherwise zero renders as "0".
type FlagSet struct {
	Flags    []Flag
	ZeroName string
}

// Decode renders value symbolically. Residual bits not covered by the table
// are appended as a single hex literal so the rendering is lossless.
func (fs FlagSet) Decode(value uint64) string {
	if value == 0 {
		if fs.ZeroName != "" {
			return fs.ZeroName
		}

		return "0"
	}

	var (
		parts    []string
		residual = value
	)

	for _, f := range fs.Flags {
		if f.Mask == 0 {
			continue
		}

		if value&f.Mask == f.Mask {
			parts = append(parts, f.Name)
			residual &^= f.Mask
		}
	}

	if residual != 0 {
		parts = append(parts, fmt.Sprintf("%#x", residual))
	}

	return strings.Join(parts, "|")
}

// Parse is the inverse of Decode, used by tests to check the round-trip.
// Unknown tokens must be hex literals (the residual form).
func (fs FlagSet) Parse(s string) (uint64, error) {
	if s == "0" || (fs.ZeroName != "" && s == fs.ZeroName) {
		return 0, nil
	}

	byName := make(map[string]uint64, len(fs.Flags))
	for _, f := range fs.Flags {
		byName[f.Name] = f.Mask
	}

	var value uint64

	for _, tok := range strings.Split(s, "|") {
		if mask, ok := byName[tok]; ok {
			value |= mask
			continue
		}

		var residual uint64
		if _, err := fmt.Sscanf(tok, "0x%x", &residual); err != nil {
			return 0, fmt.Errorf("unknown flag token %q", tok)
		}

		value |= residual
	}

	return value, nil
}

// Enum decodes a discrete value into one symbol. On a miss it renders
// "<Prefix>_<decimal>" rather than hex so the output stays readable.
type Enum struct {
	Values map[int64]string
	Prefix string
}

// Decode renders value symbolically.
func (e Enum) Decode(value int64) string {
	if name, ok := e.Values[value]; ok {
		return name
	}

	return fmt.Sprintf("%s_%d", e.Prefix, value)
}

// Octal renders a file mode the way strace does: leading zero, base eight.
func Octal(mode uint64) string {
	return fmt.Sprintf("0%o", mode&0o7777)
}

// Dev splits a Darwin dev_t into its major/minor rendering.
func Dev(dev uint64) string {
	major := (dev >> 24) & 0xff
	minor := dev & 0xffffff

	return fmt.Sprintf("makedev(%d, %d)", major, minor)
}
