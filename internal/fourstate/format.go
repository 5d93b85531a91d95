package fourstate

import "strings"

// FormatBinary renders v as a bit string, most-significant bit first, with
// no size prefix or base marker -- callers building `%b`-style display
// text add that framing themselves.
func FormatBinary(v Vector) string {
	if v.Width == 0 {
		return "0"
	}
	var b strings.Builder
	b.Grow(v.Width)
	for i := v.Width - 1; i >= 0; i-- {
		b.WriteString(v.Bit(i).String())
	}
	return b.String()
}

// FormatHex renders v as hex, most-significant nibble first. A nibble that
// mixes known and unknown bits, or unknown bits of different kinds (x and
// z), renders as a whole 'x' if any bit is X, else 'z' -- matching the
// LRM's `%h` display rule (sec.21.2.1.3): unresolvable nibbles show one
// unknown digit.
func FormatHex(v Vector) string {
	width := v.Width
	nibbles := (width + 3) / 4
	if nibbles == 0 {
		return "0"
	}
	var b strings.Builder
	for n := nibbles - 1; n >= 0; n-- {
		hasX, hasZ, hasKnown0, hasKnown1 := false, false, false, false
		var val int
		for bit := 0; bit < 4; bit++ {
			idx := n*4 + bit
			if idx >= width {
				continue
			}
			switch v.Bit(idx) {
			case DX:
				hasX = true
			case DZ:
				hasZ = true
			case D1:
				hasKnown1 = true
				val |= 1 << bit
			case D0:
				hasKnown0 = true
			}
		}
		switch {
		case hasX:
			b.WriteByte('x')
		case hasZ:
			b.WriteByte('z')
		case hasKnown0 || hasKnown1:
			b.WriteByte("0123456789abcdef"[val])
		default:
			b.WriteByte('0')
		}
	}
	return b.String()
}

// FormatDecimal renders v as a decimal integer if it is fully known and
// fits in 64 bits, or the single character "x"/"z" if every bit is
// uniformly unknown, matching `%d`'s display rule for otherwise-unknown
// values. A mixed known/unknown value that doesn't fit either case
// (partially unknown, or unknown-but-not-uniform) renders as "x".
func FormatDecimal(v Vector) string {
	if !v.HasUnknown() {
		if v.Signed {
			if n, ok := v.Int64(); ok {
				return itoa(n)
			}
		}
		if n, ok := v.Uint64(); ok {
			return utoa(n)
		}
		return "x"
	}
	uniform := true
	first := v.Bit(0)
	for i := 1; i < v.Width; i++ {
		if v.Bit(i) != first {
			uniform = false
			break
		}
	}
	if uniform && first.Unknown() {
		return first.String()
	}
	return "x"
}

func itoa(n int64) string {
	if n < 0 {
		return "-" + utoa(uint64(-n))
	}
	return utoa(uint64(n))
}

func utoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
