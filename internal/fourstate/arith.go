package fourstate

// Arithmetic operations propagate unknown bits the way the LRM specifies
// for +, -, *, /, %: if either operand contains any X or Z, the result is
// entirely X (LRM sec.11.8.1). Otherwise the limb arithmetic mirrors the
// teacher's bignum.UintAdd/UintMul/UintDivMod (single limb-plane, same
// base-2^32 carry/borrow technique) applied to the AVal plane alone, since
// BVal is known to be all-zero on both operands in that branch.

func resultWidth(a, b Vector) int {
	if a.Width > b.Width {
		return a.Width
	}
	return b.Width
}

func resultSigned(a, b Vector) bool {
	return a.Signed && b.Signed
}

// Add returns a + b, widened to the wider operand's width.
func Add(a, b Vector) Vector {
	width := resultWidth(a, b)
	signed := resultSigned(a, b)
	if a.HasUnknown() || b.HasUnknown() {
		return AllX(width, signed)
	}
	aw, bw := a.Resize(width), b.Resize(width)
	out := New(width, signed)
	var carry uint64
	for i := range out.AVal {
		sum := uint64(aw.AVal[i]) + uint64(bw.AVal[i]) + carry
		out.AVal[i] = uint32(sum)
		carry = sum >> 32
	}
	out.mask()
	return out
}

// Sub returns a - b (two's complement), widened to the wider operand's
// width.
func Sub(a, b Vector) Vector {
	width := resultWidth(a, b)
	signed := resultSigned(a, b)
	if a.HasUnknown() || b.HasUnknown() {
		return AllX(width, signed)
	}
	aw, bw := a.Resize(width), b.Resize(width)
	out := New(width, signed)
	var borrow uint64
	for i := range out.AVal {
		av := uint64(aw.AVal[i])
		bv := uint64(bw.AVal[i]) + borrow
		diff := av - bv
		out.AVal[i] = uint32(diff)
		if av < bv {
			borrow = 1
		} else {
			borrow = 0
		}
	}
	out.mask()
	return out
}

// Neg returns the two's-complement negation of a (0 - a).
func Neg(a Vector) Vector {
	return Sub(New(a.Width, a.Signed), a)
}

// Mul returns a * b, widened to the wider operand's width and truncated
// to it (matching self-determined multiplication in a context of that
// width; the caller is responsible for widening operands beforehand for
// context-determined multiplication per LRM sec.11.6.3).
func Mul(a, b Vector) Vector {
	width := resultWidth(a, b)
	signed := resultSigned(a, b)
	if a.HasUnknown() || b.HasUnknown() {
		return AllX(width, signed)
	}
	aw, bw := a.Resize(width), b.Resize(width)
	full := make([]uint32, len(aw.AVal)+len(bw.AVal))
	for i := range aw.AVal {
		ai := uint64(aw.AVal[i])
		if ai == 0 {
			continue
		}
		var carry uint64
		for j := range bw.AVal {
			k := i + j
			sum := uint64(full[k]) + ai*uint64(bw.AVal[j]) + carry
			full[k] = uint32(sum)
			carry = sum >> 32
		}
		k := i + len(bw.AVal)
		for carry != 0 {
			sum := uint64(full[k]) + carry
			full[k] = uint32(sum)
			carry = sum >> 32
			k++
		}
	}
	out := New(width, signed)
	copy(out.AVal, full)
	out.mask()
	return out
}

// Div returns a / b, truncating toward zero for signed operands per the
// LRM. A zero divisor yields an all-X result of the wider width; callers
// that must diagnose DivideByZero should check b.IsZero() first.
func Div(a, b Vector) Vector {
	width := resultWidth(a, b)
	signed := resultSigned(a, b)
	if a.HasUnknown() || b.HasUnknown() || b.IsZero() {
		return AllX(width, signed)
	}
	if !signed {
		q, _ := divModUnsigned(a.Resize(width), b.Resize(width))
		return q
	}
	an, bn := isNegative(a), isNegative(b)
	au, bu := absVector(a).Resize(width), absVector(b).Resize(width)
	q, _ := divModUnsigned(au, bu)
	if an != bn {
		q = Neg(q)
	}
	return q
}

// Mod returns the remainder of a / b with the sign of a, per the LRM's
// truncating-division modulus rule.
func Mod(a, b Vector) Vector {
	width := resultWidth(a, b)
	signed := resultSigned(a, b)
	if a.HasUnknown() || b.HasUnknown() || b.IsZero() {
		return AllX(width, signed)
	}
	if !signed {
		_, r := divModUnsigned(a.Resize(width), b.Resize(width))
		return r
	}
	an := isNegative(a)
	au, bu := absVector(a).Resize(width), absVector(b).Resize(width)
	_, r := divModUnsigned(au, bu)
	if an {
		r = Neg(r)
	}
	return r
}

func isNegative(v Vector) bool {
	return v.Signed && v.Width > 0 && v.Bit(v.Width-1) == D1
}

func absVector(v Vector) Vector {
	if isNegative(v) {
		return Neg(v)
	}
	return v.Clone()
}

// divModUnsigned implements long division via repeated compare-subtract on
// a bit-shifted divisor, the same restoring-division shape as the
// teacher's bignum.UintDivMod.
func divModUnsigned(a, b Vector) (q, r Vector) {
	width := a.Width
	rem := a.Clone()
	quot := New(width, false)
	if cmpMagnitude(a, b) < 0 {
		return quot, rem
	}
	shift := a.BitLen() - b.BitLen()
	if shift < 0 {
		shift = 0
	}
	denom := b.Resize(width)
	denom = shiftLeftPlain(denom, shift)
	for i := shift; i >= 0; i-- {
		if cmpMagnitude(rem, denom) >= 0 {
			rem = subPlain(rem, denom)
			quot.SetBit(i, D1)
		}
		denom = shiftRightPlain(denom, 1)
	}
	return quot, rem
}

func cmpMagnitude(a, b Vector) int {
	for i := len(a.AVal) - 1; i >= 0; i-- {
		if a.AVal[i] != b.AVal[i] {
			if a.AVal[i] < b.AVal[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func subPlain(a, b Vector) Vector {
	out := New(a.Width, false)
	var borrow uint64
	for i := range out.AVal {
		av := uint64(a.AVal[i])
		bv := uint64(b.AVal[i]) + borrow
		out.AVal[i] = uint32(av - bv)
		if av < bv {
			borrow = 1
		} else {
			borrow = 0
		}
	}
	return out
}

func shiftLeftPlain(v Vector, n int) Vector {
	out := New(v.Width, false)
	for i := 0; i < v.Width; i++ {
		if i+n < v.Width {
			if v.Bit(i) == D1 {
				out.SetBit(i+n, D1)
			}
		}
	}
	return out
}

func shiftRightPlain(v Vector, n int) Vector {
	out := New(v.Width, false)
	for i := n; i < v.Width; i++ {
		if v.Bit(i) == D1 {
			out.SetBit(i-n, D1)
		}
	}
	return out
}
