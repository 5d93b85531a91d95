package fourstate_test

import (
	"testing"

	fs "github.com/mohamed/svlang/internal/fourstate"
)

func TestFromUint64RoundTrip(t *testing.T) {
	v := fs.FromUint64(8, false, 200)
	got, ok := v.Uint64()
	if !ok || got != 200 {
		t.Fatalf("Uint64() = (%d, %v), want (200, true)", got, ok)
	}
}

func TestAddKnownOperands(t *testing.T) {
	a := fs.FromUint64(8, false, 200)
	b := fs.FromUint64(8, false, 100)
	sum := fs.Add(a, b)
	got, ok := sum.Uint64()
	if !ok {
		t.Fatal("sum should be fully known")
	}
	if got != (300 & 0xFF) {
		t.Fatalf("Add() = %d, want %d (wrapped mod 2^8)", got, 300&0xFF)
	}
}

func TestArithmeticPropagatesUnknown(t *testing.T) {
	a := fs.FromUint64(8, false, 5)
	b := fs.New(8, false)
	b.SetBit(0, fs.DX)
	sum := fs.Add(a, b)
	if !sum.HasUnknown() {
		t.Fatal("adding an operand with any X bit must yield an all-X result")
	}
	for i := 0; i < sum.Width; i++ {
		if sum.Bit(i) != fs.DX {
			t.Fatalf("bit %d = %v, want all bits X", i, sum.Bit(i))
		}
	}
}

func TestDivideByZeroYieldsAllX(t *testing.T) {
	a := fs.FromUint64(8, false, 5)
	zero := fs.New(8, false)
	q := fs.Div(a, zero)
	if !q.HasUnknown() {
		t.Fatal("division by zero should yield an all-X result")
	}
}

func TestBitwiseTruthTablesDoNotPoisonWholeResult(t *testing.T) {
	a := fs.New(1, false)
	a.SetBit(0, fs.D0)
	b := fs.New(1, false)
	b.SetBit(0, fs.DX)
	// 0 & x == 0, per LRM Table 11-14, unlike arithmetic's all-X rule.
	and := fs.And(a, b)
	if and.Bit(0) != fs.D0 {
		t.Fatalf("0 & x = %v, want 0", and.Bit(0))
	}
	or := fs.Or(a, b)
	if or.Bit(0) != fs.DX {
		t.Fatalf("0 | x = %v, want x", or.Bit(0))
	}
}

func TestCaseEqualsDistinguishesXFromZ(t *testing.T) {
	a := fs.New(4, false)
	a.SetBit(0, fs.DX)
	b := fs.New(4, false)
	b.SetBit(0, fs.DZ)
	if fs.CaseEquals(a, b) {
		t.Fatal("=== must distinguish x from z")
	}
	if fs.LogicalEquals(a, b) != fs.TriUnknown {
		t.Fatal("== between values with unknown bits must be unknown")
	}
}

func TestWildcardEqualsTreatsPatternUnknownAsDontCare(t *testing.T) {
	a := fs.FromUint64(4, false, 0b1010)
	pattern := fs.New(4, false)
	pattern.SetBit(3, fs.D1)
	pattern.SetBit(2, fs.D0)
	pattern.SetBit(1, fs.DX)
	pattern.SetBit(0, fs.D0)
	if fs.WildcardEquals(a, pattern) != fs.TriTrue {
		t.Fatal("==? should ignore x positions in the pattern")
	}
}

func TestShrIsAlwaysLogical(t *testing.T) {
	v := fs.FromInt64(8, -1) // all ones
	shr := fs.Shr(v, 4)
	if shr.Bit(7) != fs.D0 {
		t.Fatal(">> must zero-fill even for a signed negative value")
	}
	ashr := fs.Ashr(v, 4)
	if ashr.Bit(7) != fs.D1 {
		t.Fatal(">>> must sign-extend for a signed negative value")
	}
}

func TestParseBasedDigitsBinary(t *testing.T) {
	v, err := fs.ParseBasedDigits(4, false, fs.Binary, "10x1")
	if err != nil {
		t.Fatalf("ParseBasedDigits: %v", err)
	}
	if v.Bit(3) != fs.D1 || v.Bit(2) != fs.D0 || v.Bit(1) != fs.DX || v.Bit(0) != fs.D1 {
		t.Fatalf("unexpected bits: %s", fs.FormatBinary(v))
	}
}

func TestParseDecimalRejectsMixedUnknown(t *testing.T) {
	if _, err := fs.ParseBasedDigits(8, false, fs.Decimal, "1x"); err == nil {
		t.Fatal("a decimal literal mixing digits and x/z must be rejected")
	}
	v, err := fs.ParseBasedDigits(8, false, fs.Decimal, "x")
	if err != nil {
		t.Fatalf("all-x decimal literal should parse: %v", err)
	}
	if !v.HasX() {
		t.Fatal("all-x decimal literal should produce an all-X vector")
	}
}

func TestFormatHexUnknownNibble(t *testing.T) {
	v := fs.New(8, false)
	v.SetBit(0, fs.D1)
	v.SetBit(1, fs.DX)
	got := fs.FormatHex(v)
	if got != "0x" {
		t.Fatalf("FormatHex() = %q, want \"0x\"", got)
	}
}

func TestResizeSignExtendsSigned(t *testing.T) {
	v := fs.FromInt64(4, -1) // 0b1111
	wide := v.Resize(8)
	for i := 4; i < 8; i++ {
		if wide.Bit(i) != fs.D1 {
			t.Fatalf("bit %d = %v, want 1 (sign-extended)", i, wide.Bit(i))
		}
	}
}
