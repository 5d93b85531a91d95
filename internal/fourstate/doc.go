// Package fourstate implements arbitrary-width four-state ({0,1,X,Z})
// integer arithmetic, the value domain SystemVerilog constant expressions
// evaluate in.
//
// A Vector stores its bits as two parallel little-endian uint32 limb
// planes, AVal and BVal, a base-2^32 limb layout borrowed from
// arbitrary-precision unsigned-integer arithmetic (add/multiply/shift on
// a single limb plane) doubled up so each bit position combines one bit
// from each plane to select one of the four logic values:
//
//	AVal BVal  ->  value
//	0    0         0
//	1    0         1
//	0    1         Z
//	1    1         X
//
// Unlike BigUint, a Vector's limb count is fixed by its declared bit Width
// (ceil(Width/32) limbs) rather than growing and shrinking with trimLimbs;
// bits at or above Width are always kept zero in both planes so callers can
// compare vectors of the same width limb-by-limb directly.
//
// Any arithmetic operation (Add, Sub, Mul, Div, Mod) whose operand contains
// an X or Z bit yields a fully-unknown result of the wider operand's width,
// matching the LRM's "ambiguous" 4-state arithmetic rule. Bitwise and
// relational operators instead apply the classic four-state truth tables
// per bit / per comparison, so e.g. `1 & z` yields x rather than forcing
// the whole result unknown.
package fourstate
