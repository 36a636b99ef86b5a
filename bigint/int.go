// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"
)

// Int is an arbitrary-precision signed integer.  The zero value is ready to
// use and represents the number zero.
//
// The API follows the conventions of the standard math/big package: methods
// store their result in the receiver and return it, so operations can be
// chained and storage reused.  A normalized value never carries leading zero
// limbs and zero is never negative.  All arithmetic methods normalize their
// result before returning.
//
// Operations treat their operands as read-only, so distinct Int values may be
// shared freely between goroutines for reading.
type Int struct {
	neg bool
	abs []Word
}

// New returns a new Int set to the given unsigned 64-bit value.
func New(v uint64) *Int {
	return new(Int).SetUint64(v)
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.abs = append(z.abs[:0], x.abs...)
		z.neg = x.neg
	}
	return z
}

// SetUint64 sets z to the given unsigned 64-bit value and returns z.
func (z *Int) SetUint64(v uint64) *Int {
	z.neg = false
	z.abs = z.abs[:0]
	for v != 0 {
		z.abs = append(z.abs, Word(v))
		v >>= wordBits
	}
	return z
}

// SetBytes interprets buf as a big-endian unsigned integer, sets z to that
// value, and returns z.  Leading zero bytes are ignored and an empty buffer is
// the canonical encoding of zero.
func (z *Int) SetBytes(buf []byte) *Int {
	z.neg = false
	z.abs = make([]Word, (len(buf)+wordBytes-1)/wordBytes)
	i := len(buf)
	for w := 0; i >= wordBytes; w++ {
		var d Word
		for _, b := range buf[i-wordBytes : i] {
			d = d<<8 | Word(b)
		}
		z.abs[w] = d
		i -= wordBytes
	}
	if i > 0 {
		var d Word
		for _, b := range buf[:i] {
			d = d<<8 | Word(b)
		}
		z.abs[len(z.abs)-1] = d
	}
	z.abs = norm(z.abs)
	return z
}

// Bytes returns the absolute value of z as a big-endian byte slice with all
// leading zero bytes trimmed.  The result for zero is an empty slice, which is
// the canonical form used throughout this module.
func (z *Int) Bytes() []byte {
	buf := make([]byte, len(z.abs)*wordBytes)
	i := len(buf)
	for _, d := range z.abs {
		for j := 0; j < wordBytes; j++ {
			i--
			buf[i] = byte(d)
			d >>= 8
		}
	}
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// FillBytes writes the absolute value of z to buf as a zero-padded big-endian
// byte string and returns buf.  It panics if z does not fit, which makes it
// suitable only for fixed-width wire formats whose width has already been
// validated.
func (z *Int) FillBytes(buf []byte) []byte {
	b := z.Bytes()
	if len(b) > len(buf) {
		panic("bigint: value does not fit in buffer")
	}
	n := copy(buf[len(buf)-len(b):], b)
	for i := 0; i < len(buf)-n; i++ {
		buf[i] = 0
	}
	return buf
}

// Sign returns -1, 0, or 1 depending on whether z is negative, zero, or
// positive.
func (z *Int) Sign() int {
	if len(z.abs) == 0 {
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// IsZero returns whether z is zero.
func (z *Int) IsZero() bool {
	return len(z.abs) == 0
}

// IsOne returns whether z is exactly one.
func (z *Int) IsOne() bool {
	return !z.neg && len(z.abs) == 1 && z.abs[0] == 1
}

// IsOdd returns whether z is odd.
func (z *Int) IsOdd() bool {
	return len(z.abs) > 0 && z.abs[0]&1 == 1
}

// IsUint64 returns whether z can be represented as an unsigned 64-bit value.
func (z *Int) IsUint64() bool {
	return !z.neg && natBitLen(z.abs) <= 64
}

// Uint64 returns the unsigned 64-bit representation of z.  The result is
// undefined when IsUint64 reports false.
func (z *Int) Uint64() uint64 {
	var v uint64
	for i := len(z.abs) - 1; i >= 0; i-- {
		if wordBits == 64 {
			v = uint64(z.abs[i])
			break
		}
		v = v<<32 | uint64(z.abs[i])
	}
	return v
}

// BitLen returns the length of the absolute value of z in bits.  The bit
// length of zero is zero.
func (z *Int) BitLen() int {
	return natBitLen(z.abs)
}

// Bit returns the value of the i'th bit of the absolute value of z.
func (z *Int) Bit(i int) uint {
	w := i / wordBits
	if w >= len(z.abs) {
		return 0
	}
	return uint(z.abs[w]>>(uint(i)%wordBits)) & 1
}

// SetBit sets the i'th bit of the absolute value of z to one and returns z.
func (z *Int) SetBit(i int) *Int {
	w := i / wordBits
	for len(z.abs) <= w {
		z.abs = append(z.abs, 0)
	}
	z.abs[w] |= 1 << (uint(i) % wordBits)
	return z
}

// Cmp compares z and x and returns -1, 0, or 1 when z is less than, equal to,
// or greater than x.
func (z *Int) Cmp(x *Int) int {
	switch {
	case z.neg && !x.neg:
		return -1
	case !z.neg && x.neg:
		return 1
	case z.neg:
		return -natCmp(z.abs, x.abs)
	default:
		return natCmp(z.abs, x.abs)
	}
}

// CmpAbs compares the absolute values of z and x and returns -1, 0, or 1.
func (z *Int) CmpAbs(x *Int) int {
	return natCmp(z.abs, x.abs)
}

// Add sets z to the sum x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	if x.neg == y.neg {
		z.abs = natAdd(x.abs, y.abs)
		z.neg = x.neg && len(z.abs) > 0
		return z
	}
	// Opposite signs become a subtraction of the smaller magnitude from the
	// larger with the sign of the larger.
	if natCmp(x.abs, y.abs) >= 0 {
		z.neg = x.neg
		z.abs = natSub(x.abs, y.abs)
	} else {
		z.neg = y.neg
		z.abs = natSub(y.abs, x.abs)
	}
	z.neg = z.neg && len(z.abs) > 0
	return z
}

// Sub sets z to the difference x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	ny := &Int{neg: !y.neg, abs: y.abs}
	return z.Add(x, ny)
}

// Mul sets z to the product x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	neg := x.neg != y.neg
	z.abs = natMul(x.abs, y.abs)
	z.neg = neg && len(z.abs) > 0
	return z
}

// QuoRem sets z to the truncated quotient x/y and r to the remainder x%y and
// returns the pair (z, r).  The remainder carries the sign of x.  It panics
// when y is zero.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	xNeg, yNeg := x.neg, y.neg
	qAbs, rAbs := natDivMod(x.abs, y.abs)
	z.abs, z.neg = qAbs, xNeg != yNeg && len(qAbs) > 0
	r.abs, r.neg = rAbs, xNeg && len(rAbs) > 0
	return z, r
}

// Quo sets z to the truncated quotient x/y and returns z.
func (z *Int) Quo(x, y *Int) *Int {
	q, _ := z.QuoRem(x, y, new(Int))
	return q
}

// Rem sets z to the truncated remainder x%y and returns z.
func (z *Int) Rem(x, y *Int) *Int {
	_, r := new(Int).QuoRem(x, y, z)
	return r
}

// Mod sets z to the Euclidean modulus x mod y for y > 0 and returns z.  The
// result is always in [0, y), which is the form every modular operation in
// this module expects.
func (z *Int) Mod(x, y *Int) *Int {
	z.Rem(x, y)
	if z.neg {
		z.Add(z, &Int{abs: y.abs})
	}
	return z
}

// Lsh sets z to x shifted left by s bits and returns z.
func (z *Int) Lsh(x *Int, s uint) *Int {
	z.abs = natShl(x.abs, s)
	z.neg = x.neg && len(z.abs) > 0
	return z
}

// Rsh sets z to the absolute value of x shifted right by s bits with the sign
// of x reapplied and returns z.
func (z *Int) Rsh(x *Int, s uint) *Int {
	z.abs = natShr(x.abs, s)
	z.neg = x.neg && len(z.abs) > 0
	return z
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.neg = !z.neg && len(z.abs) > 0
	return z
}

// Abs sets z to the absolute value of x and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// String returns the value of z in lowercase hexadecimal with a leading sign
// for negative values.  It exists for debugging and test output.
func (z *Int) String() string {
	if len(z.abs) == 0 {
		return "0"
	}
	s := fmt.Sprintf("%x", z.abs[len(z.abs)-1])
	for i := len(z.abs) - 2; i >= 0; i-- {
		s += fmt.Sprintf("%0*x", wordBits/4, z.abs[i])
	}
	if z.neg {
		return "-" + s
	}
	return s
}

// SetHex sets z to the value of the lowercase or uppercase hexadecimal string
// and returns z along with whether the string was valid.  An optional leading
// "-" negates the value.
func (z *Int) SetHex(s string) (*Int, bool) {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) == 0 {
		return nil, false
	}
	buf := make([]byte, (len(s)+1)/2)
	odd := len(s) % 2
	for i := 0; i < len(s); i++ {
		var v byte
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			v = c - '0'
		case c >= 'a' && c <= 'f':
			v = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v = c - 'A' + 10
		default:
			return nil, false
		}
		buf[(i+odd)/2] = buf[(i+odd)/2]<<4 | v
	}
	z.SetBytes(buf)
	z.neg = neg && len(z.abs) > 0
	return z, true
}
