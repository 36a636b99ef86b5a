// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import "math/bits"

// A Word is a single limb of a multi-precision unsigned integer.  Values are
// stored in little-endian word order, so word zero holds the least significant
// bits.
type Word = uint

const (
	// wordBits is the size of a Word in bits.
	wordBits = bits.UintSize

	// wordBytes is the size of a Word in bytes.
	wordBytes = wordBits / 8
)

// norm strips leading zero words so that the invariant of no high zero limbs
// holds.  The zero value is the empty (or nil) slice.
func norm(x []Word) []Word {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// natCmp compares two normalized word slices and returns -1, 0, or 1 when x is
// less than, equal to, or greater than y.
func natCmp(x, y []Word) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// natAdd returns the sum of two normalized word slices as a new normalized
// slice.
func natAdd(x, y []Word) []Word {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]Word, len(x)+1)
	var c Word
	for i := 0; i < len(y); i++ {
		z[i], c = bits.Add(x[i], y[i], c)
	}
	for i := len(y); i < len(x); i++ {
		z[i], c = bits.Add(x[i], 0, c)
	}
	z[len(x)] = c
	return norm(z)
}

// natSub returns x - y as a new normalized slice.  The caller must ensure
// x >= y.
func natSub(x, y []Word) []Word {
	z := make([]Word, len(x))
	var b Word
	for i := 0; i < len(y); i++ {
		z[i], b = bits.Sub(x[i], y[i], b)
	}
	for i := len(y); i < len(x); i++ {
		z[i], b = bits.Sub(x[i], 0, b)
	}
	return norm(z)
}

// addVV adds the equally sized word slice x into z in place and returns the
// final carry.
func addVV(z, x []Word) (c Word) {
	for i := 0; i < len(x); i++ {
		z[i], c = bits.Add(z[i], x[i], c)
	}
	return c
}

// subVV subtracts the equally sized word slice x from z in place and returns
// the final borrow.
func subVV(z, x []Word) (b Word) {
	for i := 0; i < len(x); i++ {
		z[i], b = bits.Sub(z[i], x[i], b)
	}
	return b
}

// mulAddVWW sets z = x*y + r for a single word multiplier y and returns the
// final carry word.  z must have the same length as x.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(x); i++ {
		hi, lo := bits.Mul(x[i], y)
		lo, cc := bits.Add(lo, c, 0)
		z[i] = lo
		c = hi + cc
	}
	return c
}

// addMulVVW sets z += x*y for a single word multiplier y and returns the final
// carry word.  z must be at least as long as x.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(x); i++ {
		hi, lo := bits.Mul(x[i], y)
		lo, cc := bits.Add(lo, c, 0)
		hi += cc
		lo, cc = bits.Add(lo, z[i], 0)
		hi += cc
		z[i] = lo
		c = hi
	}
	return c
}

// natMul returns the product of two normalized word slices using schoolbook
// multiplication.  Operand sizes in this module top out at a few hundred words
// where the quadratic method remains competitive, so no subquadratic algorithm
// is provided.
func natMul(x, y []Word) []Word {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make([]Word, len(x)+len(y))
	for i := 0; i < len(x); i++ {
		if d := x[i]; d != 0 {
			z[i+len(y)] = addMulVVW(z[i:i+len(y)], y, d)
		}
	}
	return norm(z)
}

// natShl returns x << s as a new normalized slice.
func natShl(x []Word, s uint) []Word {
	if len(x) == 0 {
		return nil
	}
	words := int(s / wordBits)
	bitShift := s % wordBits
	z := make([]Word, len(x)+words+1)
	if bitShift == 0 {
		copy(z[words:], x)
		return norm(z)
	}
	var carry Word
	for i := 0; i < len(x); i++ {
		z[i+words] = x[i]<<bitShift | carry
		carry = x[i] >> (wordBits - bitShift)
	}
	z[len(x)+words] = carry
	return norm(z)
}

// natShr returns x >> s as a new normalized slice.
func natShr(x []Word, s uint) []Word {
	words := int(s / wordBits)
	if words >= len(x) {
		return nil
	}
	bitShift := s % wordBits
	x = x[words:]
	z := make([]Word, len(x))
	if bitShift == 0 {
		copy(z, x)
		return norm(z)
	}
	for i := 0; i < len(x)-1; i++ {
		z[i] = x[i]>>bitShift | x[i+1]<<(wordBits-bitShift)
	}
	z[len(x)-1] = x[len(x)-1] >> bitShift
	return norm(z)
}

// natBitLen returns the length of x in bits.
func natBitLen(x []Word) int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*wordBits + bits.Len(x[len(x)-1])
}

// natModW returns x mod d for a single nonzero word divisor.
func natModW(x []Word, d Word) Word {
	var r Word
	for i := len(x) - 1; i >= 0; i-- {
		_, r = bits.Div(r, x[i], d)
	}
	return r
}

// natDivW returns the quotient and remainder of x divided by the single
// nonzero word d.
func natDivW(x []Word, d Word) (q []Word, r Word) {
	q = make([]Word, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		q[i], r = bits.Div(r, x[i], d)
	}
	return norm(q), r
}

// natDivMod returns the quotient and remainder of u divided by v as new
// normalized slices such that u = q*v + r with 0 <= r < v.  It implements the
// classical schoolbook long division (Knuth Algorithm D) with the divisor
// normalized so its most significant bit is set, a two-word quotient digit
// estimate refined against the next divisor word, and an add-back correction
// pass for the rare case the estimate is one too large.  v must be nonzero.
func natDivMod(u, v []Word) (q, r []Word) {
	if len(v) == 0 {
		panic("bigint: division by zero")
	}
	if natCmp(u, v) < 0 {
		r = make([]Word, len(u))
		copy(r, u)
		return nil, norm(r)
	}
	if len(v) == 1 {
		q, rw := natDivW(u, v[0])
		if rw == 0 {
			return q, nil
		}
		return q, []Word{rw}
	}

	// D1: normalize the divisor so its top bit is set and shift the dividend
	// by the same amount, growing it by one word so the top window is always
	// available.
	shift := uint(bits.LeadingZeros(v[len(v)-1]))
	vn := natShl(v, shift)
	un := make([]Word, len(u)+1)
	copy(un, natShl(u, shift))

	n := len(vn)
	m := len(un) - 1 - n
	q = make([]Word, m+1)
	qhatv := make([]Word, n+1)
	vn1 := vn[n-1]
	vn2 := vn[n-2]

	for j := m; j >= 0; j-- {
		// D3: estimate the quotient digit from the top two dividend words and
		// the top divisor word, then refine it against the next divisor word
		// so it is at most one too large.
		qhat := ^Word(0)
		if un[j+n] != vn1 {
			var rhat Word
			qhat, rhat = bits.Div(un[j+n], un[j+n-1], vn1)
			for {
				hi, lo := bits.Mul(qhat, vn2)
				if hi < rhat || (hi == rhat && lo <= un[j+n-2]) {
					break
				}
				qhat--
				prev := rhat
				rhat += vn1
				if rhat < prev {
					// rhat overflowed the word size, so the two-word test
					// above can no longer fail.
					break
				}
			}
		}

		// D4: subtract qhat*v from the current dividend window.
		qhatv[n] = mulAddVWW(qhatv[:n], vn, qhat, 0)
		borrow := subVV(un[j:j+n+1], qhatv)

		// D6: the estimate can still be one too large; add the divisor back
		// until the window is nonnegative again.
		for borrow != 0 {
			qhat--
			carry := addVV(un[j:j+n], vn)
			un[j+n], carry = bits.Add(un[j+n], carry, 0)
			borrow -= carry
		}
		q[j] = qhat
	}

	// D8: shift the remainder back down to undo the normalization.
	return norm(q), natShr(un[:n], shift)
}
