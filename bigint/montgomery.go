// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

// References:
//   [HAC]: Handbook of Applied Cryptography (Menezes, van Oorschot, Vanstone)
//     Chapter 14.
//
//   [MONT]: Modular Multiplication Without Trial Division (Montgomery, 1985)

// montCtx caches the values needed to perform modular arithmetic in the
// Montgomery domain for a fixed odd modulus m: the modulus itself, the
// negated inverse of its low word modulo the word base, and R² mod m where
// R = B^n for word base B and modulus length n.  Converting an operand into
// the domain is then a single Montgomery multiplication by R², and all
// reductions inside an exponentiation avoid division entirely.
type montCtx struct {
	m   []Word // modulus, odd, normalized
	k   Word   // -m^-1 mod B
	rr  []Word // R² mod m, length n
	one []Word // R mod m (the Montgomery form of 1), length n
}

// montK returns -m0^-1 mod B for an odd low modulus word m0 using Newton
// iteration.  Each step doubles the number of correct low bits, and the seed
// is already correct to three bits for any odd word, so five steps cover a
// 64-bit word.
func montK(m0 Word) Word {
	inv := m0
	for i := 0; i < 5; i++ {
		inv *= 2 - m0*inv
	}
	return -inv
}

// newMontCtx builds a Montgomery context for the odd modulus m > 1.
func newMontCtx(m *Int) *montCtx {
	n := len(m.abs)
	mod := make([]Word, n)
	copy(mod, m.abs)

	// R² mod m via one long division of B^2n.
	b2n := make([]Word, 2*n+1)
	b2n[2*n] = 1
	_, rr := natDivMod(b2n, mod)
	rrW := make([]Word, n)
	copy(rrW, rr)

	// R mod m the same way.
	bn := make([]Word, n+1)
	bn[n] = 1
	_, r := natDivMod(bn, mod)
	oneW := make([]Word, n)
	copy(oneW, r)

	return &montCtx{m: mod, k: montK(mod[0]), rr: rrW, one: oneW}
}

// mul returns x*y*R^-1 mod m for operands of length n already reduced below
// the modulus.  The interleaved multiply-and-reduce is the standard word-wise
// Montgomery multiplication; the single conditional final subtraction depends
// only on the running carry, not on any individual operand bit.
func (c *montCtx) mul(x, y []Word) []Word {
	n := len(c.m)
	z := make([]Word, 2*n)
	var carry Word
	for i := 0; i < n; i++ {
		c2 := addMulVVW(z[i:n+i], x, y[i])
		t := z[i] * c.k
		c3 := addMulVVW(z[i:n+i], c.m, t)
		cx := carry + c2
		cy := cx + c3
		z[n+i] = cy
		if cx < c2 || cy < c3 {
			carry = 1
		} else {
			carry = 0
		}
	}
	res := make([]Word, n)
	if carry != 0 {
		copy(res, z[n:])
		subVV(res, c.m)
	} else {
		copy(res, z[n:])
	}
	return res
}

// toMont converts a reduced operand into the Montgomery domain.
func (c *montCtx) toMont(x []Word) []Word {
	return c.mul(x, c.rr)
}

// fromMont converts a value out of the Montgomery domain.
func (c *montCtx) fromMont(x []Word) []Word {
	n := len(c.m)
	one := make([]Word, n)
	one[0] = 1
	return c.mul(x, one)
}

// padWords returns the absolute value of x as a word slice padded with high
// zeros to exactly n words.  x must fit.
func padWords(x *Int, n int) []Word {
	z := make([]Word, n)
	copy(z, x.abs)
	return z
}

// expWindowed returns x^e mod m in the Montgomery domain context using 4-bit
// fixed windows.  The window loop skips multiplications for zero windows and
// indexes the power table directly, so it runs in variable time and must only
// be used with public exponents.
func (c *montCtx) expWindowed(x, e []Word) []Word {
	n := len(c.m)
	xm := c.toMont(x)

	// Power table: pow[i] holds the Montgomery form of x^i.
	var pow [16][]Word
	pow[0] = c.one
	pow[1] = xm
	for i := 2; i < 16; i++ {
		pow[i] = c.mul(pow[i-1], xm)
	}

	z := make([]Word, n)
	copy(z, c.one)
	started := false
	for i := len(e) - 1; i >= 0; i-- {
		w := e[i]
		for shift := wordBits - 4; shift >= 0; shift -= 4 {
			nib := (w >> uint(shift)) & 0xf
			if started {
				z = c.mul(z, z)
				z = c.mul(z, z)
				z = c.mul(z, z)
				z = c.mul(z, z)
			}
			if nib != 0 {
				z = c.mul(z, pow[nib])
				started = true
			}
		}
	}
	return c.fromMont(z)
}

// ctSelect sets dst to table[idx] without any memory access pattern or branch
// that depends on idx.  Every entry is scanned and masked into the result.
func ctSelect(dst []Word, table *[16][]Word, idx Word) {
	for i := range dst {
		dst[i] = 0
	}
	for j := 0; j < 16; j++ {
		diff := Word(j) ^ idx
		mask := -((diff - 1) >> (wordBits - 1))
		entry := table[j]
		for i := range dst {
			dst[i] |= entry[i] & mask
		}
	}
}

// expConstTime returns x^e mod m in the Montgomery domain context with a
// square-and-multiply sequence whose control flow is independent of the
// exponent bits.  Every 4-bit window performs exactly four squarings, one
// masked table scan, and one multiplication; zero windows multiply by the
// Montgomery form of 1 rather than skipping the step.  Only the word length
// of the exponent is observable.
func (c *montCtx) expConstTime(x, e []Word) []Word {
	n := len(c.m)
	xm := c.toMont(x)

	var pow [16][]Word
	pow[0] = c.one
	pow[1] = xm
	for i := 2; i < 16; i++ {
		pow[i] = c.mul(pow[i-1], xm)
	}

	z := make([]Word, n)
	copy(z, c.one)
	sel := make([]Word, n)
	for i := len(e) - 1; i >= 0; i-- {
		w := e[i]
		for shift := wordBits - 4; shift >= 0; shift -= 4 {
			nib := (w >> uint(shift)) & 0xf
			z = c.mul(z, z)
			z = c.mul(z, z)
			z = c.mul(z, z)
			z = c.mul(z, z)
			ctSelect(sel, &pow, nib)
			z = c.mul(z, sel)
		}
	}
	return c.fromMont(z)
}

// expBasic returns x^y mod m by plain square-and-multiply with a full
// reduction after every step.  It exists as the fallback for even moduli,
// which the Montgomery machinery cannot handle.
func expBasic(x, y, m *Int) *Int {
	z := new(Int).Mod(New(1), m)
	base := new(Int).Mod(x, m)
	for i := y.BitLen() - 1; i >= 0; i-- {
		z.Mul(z, z)
		z.Mod(z, m)
		if y.Bit(i) == 1 {
			z.Mul(z, base)
			z.Mod(z, m)
		}
	}
	return z
}

// Exp sets z = x^y mod m and returns z.  y must be nonnegative and m must be
// positive.  Odd moduli use Montgomery reduction with 4-bit windows; even
// moduli fall back to plain square-and-multiply with division.  The runtime
// varies with the operand values, so this must only be used where every input
// is public: signature verification, primality testing, and parameter
// searches.
func (z *Int) Exp(x, y, m *Int) *Int {
	if y.neg {
		panic("bigint: negative exponent")
	}
	if m.Sign() <= 0 {
		panic("bigint: nonpositive modulus")
	}
	if m.IsOne() {
		return z.SetUint64(0)
	}
	if y.IsZero() {
		return z.SetUint64(1)
	}
	if !m.IsOdd() {
		return z.Set(expBasic(x, y, m))
	}
	ctx := newMontCtx(m)
	xr := new(Int).Mod(x, m)
	z.abs = norm(ctx.expWindowed(padWords(xr, len(ctx.m)), y.abs))
	z.neg = false
	// Montgomery reduction keeps values below B^n rather than below m, so a
	// final reduction is occasionally needed.
	if natCmp(z.abs, m.abs) >= 0 {
		_, z.abs = natDivMod(z.abs, m.abs)
	}
	return z
}

// ExpConstTime sets z = x^y mod m and returns z using an exponentiation
// ladder whose control flow does not depend on the bits of y.  It exists for
// operations on private-key material.  m must be odd; the word length of y is
// the only property of the exponent that influences the run time.
func (z *Int) ExpConstTime(x, y, m *Int) *Int {
	if y.neg {
		panic("bigint: negative exponent")
	}
	if !m.IsOdd() {
		panic("bigint: even modulus in constant-time exponentiation")
	}
	if m.IsOne() {
		return z.SetUint64(0)
	}
	if y.IsZero() {
		return z.SetUint64(1)
	}
	ctx := newMontCtx(m)
	xr := new(Int).Mod(x, m)
	z.abs = norm(ctx.expConstTime(padWords(xr, len(ctx.m)), y.abs))
	z.neg = false
	// Montgomery reduction keeps values below B^n rather than below m, so a
	// final reduction is occasionally needed.
	if natCmp(z.abs, m.abs) >= 0 {
		_, z.abs = natDivMod(z.abs, m.abs)
	}
	return z
}

// Zero clears the value and underlying storage of z.  It is used to scrub
// intermediate values derived from private keys once they are no longer
// needed.
func (z *Int) Zero() {
	for i := range z.abs {
		z.abs[i] = 0
	}
	z.abs = z.abs[:0]
	z.neg = false
}
