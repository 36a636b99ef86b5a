// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import "math/bits"

// trailingZeroBits returns the number of consecutive zero bits at the least
// significant end of the absolute value of x.  The result for zero is zero.
func (z *Int) trailingZeroBits() uint {
	for i, w := range z.abs {
		if w != 0 {
			return uint(i)*wordBits + uint(bits.TrailingZeros(w))
		}
	}
	return 0
}

// GCD sets z to the greatest common divisor of the absolute values of x and y
// using the binary GCD algorithm and returns z.  The result is zero only when
// both inputs are zero.
func (z *Int) GCD(x, y *Int) *Int {
	u := new(Int).Abs(x)
	v := new(Int).Abs(y)
	if u.IsZero() {
		return z.Set(v)
	}
	if v.IsZero() {
		return z.Set(u)
	}

	// Factor out the common power of two, then repeatedly strip the factors
	// of two that cannot divide the odd partner and replace the larger value
	// by the difference until one side reaches zero.
	common := u.trailingZeroBits()
	if vz := v.trailingZeroBits(); vz < common {
		common = vz
	}
	u.Rsh(u, u.trailingZeroBits())
	v.Rsh(v, v.trailingZeroBits())
	for {
		switch u.Cmp(v) {
		case 0:
			return z.Lsh(u, common)
		case 1:
			u, v = v, u
		}
		v.Sub(v, u)
		v.Rsh(v, v.trailingZeroBits())
	}
}

// egcd runs the extended binary GCD algorithm on positive x and y and returns
// g, a, and b such that a*x + b*y = g = gcd(x, y).  The coefficients may be
// negative.
func egcd(x, y *Int) (g, a, b *Int) {
	// Pull out the power of two common to both values first since the
	// coefficient bookkeeping below requires at least one odd operand.
	shift := x.trailingZeroBits()
	if yz := y.trailingZeroBits(); yz < shift {
		shift = yz
	}
	xr := new(Int).Rsh(x, shift)
	yr := new(Int).Rsh(y, shift)

	u := new(Int).Set(xr)
	v := new(Int).Set(yr)
	bigA := New(1)
	bigB := new(Int)
	bigC := new(Int)
	bigD := New(1)

	for !u.IsZero() {
		for !u.IsOdd() {
			u.Rsh(u, 1)
			if bigA.IsOdd() || bigB.IsOdd() {
				bigA.Add(bigA, yr)
				bigB.Sub(bigB, xr)
			}
			bigA.Rsh(bigA, 1)
			bigB.Rsh(bigB, 1)
		}
		for !v.IsOdd() && !v.IsZero() {
			v.Rsh(v, 1)
			if bigC.IsOdd() || bigD.IsOdd() {
				bigC.Add(bigC, yr)
				bigD.Sub(bigD, xr)
			}
			bigC.Rsh(bigC, 1)
			bigD.Rsh(bigD, 1)
		}
		if u.Cmp(v) >= 0 {
			u.Sub(u, v)
			bigA.Sub(bigA, bigC)
			bigB.Sub(bigB, bigD)
		} else {
			v.Sub(v, u)
			bigC.Sub(bigC, bigA)
			bigD.Sub(bigD, bigB)
		}
	}
	return new(Int).Lsh(v, shift), bigC, bigD
}

// ExtendedGCD returns g, a, and b such that a*x + b*y = g = gcd(x, y) for
// positive x and y.  The coefficients may be negative.
func ExtendedGCD(x, y *Int) (g, a, b *Int) {
	if x.Sign() <= 0 || y.Sign() <= 0 {
		panic("bigint: extended GCD requires positive operands")
	}
	return egcd(x, y)
}

// ModInverse sets z to the multiplicative inverse of x in the ring Z/mZ and
// returns z.  It returns nil without touching z when no inverse exists, that
// is when gcd(x, m) != 1.  m must be greater than one.
func (z *Int) ModInverse(x, m *Int) *Int {
	xm := new(Int).Mod(x, m)
	if xm.IsZero() {
		return nil
	}
	g, a, _ := egcd(xm, new(Int).Abs(m))
	if !g.IsOne() {
		return nil
	}
	return z.Mod(a, m)
}
