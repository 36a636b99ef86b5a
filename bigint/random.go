// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import (
	"io"
)

// RandInt returns a uniformly distributed integer in [1, lt-1] drawn from the
// provided entropy source.  lt must be greater than one.
//
// The value is produced by rejection sampling: enough whole bytes to cover the
// bit length of lt are drawn, interpreted as a big-endian integer, and
// discarded unless they land in range.  There is deliberately no modular
// reduction of out-of-range samples since that would bias the distribution.
// The loop is unbounded in theory but terminates after a handful of draws in
// expectation.
func RandInt(rand io.Reader, lt *Int) (*Int, error) {
	if lt.Sign() <= 0 || lt.IsOne() {
		panic("bigint: upper bound must exceed one")
	}
	buf := make([]byte, (lt.BitLen()+7)/8)
	z := new(Int)
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, err
		}
		z.SetBytes(buf)
		if !z.IsZero() && z.Cmp(lt) < 0 {
			return z, nil
		}
	}
}

// RandBits returns a random integer of exactly the given bit length when
// setTop is true, with the lowest bit forced when setBottom is true.  Prime
// candidate generation sets both so candidates are odd and products of two
// candidates reach the intended modulus size.
func RandBits(rand io.Reader, bitLen int, setTop, setBottom bool) (*Int, error) {
	if bitLen <= 0 {
		panic("bigint: bit length must be positive")
	}
	buf := make([]byte, (bitLen+7)/8)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return nil, err
	}

	// Drop excess high bits so the value fits in bitLen bits.
	if excess := len(buf)*8 - bitLen; excess > 0 {
		buf[0] &= 0xff >> uint(excess)
	}
	z := new(Int).SetBytes(buf)
	if setTop {
		z.SetBit(bitLen - 1)
	}
	if setBottom {
		z.SetBit(0)
	}
	return z, nil
}
