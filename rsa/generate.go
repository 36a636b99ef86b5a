// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rsa

import (
	"fmt"
	"io"

	"github.com/Atomicwallet/bcrypto"
	"github.com/Atomicwallet/bcrypto/bigint"
)

// generateRounds is the Miller-Rabin round count used for fresh prime
// candidates during key generation.
const generateRounds = 64

// allowedModulusBits enumerates the modulus sizes GenerateKey accepts.
var allowedModulusBits = map[int]bool{
	512:  true,
	1024: true,
	2048: true,
	4096: true,
	8192: true,
}

// randomPrime returns a probable prime of exactly the given bit length with
// its top bit set whose predecessor is coprime to e, drawing candidates from
// the provided entropy source until one passes.
func randomPrime(rand io.Reader, bits int, e *bigint.Int) (*bigint.Int, error) {
	one := bigint.New(1)
	for {
		cand, err := bigint.RandBits(rand, bits, true, true)
		if err != nil {
			return nil, err
		}
		// Skip candidates whose predecessor shares a factor with e since no
		// private exponent can exist for them.
		cm1 := new(bigint.Int).Sub(cand, one)
		if !new(bigint.Int).GCD(e, cm1).IsOne() {
			continue
		}
		prime, err := bigint.ProbablyPrime(rand, cand, generateRounds)
		if err != nil {
			return nil, err
		}
		if prime {
			return cand, nil
		}
	}
}

// GenerateKey generates a fresh RSA key with a modulus of exactly the given
// bit length and the fixed public exponent 65537.  The size must be one of
// 512, 1024, 2048, 4096, or 8192 bits.
//
// The two prime factors have their top bits set and are regenerated until the
// modulus reaches the exact requested length and the factors are far enough
// apart that Fermat-style factoring is infeasible.
func GenerateKey(rand io.Reader, bits int) (*PrivateKey, error) {
	if !allowedModulusBits[bits] {
		str := fmt.Sprintf("invalid modulus size: %d bits", bits)
		return nil, bcrypto.MakeError(bcrypto.ErrInvalidParameter, str)
	}

	one := bigint.New(1)
	e := bigint.New(65537)

	// |p - q| must exceed 2^(bits/2 - 100).
	minDistance := new(bigint.Int).SetBit(bits/2 - 100)

	pBits := (bits + 1) / 2
	qBits := bits / 2
	for {
		p, err := randomPrime(rand, pBits, e)
		if err != nil {
			return nil, err
		}
		q, err := randomPrime(rand, qBits, e)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}
		distance := new(bigint.Int).Sub(p, q)
		if distance.Abs(distance).Cmp(minDistance) <= 0 {
			continue
		}

		n := new(bigint.Int).Mul(p, q)
		if n.BitLen() != bits {
			continue
		}

		// d = e^-1 mod lcm(p-1, q-1); the coprimality of e with both p-1 and
		// q-1 was established during prime selection, so the inverse exists.
		pm1 := new(bigint.Int).Sub(p, one)
		qm1 := new(bigint.Int).Sub(q, one)
		lambda := new(bigint.Int).Mul(pm1, qm1)
		lambda.Quo(lambda, new(bigint.Int).GCD(pm1, qm1))
		d := new(bigint.Int).ModInverse(e, lambda)
		if d == nil {
			continue
		}

		return &PrivateKey{
			PublicKey: PublicKey{N: n, E: e},
			D:         d,
			P:         p,
			Q:         q,
			Dp:        new(bigint.Int).Mod(d, pm1),
			Dq:        new(bigint.Int).Mod(d, qm1),
			Qinv:      new(bigint.Int).ModInverse(q, p),
		}, nil
	}
}
