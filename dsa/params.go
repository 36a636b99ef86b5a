// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dsa

import (
	"fmt"
	"io"

	"github.com/Atomicwallet/bcrypto"
	"github.com/Atomicwallet/bcrypto/bigint"
)

// References:
//   [FIPS 186-4]: Digital Signature Standard (DSS), appendix A.

const (
	// minParamBits and maxParamBits bound the prime modulus sizes accepted by
	// parameter generation.
	minParamBits = 1024
	maxParamBits = 3072

	// primeRounds is the Miller-Rabin round count applied to parameter and
	// validation candidates.
	primeRounds = 64
)

// allowedSizes lists the (L, N) bit length pairs accepted by parameter
// validation, per [FIPS 186-4] section 4.2.
var allowedSizes = map[int]map[int]bool{
	1024: {160: true},
	2048: {224: true, 256: true},
	3072: {256: true},
}

// Params holds a DSA domain parameter set: the prime modulus p, the prime
// subgroup order q dividing p-1, and a generator g of the order-q subgroup.
// Parameter sets are public values shared by any number of keys.
type Params struct {
	P *bigint.Int
	Q *bigint.Int
	G *bigint.Int
}

// Bits returns the bit length of the prime modulus.
func (p *Params) Bits() int {
	return p.P.BitLen()
}

// Size returns the byte length of a serialized signature component, which is
// the byte length of the subgroup order.
func (p *Params) Size() int {
	return (p.Q.BitLen() + 7) / 8
}

// paramError creates a bcrypto.Error with the invalid key kind.
func paramError(desc string) error {
	return bcrypto.MakeError(bcrypto.ErrInvalidKey, desc)
}

// Validate checks that the parameter set is structurally sound: both primes
// have an accepted (L, N) bit length combination and pass Miller-Rabin, q
// divides p-1, and g generates a subgroup of order q.
func (p *Params) Validate(rand io.Reader) error {
	if p.P == nil || p.Q == nil || p.G == nil {
		return paramError("missing parameter field")
	}

	bitsL, bitsN := p.P.BitLen(), p.Q.BitLen()
	if !allowedSizes[bitsL][bitsN] {
		str := fmt.Sprintf("unsupported parameter sizes: L=%d N=%d", bitsL, bitsN)
		return paramError(str)
	}

	for _, v := range []*bigint.Int{p.P, p.Q} {
		prime, err := bigint.ProbablyPrime(rand, v, primeRounds)
		if err != nil {
			return err
		}
		if !prime {
			return paramError("parameter prime is composite")
		}
	}

	// q | (p-1)
	pm1 := new(bigint.Int).Sub(p.P, bigint.New(1))
	if !new(bigint.Int).Mod(pm1, p.Q).IsZero() {
		return paramError("q does not divide p-1")
	}

	// 1 < g < p and g^q = 1 (mod p)
	if p.G.IsZero() || p.G.IsOne() || p.G.Sign() < 0 || p.G.Cmp(p.P) >= 0 {
		return paramError("generator out of range")
	}
	if !new(bigint.Int).Exp(p.G, p.Q, p.P).IsOne() {
		return paramError("generator order is not q")
	}
	return nil
}

// GenerateParams produces a fresh domain parameter set with a modulus of the
// given bit length.  The subgroup order is 160 bits for moduli below 2048
// bits and 256 bits otherwise.
//
// The search follows the FIPS 186-4 compatible procedure: a random subgroup
// order candidate q is fixed first, then up to 4L modulus candidates are
// drawn and nudged onto the q | (p-1) lattice before testing primality; if
// the budget is exhausted a fresh q is drawn.  The generator search walks
// h = 2, 3, ... until h^((p-1)/q) escapes the trivial subgroup, which almost
// always succeeds at the first step.
func GenerateParams(rand io.Reader, bits int) (*Params, error) {
	if bits < minParamBits || bits > maxParamBits {
		str := fmt.Sprintf("invalid parameter size: %d bits", bits)
		return nil, bcrypto.MakeError(bcrypto.ErrInvalidParameter, str)
	}
	nBits := 160
	if bits >= 2048 {
		nBits = 256
	}

	one := bigint.New(1)
	var p, q *bigint.Int
searchQ:
	for {
		var err error
		q, err = bigint.RandBits(rand, nBits, true, true)
		if err != nil {
			return nil, err
		}
		prime, err := bigint.ProbablyPrime(rand, q, primeRounds)
		if err != nil {
			return nil, err
		}
		if !prime {
			continue
		}

		for i := 0; i < 4*bits; i++ {
			cand, err := bigint.RandBits(rand, bits, true, true)
			if err != nil {
				return nil, err
			}

			// Shift the candidate onto the largest value not above cand+1
			// that is congruent to 1 mod q, so q divides p-1 by construction.
			rem := new(bigint.Int).Mod(cand, q)
			p = new(bigint.Int).Sub(cand, rem.Sub(rem, one))
			if p.BitLen() < bits {
				continue
			}
			prime, err := bigint.ProbablyPrime(rand, p, primeRounds)
			if err != nil {
				return nil, err
			}
			if prime {
				break searchQ
			}
		}
	}

	// Find a generator of the order-q subgroup.
	e := new(bigint.Int).Sub(p, one)
	e.Quo(e, q)
	h := bigint.New(2)
	for {
		g := new(bigint.Int).Exp(h, e, p)
		if !g.IsOne() {
			return &Params{P: p, Q: q, G: g}, nil
		}
		h.Add(h, one)
	}
}
