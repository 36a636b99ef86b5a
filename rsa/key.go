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

const (
	// minModulusBits is the smallest modulus size accepted by key validation
	// and the smallest size GenerateKey will produce.
	minModulusBits = 512

	// maxExponentBits bounds the public exponent: e must be below 2^33.
	// Everything in common use is 65537; the bound exists to reject absurd
	// exponents that would make verification quadratic in the key size.
	maxExponentBits = 33

	// validateRounds is the Miller-Rabin round count used when validating the
	// primality of key factors.
	validateRounds = 64
)

// PublicKey is an RSA public key consisting of the modulus and the public
// exponent.  Operations treat the key as immutable, so a single key may be
// shared between goroutines for reading.
type PublicKey struct {
	N *bigint.Int // modulus
	E *bigint.Int // public exponent
}

// Bits returns the bit length of the modulus.
func (k *PublicKey) Bits() int {
	return k.N.BitLen()
}

// Size returns the modulus size in bytes.  Raw signatures are exactly this
// long.
func (k *PublicKey) Size() int {
	return (k.N.BitLen() + 7) / 8
}

// Validate performs the structural checks possible with only the public half
// of a key: the modulus must be odd and at least the minimum size, and the
// exponent must be an odd value in [3, 2^33) smaller than the modulus.
func (k *PublicKey) Validate() error {
	if k.N == nil || k.E == nil {
		return keyError("missing public key field")
	}
	if k.N.BitLen() < minModulusBits {
		str := fmt.Sprintf("modulus too small: %d < %d bits", k.N.BitLen(),
			minModulusBits)
		return keyError(str)
	}
	if !k.N.IsOdd() {
		return keyError("modulus is even")
	}
	if !k.E.IsOdd() {
		return keyError("public exponent is even")
	}
	if k.E.BitLen() < 2 || k.E.BitLen() > maxExponentBits {
		return keyError("public exponent out of range")
	}
	if k.E.Cmp(k.N) >= 0 {
		return keyError("public exponent not below modulus")
	}
	return nil
}

// PrivateKey is an RSA private key carrying the public half, the private
// exponent, the prime factorization of the modulus, and the precomputed CRT
// values used to accelerate private operations.
type PrivateKey struct {
	PublicKey
	D    *bigint.Int // private exponent
	P    *bigint.Int // first prime factor
	Q    *bigint.Int // second prime factor
	Dp   *bigint.Int // d mod (p-1)
	Dq   *bigint.Int // d mod (q-1)
	Qinv *bigint.Int // q^-1 mod p
}

// Public returns a public key holding only the public fields of k.
func (k *PrivateKey) Public() *PublicKey {
	return &PublicKey{N: k.N, E: k.E}
}

// Validate checks the algebraic consistency of the whole key: both factors
// must be (probably) prime and distinct, their product must be the modulus,
// the CRT values must match the private exponent, and e*d must be congruent
// to 1 modulo lcm(p-1, q-1).  The entropy source feeds the Miller-Rabin base
// selection.
func (k *PrivateKey) Validate(rand io.Reader) error {
	if err := k.PublicKey.Validate(); err != nil {
		return err
	}
	if k.D == nil || k.P == nil || k.Q == nil || k.Dp == nil || k.Dq == nil ||
		k.Qinv == nil {
		return keyError("missing private key field")
	}

	if k.P.Cmp(k.Q) == 0 {
		return keyError("prime factors are equal")
	}
	for _, f := range []*bigint.Int{k.P, k.Q} {
		prime, err := bigint.ProbablyPrime(rand, f, validateRounds)
		if err != nil {
			return err
		}
		if !prime {
			return keyError("factor is composite")
		}
	}

	n := new(bigint.Int).Mul(k.P, k.Q)
	if n.Cmp(k.N) != 0 {
		return keyError("modulus does not match factors")
	}

	one := bigint.New(1)
	pm1 := new(bigint.Int).Sub(k.P, one)
	qm1 := new(bigint.Int).Sub(k.Q, one)

	if new(bigint.Int).Mod(k.D, pm1).Cmp(k.Dp) != 0 {
		return keyError("dp does not match d mod (p-1)")
	}
	if new(bigint.Int).Mod(k.D, qm1).Cmp(k.Dq) != 0 {
		return keyError("dq does not match d mod (q-1)")
	}

	qiq := new(bigint.Int).Mul(k.Qinv, k.Q)
	if !qiq.Mod(qiq, k.P).IsOne() {
		return keyError("qinv is not the inverse of q mod p")
	}

	// e*d = 1 (mod lcm(p-1, q-1))
	lambda := new(bigint.Int).Mul(pm1, qm1)
	lambda.Quo(lambda, new(bigint.Int).GCD(pm1, qm1))
	ed := new(bigint.Int).Mul(k.E, k.D)
	if !ed.Mod(ed, lambda).IsOne() {
		return keyError("e*d is not 1 mod lcm(p-1, q-1)")
	}
	return nil
}

// keyError creates a bcrypto.Error with the invalid key kind.
func keyError(desc string) error {
	return bcrypto.MakeError(bcrypto.ErrInvalidKey, desc)
}
