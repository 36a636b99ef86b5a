// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dsa

import (
	"io"

	"github.com/Atomicwallet/bcrypto/bigint"
)

// PublicKey is a DSA public key: a domain parameter set together with the
// public value y = g^x mod p.  The parameter set is referenced, not copied;
// operations treat both as immutable.
type PublicKey struct {
	Params *Params
	Y      *bigint.Int
}

// PrivateKey is a DSA private key: the public half together with the secret
// exponent x.
type PrivateKey struct {
	Params *Params
	Y      *bigint.Int
	X      *bigint.Int
}

// Public returns a public key holding only the public fields of k.
func (k *PrivateKey) Public() *PublicKey {
	return &PublicKey{Params: k.Params, Y: k.Y}
}

// Bits returns the bit length of the prime modulus.
func (k *PublicKey) Bits() int {
	return k.Params.Bits()
}

// Size returns the byte length of a serialized signature component.
func (k *PublicKey) Size() int {
	return k.Params.Size()
}

// Bits returns the bit length of the prime modulus.
func (k *PrivateKey) Bits() int {
	return k.Params.Bits()
}

// Size returns the byte length of a serialized signature component.
func (k *PrivateKey) Size() int {
	return k.Params.Size()
}

// ComputeY returns g^x mod p for the given parameter set and secret
// exponent.
func ComputeY(params *Params, x *bigint.Int) *bigint.Int {
	return new(bigint.Int).Exp(params.G, x, params.P)
}

// NewPublicKey assembles a public key from a parameter set and a public
// value.  Only the shape is checked here; use Validate for the full
// invariants.
func NewPublicKey(params *Params, y *bigint.Int) *PublicKey {
	return &PublicKey{Params: params, Y: y}
}

// NewPrivateKey assembles a private key from a parameter set and a secret
// exponent, deriving the public value.
func NewPrivateKey(params *Params, x *bigint.Int) *PrivateKey {
	return &PrivateKey{Params: params, Y: ComputeY(params, x), X: x}
}

// GenerateKey produces a fresh key pair over an existing parameter set by
// sampling the secret exponent uniformly from [1, q-1].
func GenerateKey(rand io.Reader, params *Params) (*PrivateKey, error) {
	x, err := bigint.RandInt(rand, params.Q)
	if err != nil {
		return nil, err
	}
	return NewPrivateKey(params, x), nil
}

// Generate produces a fresh parameter set of the given modulus size and a
// key pair over it in one step.
func Generate(rand io.Reader, bits int) (*PrivateKey, error) {
	params, err := GenerateParams(rand, bits)
	if err != nil {
		return nil, err
	}
	return GenerateKey(rand, params)
}

// Validate checks the public key invariants: the parameter set itself must
// validate and y must be in (0, p) with order dividing q, that is
// y^q = 1 (mod p).
func (k *PublicKey) Validate(rand io.Reader) error {
	if err := k.Params.Validate(rand); err != nil {
		return err
	}
	if k.Y == nil || k.Y.Sign() <= 0 || k.Y.Cmp(k.Params.P) >= 0 {
		return paramError("public value out of range")
	}
	if !new(bigint.Int).Exp(k.Y, k.Params.Q, k.Params.P).IsOne() {
		return paramError("public value is not in the order-q subgroup")
	}
	return nil
}

// Validate checks the full key invariants: the public half must validate,
// x must be in (0, q), and y must equal g^x mod p.
func (k *PrivateKey) Validate(rand io.Reader) error {
	if err := k.Public().Validate(rand); err != nil {
		return err
	}
	if k.X == nil || k.X.Sign() <= 0 || k.X.Cmp(k.Params.Q) >= 0 {
		return paramError("secret exponent out of range")
	}
	if ComputeY(k.Params, k.X).Cmp(k.Y) != 0 {
		return paramError("public value does not match secret exponent")
	}
	return nil
}
