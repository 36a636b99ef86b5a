// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dsa

import (
	"io"

	"github.com/Atomicwallet/bcrypto"
	"github.com/Atomicwallet/bcrypto/bigint"
	"github.com/Atomicwallet/bcrypto/der"
)

// maxSignAttempts bounds the nonce retry loop.  A zero r or s occurs with
// probability around 2^-N per attempt, so hitting the bound with honest
// randomness indicates a broken entropy source rather than bad luck.
const maxSignAttempts = 10

// Signature is a DSA signature pair (r, s).
type Signature struct {
	R *bigint.Int
	S *bigint.Int
}

// NewSignature instantiates a new signature given some r and s values.
func NewSignature(r, s *bigint.Int) *Signature {
	return &Signature{R: r, S: s}
}

// IsEqual compares this Signature instance to the one passed, returning true
// if both Signatures are equivalent.
func (sig *Signature) IsEqual(otherSig *Signature) bool {
	return sig.R.Cmp(otherSig.R) == 0 && sig.S.Cmp(otherSig.S) == 0
}

// Serialize returns the fixed-width encoding r || s with each component left
// padded with zero bytes to the byte length of the subgroup order.
func (sig *Signature) Serialize(qSize int) []byte {
	out := make([]byte, 2*qSize)
	sig.R.FillBytes(out[:qSize])
	sig.S.FillBytes(out[qSize:])
	return out
}

// ParseSignature parses the fixed-width signature encoding produced by
// Serialize.  The input must be exactly twice the component width.
func ParseSignature(b []byte, qSize int) (*Signature, error) {
	if len(b) != 2*qSize {
		return nil, bcrypto.MakeError(bcrypto.ErrDecode,
			"signature has wrong length")
	}
	return &Signature{
		R: new(bigint.Int).SetBytes(b[:qSize]),
		S: new(bigint.Int).SetBytes(b[qSize:]),
	}, nil
}

// SerializeDER returns the signature as a DER SEQUENCE of the two INTEGER
// components, the form used by OpenSSL and most certificate ecosystems in
// place of the raw fixed-width pair.
func (sig *Signature) SerializeDER() []byte {
	body := der.AppendInteger(nil, sig.R.Bytes())
	body = der.AppendInteger(body, sig.S.Bytes())
	return der.AppendSequence(nil, body)
}

// ParseDERSignature parses a signature in the DER SEQUENCE form.  The usual
// strictness applies: trailing bytes, non-minimal encodings, and negative
// components are all rejected.
func ParseDERSignature(b []byte) (*Signature, error) {
	content, rest, err := der.ReadSequence(b)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, bcrypto.MakeError(bcrypto.ErrDecode,
			"trailing bytes after signature")
	}
	rBytes, content, err := der.ReadInteger(content)
	if err != nil {
		return nil, err
	}
	sBytes, content, err := der.ReadInteger(content)
	if err != nil {
		return nil, err
	}
	if len(content) != 0 {
		return nil, bcrypto.MakeError(bcrypto.ErrDecode,
			"trailing bytes inside signature")
	}
	return &Signature{
		R: new(bigint.Int).SetBytes(rBytes),
		S: new(bigint.Int).SetBytes(sBytes),
	}, nil
}

// reduceMessage converts a pre-hashed message into the integer z.  The
// subgroup order must span a whole number of bytes; longer digests are
// truncated to the leftmost q-size bytes.
//
// The message is deliberately NOT hashed here: the caller chooses the digest
// algorithm and hashes; only the truncation happens here.  This is the
// low-level signing interface; pairing it with a digest wrapper is the
// caller's concern.
func reduceMessage(params *Params, msg []byte) (*bigint.Int, error) {
	if params.Q.BitLen()%8 != 0 {
		return nil, paramError("subgroup order is not a whole number of bytes")
	}
	if qSize := params.Size(); len(msg) > qSize {
		msg = msg[:qSize]
	}
	return new(bigint.Int).SetBytes(msg), nil
}

// Sign produces a DSA signature over the pre-hashed message using the given
// key.  A fresh nonce is drawn per attempt; the rare attempts that produce a
// zero component are retried up to ten times before signing is declared
// failed, which with a functioning entropy source never happens in practice.
func Sign(rand io.Reader, key *PrivateKey, msg []byte) (*Signature, error) {
	params := key.Params
	z, err := reduceMessage(params, msg)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxSignAttempts; attempt++ {
		// Draw the nonce k uniformly from [1, q-1].
		k, err := bigint.RandInt(rand, params.Q)
		if err != nil {
			return nil, err
		}

		// r = (g^k mod p) mod q
		r := new(bigint.Int).Exp(params.G, k, params.P)
		r.Mod(r, params.Q)
		if r.IsZero() {
			continue
		}

		// s = k^-1 * (z + x*r) mod q.  The inverse always exists since q is
		// prime and 0 < k < q.
		s := new(bigint.Int).Mul(key.X, r)
		s.Add(s, z)
		s.Mod(s, params.Q)
		kInv := new(bigint.Int).ModInverse(k, params.Q)
		s.Mul(s, kInv)
		s.Mod(s, params.Q)
		k.Zero()
		kInv.Zero()
		if s.IsZero() {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
	return nil, bcrypto.MakeError(bcrypto.ErrSignatureFailed,
		"signing failed after retry budget")
}

// Verify reports whether sig is a valid DSA signature over the pre-hashed
// message by the holder of the given public key.
//
// It never returns an error: out-of-range components, malformed parameters,
// and mismatches all simply yield false.
func Verify(key *PublicKey, msg []byte, sig *Signature) bool {
	params := key.Params
	if params == nil || params.P == nil || params.Q == nil || params.G == nil ||
		key.Y == nil || params.P.Sign() <= 0 {
		return false
	}
	if sig.R == nil || sig.S == nil {
		return false
	}

	// 0 < r < q and 0 < s < q
	if sig.R.Sign() <= 0 || sig.R.Cmp(params.Q) >= 0 {
		return false
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(params.Q) >= 0 {
		return false
	}

	z, err := reduceMessage(params, msg)
	if err != nil {
		return false
	}

	// w = s^-1 mod q
	w := new(bigint.Int).ModInverse(sig.S, params.Q)
	if w == nil {
		return false
	}

	// u1 = z*w mod q, u2 = r*w mod q
	u1 := new(bigint.Int).Mul(z, w)
	u1.Mod(u1, params.Q)
	u2 := new(bigint.Int).Mul(sig.R, w)
	u2.Mod(u2, params.Q)

	// v = (g^u1 * y^u2 mod p) mod q
	v := new(bigint.Int).Exp(params.G, u1, params.P)
	yu2 := new(bigint.Int).Exp(key.Y, u2, params.P)
	v.Mul(v, yu2)
	v.Mod(v, params.P)
	v.Mod(v, params.Q)

	return v.Cmp(sig.R) == 0
}

// SignBytes is the raw-bytes variant of Sign: it returns the fixed-width
// r || s encoding directly.
func SignBytes(rand io.Reader, key *PrivateKey, msg []byte) ([]byte, error) {
	sig, err := Sign(rand, key, msg)
	if err != nil {
		return nil, err
	}
	return sig.Serialize(key.Params.Size()), nil
}

// VerifyBytes is the raw-bytes variant of Verify: the signature is supplied
// in the fixed-width r || s encoding.  As with Verify, every failure mode
// yields false.
func VerifyBytes(key *PublicKey, msg, sig []byte) bool {
	parsed, err := ParseSignature(sig, key.Params.Size())
	if err != nil {
		return false
	}
	return Verify(key, msg, parsed)
}
