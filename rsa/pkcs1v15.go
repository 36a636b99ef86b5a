// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rsa

import (
	"crypto/subtle"
	"io"

	"github.com/Atomicwallet/bcrypto"
	"github.com/Atomicwallet/bcrypto/bigint"
)

// References:
//   [RFC 8017]: PKCS #1: RSA Cryptography Specifications Version 2.2

// digestInfoPrefixes maps a hash name to the DER encoded DigestInfo header
// that precedes the digest inside a PKCS#1 v1.5 encoded message, per section
// 9.2 of [RFC 8017].  MD5SHA1 is the TLS 1.0/1.1 special case signed with no
// header at all.
var digestInfoPrefixes = map[string][]byte{
	"MD5":       {0x30, 0x20, 0x30, 0x0c, 0x06, 0x08, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x05, 0x05, 0x00, 0x04, 0x10},
	"MD5SHA1":   {},
	"RIPEMD160": {0x30, 0x21, 0x30, 0x09, 0x06, 0x05, 0x2b, 0x24, 0x03, 0x02, 0x01, 0x05, 0x00, 0x04, 0x14},
	"SHA1":      {0x30, 0x21, 0x30, 0x09, 0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02, 0x1a, 0x05, 0x00, 0x04, 0x14},
	"SHA224":    {0x30, 0x2d, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x04, 0x05, 0x00, 0x04, 0x1c},
	"SHA256":    {0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00, 0x04, 0x20},
	"SHA384":    {0x30, 0x41, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x02, 0x05, 0x00, 0x04, 0x30},
	"SHA512":    {0x30, 0x51, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03, 0x05, 0x00, 0x04, 0x40},
}

// encodeMessage builds the PKCS#1 v1.5 encoded message
// 0x00 || 0x01 || PS || 0x00 || DigestInfo || H(msg) of exactly k bytes.
func encodeMessage(hash bcrypto.Hash, msg []byte, k int) ([]byte, error) {
	prefix, ok := digestInfoPrefixes[hash.Name]
	if !ok {
		return nil, bcrypto.MakeError(bcrypto.ErrInvalidParameter,
			"unsupported hash: "+hash.Name)
	}
	digest := hash.Sum(msg)

	tLen := len(prefix) + len(digest)
	if tLen > k-11 {
		return nil, bcrypto.MakeError(bcrypto.ErrMessageTooLong,
			"digest info does not fit in modulus")
	}

	em := make([]byte, k)
	em[1] = 0x01
	for i := 2; i < k-tLen-1; i++ {
		em[i] = 0xff
	}
	copy(em[k-tLen:], prefix)
	copy(em[k-len(digest):], digest)
	return em, nil
}

// signRaw computes m^d mod n through the CRT with base blinding.
//
// A fresh blinding value r is drawn per call and the input is replaced by
// m * r^e mod n before the private exponentiations run, so their timing is
// uncorrelated with the caller-visible input.  The exponentiations modulo the
// two prime factors go through the constant-time ladder.  Intermediates
// derived from the blinded message are scrubbed before returning.
func signRaw(rand io.Reader, key *PrivateKey, m *bigint.Int) (*bigint.Int, error) {
	n := key.N

	// Blinding factor and its inverse.  A random value below n lacks an
	// inverse only when it shares a factor with n, which for a well-formed
	// key means it reveals the factorization; drawing again is correct either
	// way.
	var r, rInv *bigint.Int
	for {
		var err error
		r, err = bigint.RandInt(rand, n)
		if err != nil {
			return nil, err
		}
		rInv = new(bigint.Int).ModInverse(r, n)
		if rInv != nil {
			break
		}
	}

	blind := new(bigint.Int).Exp(r, key.E, n)
	blind.Mul(blind, m)
	blind.Mod(blind, n)

	// CRT: s1 = c^dp mod p, s2 = c^dq mod q, then recombine through Garner's
	// formula s = s2 + q * (qinv * (s1 - s2) mod p).
	s1 := new(bigint.Int).ExpConstTime(blind, key.Dp, key.P)
	s2 := new(bigint.Int).ExpConstTime(blind, key.Dq, key.Q)

	h := new(bigint.Int).Sub(s1, s2)
	h.Mul(h, key.Qinv)
	h.Mod(h, key.P)

	s := new(bigint.Int).Mul(h, key.Q)
	s.Add(s, s2)

	// Unblind.
	s.Mul(s, rInv)
	s.Mod(s, n)

	blind.Zero()
	s1.Zero()
	s2.Zero()
	h.Zero()
	r.Zero()
	rInv.Zero()
	return s, nil
}

// Sign produces a PKCS#1 v1.5 signature over msg with the given hash.  The
// message itself is hashed here; callers pass the raw message, not a digest.
// The signature is always exactly key.Size() bytes.
func Sign(rand io.Reader, key *PrivateKey, hash bcrypto.Hash, msg []byte) ([]byte, error) {
	k := key.Size()
	em, err := encodeMessage(hash, msg, k)
	if err != nil {
		return nil, err
	}

	m := new(bigint.Int).SetBytes(em)
	s, err := signRaw(rand, key, m)
	if err != nil {
		return nil, err
	}
	sig := s.FillBytes(make([]byte, k))
	s.Zero()
	return sig, nil
}

// Verify reports whether sig is a valid PKCS#1 v1.5 signature over msg by the
// holder of the given public key.
//
// It never returns an error: any malformed input, wrong length, out-of-range
// value, or mismatch simply yields false.  The decoded message representative
// is compared against the locally reconstructed encoding with a byte-wise
// constant-time comparison over the full modulus width, so padding failures
// and digest mismatches are indistinguishable.  The signed payload is never
// parsed as ASN.1.
func Verify(key *PublicKey, hash bcrypto.Hash, msg, sig []byte) bool {
	if key.Validate() != nil {
		return false
	}
	k := key.Size()
	if len(sig) != k {
		return false
	}

	s := new(bigint.Int).SetBytes(sig)
	if s.Cmp(key.N) >= 0 {
		return false
	}

	expected, err := encodeMessage(hash, msg, k)
	if err != nil {
		return false
	}

	em := new(bigint.Int).Exp(s, key.E, key.N).FillBytes(make([]byte, k))
	return subtle.ConstantTimeCompare(em, expected) == 1
}

// SignDER is the raw-bytes variant of Sign: the key is supplied as a PKCS#1
// RSAPrivateKey DER encoding.
func SignDER(rand io.Reader, keyDER []byte, hash bcrypto.Hash, msg []byte) ([]byte, error) {
	key, err := ParsePrivateKey(keyDER)
	if err != nil {
		return nil, err
	}
	return Sign(rand, key, hash, msg)
}

// VerifyDER is the raw-bytes variant of Verify: the key is supplied as a
// PKCS#1 RSAPublicKey DER encoding.  As with Verify, every failure mode
// yields false.
func VerifyDER(keyDER []byte, hash bcrypto.Hash, msg, sig []byte) bool {
	key, err := ParsePublicKey(keyDER)
	if err != nil {
		return false
	}
	return Verify(key, hash, msg, sig)
}
