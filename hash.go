// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bcrypto

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160"
)

// Hash describes a message digest algorithm to the signing code.  The signing
// and verifying functions never hash data themselves beyond invoking Sum, so
// any algorithm can be plugged in as long as Sum returns exactly Size bytes.
type Hash struct {
	// Name uniquely identifies the algorithm.  The RSA PKCS#1 v1.5 code uses
	// it to select the DigestInfo prefix for the encoded message.
	Name string

	// Size is the digest length in bytes.
	Size int

	// Sum returns the digest of the provided message.
	Sum func(msg []byte) []byte
}

// Standard hash instances accepted by the signing code.
var (
	// MD5 is the MD5 hash as defined in RFC 1321.  It is broken and provided
	// only for compatibility with legacy protocols.
	MD5 = Hash{Name: "MD5", Size: md5.Size, Sum: func(msg []byte) []byte {
		sum := md5.Sum(msg)
		return sum[:]
	}}

	// MD5SHA1 is the concatenation of the MD5 and SHA-1 digests used in
	// TLS 1.0 and 1.1 client certificate verification.
	MD5SHA1 = Hash{Name: "MD5SHA1", Size: md5.Size + sha1.Size, Sum: func(msg []byte) []byte {
		sum := make([]byte, 0, md5.Size+sha1.Size)
		m := md5.Sum(msg)
		s := sha1.Sum(msg)
		sum = append(sum, m[:]...)
		return append(sum, s[:]...)
	}}

	// RIPEMD160 is the RIPEMD-160 hash.
	RIPEMD160 = Hash{Name: "RIPEMD160", Size: ripemd160.Size, Sum: func(msg []byte) []byte {
		h := ripemd160.New()
		h.Write(msg)
		return h.Sum(nil)
	}}

	// SHA1 is the SHA-1 hash as defined in FIPS 180-4.
	SHA1 = Hash{Name: "SHA1", Size: sha1.Size, Sum: func(msg []byte) []byte {
		sum := sha1.Sum(msg)
		return sum[:]
	}}

	// SHA224 is the SHA-224 hash as defined in FIPS 180-4.
	SHA224 = Hash{Name: "SHA224", Size: sha256.Size224, Sum: func(msg []byte) []byte {
		sum := sha256.Sum224(msg)
		return sum[:]
	}}

	// SHA256 is the SHA-256 hash as defined in FIPS 180-4.
	SHA256 = Hash{Name: "SHA256", Size: sha256.Size, Sum: func(msg []byte) []byte {
		sum := sha256.Sum256(msg)
		return sum[:]
	}}

	// SHA384 is the SHA-384 hash as defined in FIPS 180-4.
	SHA384 = Hash{Name: "SHA384", Size: sha512.Size384, Sum: func(msg []byte) []byte {
		sum := sha512.Sum384(msg)
		return sum[:]
	}}

	// SHA512 is the SHA-512 hash as defined in FIPS 180-4.
	SHA512 = Hash{Name: "SHA512", Size: sha512.Size, Sum: func(msg []byte) []byte {
		sum := sha512.Sum512(msg)
		return sum[:]
	}}
)
