// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package dsa implements the Digital Signature Algorithm per FIPS 186-4:
domain parameter generation, key generation, signing, and verification,
together with validation of externally supplied parameters and keys.

Parameter generation accepts modulus sizes from 1024 to 3072 bits, pairing
them with a 160-bit subgroup order below 2048 bits and a 256-bit order at
2048 bits and above.  Validation accepts the FIPS 186-4 (L, N) combinations
(1024, 160), (2048, 224), (2048, 256), and (3072, 256).

Signing operates on pre-hashed input: the caller hashes the message with a
digest of their choice and passes the digest bytes, which are truncated to
the byte length of the subgroup order.  This is the low-level interface; no
digest selection or hashing happens inside this package.  Signatures
serialize to a fixed-width r || s pair, each component left padded to the
subgroup order size, with a DER SEQUENCE adapter available for ecosystems
that expect the ASN.1 form.

Keys serialize to the OpenSSL DSA DER layout (a version-prefixed integer
sequence) and to a JSON form with unpadded URL-safe base64 fields.  The bare
INTEGER public key form OpenSSL emits for parameterized keys is accepted on
decode when the parameters are supplied out of band.
*/
package dsa
