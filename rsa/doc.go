// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package rsa implements RSA key generation, key validation, and RSASSA-PKCS1
v1.5 signatures as specified by RFC 8017.

Key generation produces keys with the fixed public exponent 65537 at modulus
sizes of 512, 1024, 2048, 4096, or 8192 bits, precomputing the CRT values
(dp, dq, qinv) that accelerate private operations by roughly a factor of
four.  Keys serialize to and from the PKCS#1 RSAPrivateKey and RSAPublicKey
DER structures and to a JSON form with unpadded URL-safe base64 fields.

Signing hashes the message with the supplied bcrypto.Hash, wraps the digest
in its DigestInfo header, applies the type 1 padding, and runs the private
exponentiation through the Chinese Remainder Theorem with base blinding and a
constant-time exponentiation ladder.  Verification rebuilds the expected
encoded message and compares it against the decoded signature representative
in constant time over the full modulus width; it reports a plain boolean and
treats every malformed input as a verification failure rather than an error.
*/
package rsa
