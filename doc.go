// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bcrypto provides public-key cryptography primitives in pure Go.

This module implements RSA signing and verification with PKCS#1 v1.5 padding
and DSA parameter generation, key generation, signing, and verification per
FIPS 186-4, together with the arbitrary-precision integer arithmetic and the
strict DER key serialization those primitives require.  Everything is
implemented from first principles on top of the standard library hash
packages; no native bignum library is used.

The root package holds the pieces shared between the signature schemes:

  - Hash, the digest-algorithm descriptor accepted by the signing code, with
    prebuilt instances for MD5, MD5SHA1, RIPEMD-160, SHA-1, and the SHA-2
    family
  - Error and ErrorKind, the error types used across all subpackages, with
    full errors.Is/errors.As support

The primitives live in sub packages:

  - bigint implements arbitrary-precision integers with Montgomery modular
    exponentiation, a constant-time exponentiation ladder for private-key
    operations, Miller-Rabin primality testing, and bias-free random
    sampling
  - der implements the minimal strict subset of ASN.1 DER (INTEGER and
    SEQUENCE with definite lengths) used by the PKCS#1 and OpenSSL key
    formats
  - rsa implements RSA key generation, key validation, and PKCS#1 v1.5
    signatures with CRT acceleration and base blinding
  - dsa implements DSA domain-parameter generation, key generation, and
    signatures, including validation of externally supplied parameters

Timing discipline: operations that touch RSA private-key material run the
modular exponentiation through a fixed-window ladder whose control flow does
not depend on exponent bits, and blind the base with a fresh random value per
call.  Public-key operations (signature verification, primality testing,
parameter searches) use faster variable-time code paths; inside the bigint
package the constant-time entry points carry an explicit ConstTime suffix and
everything else is variable time.

All operations are synchronous, state-free between calls, and safe for
concurrent use on distinct inputs.  Key objects are treated as immutable by
every operation and may be shared between goroutines for reading.
*/
package bcrypto
