// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package der implements the minimal subset of the ASN.1 Distinguished Encoding
Rules needed for PKCS#1 and OpenSSL style key serialization: nonnegative
INTEGER values and SEQUENCE frames with definite lengths.

The decoder is strict.  Indefinite lengths, non-minimal length encodings,
negative integers, zero-length integers, and integers carrying superfluous
sign padding are all rejected with a bcrypto.ErrDecode error.  The encoder
only produces canonical DER, so any value that decodes successfully re-encodes
to the identical bytes.
*/
package der
