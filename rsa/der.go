// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rsa

import (
	"io"

	"github.com/Atomicwallet/bcrypto"
	"github.com/Atomicwallet/bcrypto/bigint"
	"github.com/Atomicwallet/bcrypto/der"
)

// The serialized forms follow PKCS#1 (RFC 8017 appendix A.1):
//
//	RSAPublicKey ::= SEQUENCE {
//	    modulus        INTEGER,
//	    publicExponent INTEGER
//	}
//
//	RSAPrivateKey ::= SEQUENCE {
//	    version         INTEGER (0),
//	    modulus         INTEGER,
//	    publicExponent  INTEGER,
//	    privateExponent INTEGER,
//	    prime1          INTEGER,
//	    prime2          INTEGER,
//	    exponent1       INTEGER,
//	    exponent2       INTEGER,
//	    coefficient     INTEGER
//	}

// decodeError creates a bcrypto.Error with the decode error kind.
func decodeError(desc string) error {
	return bcrypto.MakeError(bcrypto.ErrDecode, desc)
}

// Serialize returns the PKCS#1 RSAPublicKey DER encoding of the key.
func (k *PublicKey) Serialize() []byte {
	body := der.AppendInteger(nil, k.N.Bytes())
	body = der.AppendInteger(body, k.E.Bytes())
	return der.AppendSequence(nil, body)
}

// Serialize returns the PKCS#1 RSAPrivateKey DER encoding of the key.
func (k *PrivateKey) Serialize() []byte {
	body := der.AppendInteger(nil, nil) // version 0
	body = der.AppendInteger(body, k.N.Bytes())
	body = der.AppendInteger(body, k.E.Bytes())
	body = der.AppendInteger(body, k.D.Bytes())
	body = der.AppendInteger(body, k.P.Bytes())
	body = der.AppendInteger(body, k.Q.Bytes())
	body = der.AppendInteger(body, k.Dp.Bytes())
	body = der.AppendInteger(body, k.Dq.Bytes())
	body = der.AppendInteger(body, k.Qinv.Bytes())
	return der.AppendSequence(nil, body)
}

// ParsePublicKey parses a PKCS#1 RSAPublicKey structure.  Trailing bytes
// after the outer sequence or inside it are rejected.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	content, rest, err := der.ReadSequence(b)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, decodeError("trailing bytes after public key")
	}

	nBytes, content, err := der.ReadInteger(content)
	if err != nil {
		return nil, err
	}
	eBytes, content, err := der.ReadInteger(content)
	if err != nil {
		return nil, err
	}
	if len(content) != 0 {
		return nil, decodeError("trailing bytes inside public key")
	}

	return &PublicKey{
		N: new(bigint.Int).SetBytes(nBytes),
		E: new(bigint.Int).SetBytes(eBytes),
	}, nil
}

// ParsePrivateKey parses a PKCS#1 RSAPrivateKey structure.  The version field
// must be zero and no trailing bytes are tolerated.  Only the encoding is
// checked here; use Validate for the algebraic key invariants.
func ParsePrivateKey(b []byte) (*PrivateKey, error) {
	content, rest, err := der.ReadSequence(b)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, decodeError("trailing bytes after private key")
	}

	version, content, err := der.ReadInteger(content)
	if err != nil {
		return nil, err
	}
	if len(version) != 0 {
		return nil, decodeError("unsupported private key version")
	}

	fields := make([]*bigint.Int, 8)
	for i := range fields {
		var fb []byte
		fb, content, err = der.ReadInteger(content)
		if err != nil {
			return nil, err
		}
		fields[i] = new(bigint.Int).SetBytes(fb)
	}
	if len(content) != 0 {
		return nil, decodeError("trailing bytes inside private key")
	}

	return &PrivateKey{
		PublicKey: PublicKey{N: fields[0], E: fields[1]},
		D:         fields[2],
		P:         fields[3],
		Q:         fields[4],
		Dp:        fields[5],
		Dq:        fields[6],
		Qinv:      fields[7],
	}, nil
}

// ValidatePublicKeyDER is the raw-bytes variant of PublicKey.Validate: it
// parses a PKCS#1 RSAPublicKey encoding and checks the public key
// invariants.
func ValidatePublicKeyDER(b []byte) error {
	key, err := ParsePublicKey(b)
	if err != nil {
		return err
	}
	return key.Validate()
}

// ValidatePrivateKeyDER is the raw-bytes variant of PrivateKey.Validate: it
// parses a PKCS#1 RSAPrivateKey encoding and checks the full algebraic key
// invariants.
func ValidatePrivateKeyDER(rand io.Reader, b []byte) error {
	key, err := ParsePrivateKey(b)
	if err != nil {
		return err
	}
	return key.Validate(rand)
}
