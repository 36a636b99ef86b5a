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

// The serialized forms follow the OpenSSL DSA key layout:
//
//	DSAPrivateKey ::= SEQUENCE {
//	    version INTEGER (0),
//	    p       INTEGER,
//	    q       INTEGER,
//	    g       INTEGER,
//	    y       INTEGER,
//	    x       INTEGER
//	}
//
//	DSAPublicKey ::= SEQUENCE {
//	    version INTEGER (0),
//	    p       INTEGER,
//	    q       INTEGER,
//	    g       INTEGER,
//	    y       INTEGER
//	}
//
// OpenSSL also emits public keys as a bare INTEGER y with the parameters
// carried out of band; ParsePublicKeyWithParams accepts that form.  The
// SEQUENCE form is the one emitted here.

// decodeError creates a bcrypto.Error with the decode error kind.
func decodeError(desc string) error {
	return bcrypto.MakeError(bcrypto.ErrDecode, desc)
}

// Serialize returns the DER encoding of the private key including its
// parameter set.
func (k *PrivateKey) Serialize() []byte {
	body := der.AppendInteger(nil, nil) // version 0
	body = der.AppendInteger(body, k.Params.P.Bytes())
	body = der.AppendInteger(body, k.Params.Q.Bytes())
	body = der.AppendInteger(body, k.Params.G.Bytes())
	body = der.AppendInteger(body, k.Y.Bytes())
	body = der.AppendInteger(body, k.X.Bytes())
	return der.AppendSequence(nil, body)
}

// Serialize returns the DER encoding of the public key including its
// parameter set.
func (k *PublicKey) Serialize() []byte {
	body := der.AppendInteger(nil, nil) // version 0
	body = der.AppendInteger(body, k.Params.P.Bytes())
	body = der.AppendInteger(body, k.Params.Q.Bytes())
	body = der.AppendInteger(body, k.Params.G.Bytes())
	body = der.AppendInteger(body, k.Y.Bytes())
	return der.AppendSequence(nil, body)
}

// readKeySequence consumes the shared version-plus-fields prefix of the two
// key forms and returns the requested number of integer fields.
func readKeySequence(b []byte, count int) ([]*bigint.Int, error) {
	content, rest, err := der.ReadSequence(b)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, decodeError("trailing bytes after key")
	}

	version, content, err := der.ReadInteger(content)
	if err != nil {
		return nil, err
	}
	if len(version) != 0 {
		return nil, decodeError("unsupported key version")
	}

	fields := make([]*bigint.Int, count)
	for i := range fields {
		var fb []byte
		fb, content, err = der.ReadInteger(content)
		if err != nil {
			return nil, err
		}
		fields[i] = new(bigint.Int).SetBytes(fb)
	}
	if len(content) != 0 {
		return nil, decodeError("trailing bytes inside key")
	}
	return fields, nil
}

// ParsePrivateKey parses the DER private key form.  Only the encoding is
// checked here; use Validate for the algebraic key invariants.
func ParsePrivateKey(b []byte) (*PrivateKey, error) {
	fields, err := readKeySequence(b, 5)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{
		Params: &Params{P: fields[0], Q: fields[1], G: fields[2]},
		Y:      fields[3],
		X:      fields[4],
	}, nil
}

// ParsePublicKey parses the DER public key SEQUENCE form.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	fields, err := readKeySequence(b, 4)
	if err != nil {
		return nil, err
	}
	return &PublicKey{
		Params: &Params{P: fields[0], Q: fields[1], G: fields[2]},
		Y:      fields[3],
	}, nil
}

// ParsePublicKeyWithParams parses a public key given an externally supplied
// parameter set.  Both the SEQUENCE form and the bare INTEGER y form that
// OpenSSL produces for parameterized keys are accepted; when the SEQUENCE
// form carries its own parameters they must match the supplied set.
func ParsePublicKeyWithParams(b []byte, params *Params) (*PublicKey, error) {
	if len(b) > 0 && b[0] == der.TagInteger {
		yBytes, rest, err := der.ReadInteger(b)
		if err != nil {
			return nil, err
		}
		if len(rest) != 0 {
			return nil, decodeError("trailing bytes after key")
		}
		return &PublicKey{Params: params, Y: new(bigint.Int).SetBytes(yBytes)}, nil
	}

	key, err := ParsePublicKey(b)
	if err != nil {
		return nil, err
	}
	if key.Params.P.Cmp(params.P) != 0 || key.Params.Q.Cmp(params.Q) != 0 ||
		key.Params.G.Cmp(params.G) != 0 {
		return nil, decodeError("embedded parameters do not match")
	}
	return key, nil
}

// ValidatePublicKeyDER is the raw-bytes variant of PublicKey.Validate: it
// parses the DER public key form and checks the key invariants.
func ValidatePublicKeyDER(rand io.Reader, b []byte) error {
	key, err := ParsePublicKey(b)
	if err != nil {
		return err
	}
	return key.Validate(rand)
}

// ValidatePrivateKeyDER is the raw-bytes variant of PrivateKey.Validate: it
// parses the DER private key form and checks the full key invariants.
func ValidatePrivateKeyDER(rand io.Reader, b []byte) error {
	key, err := ParsePrivateKey(b)
	if err != nil {
		return err
	}
	return key.Validate(rand)
}
