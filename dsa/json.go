// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dsa

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/Atomicwallet/bcrypto/bigint"
)

// The JSON form carries each field as the unpadded URL-safe base64 of its
// canonical trimmed big-endian bytes, with kty fixed to "DSA".

// encodeField returns the unpadded URL-safe base64 of the canonical bytes of
// v.
func encodeField(v *bigint.Int) string {
	return base64.RawURLEncoding.EncodeToString(v.Bytes())
}

// decodeField decodes an URL-safe base64 field, tolerating optional padding.
// Characters outside the URL-safe table, including the '+' and '/' of the
// standard alphabet and any whitespace, are rejected.
func decodeField(s string) (*bigint.Int, error) {
	// encoding/base64 skips CR and LF silently, so reject them up front.
	if strings.ContainsAny(s, "\r\n") {
		return nil, decodeError("malformed base64 key field")
	}
	var b []byte
	var err error
	if strings.HasSuffix(s, "=") {
		b, err = base64.URLEncoding.DecodeString(s)
	} else {
		b, err = base64.RawURLEncoding.DecodeString(s)
	}
	if err != nil {
		return nil, decodeError("malformed base64 key field")
	}
	return new(bigint.Int).SetBytes(b), nil
}

// dsaKeyJSON is the wire structure shared by public and private keys; the
// secret exponent is simply absent on a public key.
type dsaKeyJSON struct {
	Kty string `json:"kty"`
	P   string `json:"p"`
	Q   string `json:"q"`
	G   string `json:"g"`
	Y   string `json:"y"`
	X   string `json:"x,omitempty"`
	Ext bool   `json:"ext"`
}

// MarshalJSON implements json.Marshaler.
func (k *PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(&dsaKeyJSON{
		Kty: "DSA",
		P:   encodeField(k.Params.P),
		Q:   encodeField(k.Params.Q),
		G:   encodeField(k.Params.G),
		Y:   encodeField(k.Y),
		Ext: true,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *PublicKey) UnmarshalJSON(data []byte) error {
	fields, err := decodeKeyJSON(data, false)
	if err != nil {
		return err
	}
	k.Params = &Params{P: fields[0], Q: fields[1], G: fields[2]}
	k.Y = fields[3]
	return nil
}

// MarshalJSON implements json.Marshaler.
func (k *PrivateKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(&dsaKeyJSON{
		Kty: "DSA",
		P:   encodeField(k.Params.P),
		Q:   encodeField(k.Params.Q),
		G:   encodeField(k.Params.G),
		Y:   encodeField(k.Y),
		X:   encodeField(k.X),
		Ext: true,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *PrivateKey) UnmarshalJSON(data []byte) error {
	fields, err := decodeKeyJSON(data, true)
	if err != nil {
		return err
	}
	k.Params = &Params{P: fields[0], Q: fields[1], G: fields[2]}
	k.Y = fields[3]
	k.X = fields[4]
	return nil
}

// decodeKeyJSON unmarshals the shared wire structure and decodes the common
// fields in p, q, g, y order, plus the secret exponent when wantSecret is
// set.
func decodeKeyJSON(data []byte, wantSecret bool) ([]*bigint.Int, error) {
	var raw dsaKeyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, decodeError("malformed key JSON")
	}
	if raw.Kty != "DSA" {
		return nil, decodeError("key type is not DSA")
	}

	src := []string{raw.P, raw.Q, raw.G, raw.Y}
	if wantSecret {
		src = append(src, raw.X)
	}
	fields := make([]*bigint.Int, len(src))
	for i, s := range src {
		if s == "" {
			return nil, decodeError("missing key field")
		}
		v, err := decodeField(s)
		if err != nil {
			return nil, err
		}
		fields[i] = v
	}
	return fields, nil
}
