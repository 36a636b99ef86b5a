// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rsa

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/Atomicwallet/bcrypto/bigint"
)

// The JSON form mirrors the JSON Web Key layout for RSA keys: every numeric
// field is the unpadded URL-safe base64 of its canonical trimmed big-endian
// bytes under the well-known single letter names, with kty fixed to "RSA".

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

// rsaKeyJSON is the wire structure shared by public and private keys; private
// fields are simply absent on a public key.
type rsaKeyJSON struct {
	Kty string `json:"kty"`
	N   string `json:"n"`
	E   string `json:"e"`
	D   string `json:"d,omitempty"`
	P   string `json:"p,omitempty"`
	Q   string `json:"q,omitempty"`
	Dp  string `json:"dp,omitempty"`
	Dq  string `json:"dq,omitempty"`
	Qi  string `json:"qi,omitempty"`
	Ext bool   `json:"ext"`
}

// MarshalJSON implements json.Marshaler.
func (k *PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(&rsaKeyJSON{
		Kty: "RSA",
		N:   encodeField(k.N),
		E:   encodeField(k.E),
		Ext: true,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *PublicKey) UnmarshalJSON(data []byte) error {
	var raw rsaKeyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return decodeError("malformed key JSON")
	}
	if raw.Kty != "RSA" {
		return decodeError("key type is not RSA")
	}
	if raw.N == "" || raw.E == "" {
		return decodeError("missing public key field")
	}
	n, err := decodeField(raw.N)
	if err != nil {
		return err
	}
	e, err := decodeField(raw.E)
	if err != nil {
		return err
	}
	k.N, k.E = n, e
	return nil
}

// MarshalJSON implements json.Marshaler.
func (k *PrivateKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(&rsaKeyJSON{
		Kty: "RSA",
		N:   encodeField(k.N),
		E:   encodeField(k.E),
		D:   encodeField(k.D),
		P:   encodeField(k.P),
		Q:   encodeField(k.Q),
		Dp:  encodeField(k.Dp),
		Dq:  encodeField(k.Dq),
		Qi:  encodeField(k.Qinv),
		Ext: true,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *PrivateKey) UnmarshalJSON(data []byte) error {
	var raw rsaKeyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return decodeError("malformed key JSON")
	}
	if raw.Kty != "RSA" {
		return decodeError("key type is not RSA")
	}

	fields := []struct {
		src string
		dst **bigint.Int
	}{
		{raw.N, &k.N}, {raw.E, &k.E}, {raw.D, &k.D}, {raw.P, &k.P},
		{raw.Q, &k.Q}, {raw.Dp, &k.Dp}, {raw.Dq, &k.Dq}, {raw.Qi, &k.Qinv},
	}
	for _, f := range fields {
		if f.src == "" {
			return decodeError("missing private key field")
		}
		v, err := decodeField(f.src)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}
