// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package der

import (
	"fmt"

	"github.com/Atomicwallet/bcrypto"
)

// References:
//   [ISO/IEC 8825-1]: Information technology — ASN.1 encoding rules:
//     Specification of Basic Encoding Rules (BER), Canonical Encoding Rules
//     (CER) and Distinguished Encoding Rules (DER)

const (
	// TagInteger is the ASN.1 identifier for an integer per section 8.3 of
	// [ISO/IEC 8825-1].
	TagInteger = 0x02

	// TagSequence is the ASN.1 identifier for a constructed sequence per
	// section 8.9 of [ISO/IEC 8825-1].
	TagSequence = 0x30
)

// decodeError creates a bcrypto.Error with the decode error kind.
func decodeError(desc string) error {
	return bcrypto.MakeError(bcrypto.ErrDecode, desc)
}

// appendHeader appends a tag byte and a definite length to dst.  Lengths up
// to 127 use the short form; anything longer uses the long form with the
// minimum number of length octets, as DER demands.
func appendHeader(dst []byte, tag byte, length int) []byte {
	dst = append(dst, tag)
	if length < 0x80 {
		return append(dst, byte(length))
	}
	var enc [8]byte
	n := 0
	for v := length; v > 0; v >>= 8 {
		n++
	}
	for i := 0; i < n; i++ {
		enc[n-1-i] = byte(length >> (8 * uint(i)))
	}
	dst = append(dst, 0x80|byte(n))
	return append(dst, enc[:n]...)
}

// AppendInteger appends the DER encoding of a nonnegative integer given as a
// canonical big-endian magnitude with no leading zero bytes.  An empty slice
// encodes zero.  A leading zero byte is inserted when the top bit of the
// magnitude is set so the value is not interpreted as negative.
func AppendInteger(dst, val []byte) []byte {
	pad := len(val) == 0 || val[0]&0x80 != 0
	length := len(val)
	if pad {
		length++
	}
	dst = appendHeader(dst, TagInteger, length)
	if pad {
		dst = append(dst, 0x00)
	}
	return append(dst, val...)
}

// AppendSequence appends a sequence header for the given body followed by the
// body itself.
func AppendSequence(dst, body []byte) []byte {
	dst = appendHeader(dst, TagSequence, len(body))
	return append(dst, body...)
}

// readHeader consumes a tag and definite length from b, enforcing the DER
// minimality rules: no indefinite lengths, the long form only for lengths
// above 127, no superfluous leading zero length octets, and the content must
// lie fully within the input.
func readHeader(b []byte, tag byte) (content, rest []byte, err error) {
	if len(b) < 2 {
		return nil, nil, decodeError("truncated element header")
	}
	if b[0] != tag {
		str := fmt.Sprintf("unexpected tag: %#x != %#x", b[0], tag)
		return nil, nil, decodeError(str)
	}

	var length, hdrLen int
	switch l := b[1]; {
	case l < 0x80:
		length = int(l)
		hdrLen = 2
	case l == 0x80:
		return nil, nil, decodeError("indefinite length is not DER")
	default:
		n := int(l & 0x7f)
		if n > 4 {
			return nil, nil, decodeError("length too large")
		}
		if len(b) < 2+n {
			return nil, nil, decodeError("truncated long-form length")
		}
		if b[2] == 0 {
			return nil, nil, decodeError("non-minimal length encoding")
		}
		for _, v := range b[2 : 2+n] {
			length = length<<8 | int(v)
		}
		if length < 0x80 || (n > 1 && length < 1<<(8*uint(n-1))) {
			return nil, nil, decodeError("non-minimal length encoding")
		}
		hdrLen = 2 + n
	}
	if length > len(b)-hdrLen {
		return nil, nil, decodeError("element length exceeds input")
	}
	return b[hdrLen : hdrLen+length], b[hdrLen+length:], nil
}

// ReadSequence consumes a sequence from the front of b and returns its
// content along with the remaining bytes.
func ReadSequence(b []byte) (content, rest []byte, err error) {
	return readHeader(b, TagSequence)
}

// ReadInteger consumes a nonnegative integer from the front of b and returns
// its canonical magnitude (leading sign padding stripped) along with the
// remaining bytes.  Negative values, empty contents, and non-minimal
// encodings are rejected.
func ReadInteger(b []byte) (val, rest []byte, err error) {
	content, rest, err := readHeader(b, TagInteger)
	if err != nil {
		return nil, nil, err
	}
	if len(content) == 0 {
		return nil, nil, decodeError("zero-length integer")
	}
	if content[0]&0x80 != 0 {
		return nil, nil, decodeError("negative integer")
	}
	if len(content) > 1 && content[0] == 0x00 && content[1]&0x80 == 0 {
		return nil, nil, decodeError("non-minimal integer encoding")
	}
	if content[0] == 0x00 {
		content = content[1:]
	}
	return content, rest, nil
}
