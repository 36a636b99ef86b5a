// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dsa

import (
	"encoding/hex"

	"github.com/Atomicwallet/bcrypto/bigint"
)

// hexToInt converts the passed hex string into a bigint and will panic if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.  It will only (and must only) be
// called with hard-coded values.
func hexToInt(s string) *bigint.Int {
	v, ok := new(bigint.Int).SetHex(s)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return v
}

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.  It will only (and must only) be
// called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// testParams2048 returns a fixed, externally generated L=2048, N=256
// parameter set used by the known-answer tests.
func testParams2048() *Params {
	return &Params{
		P: hexToInt("8946d9b22bb90970db2c8be2f9810e7b63fc25815d590fe2776be9a2f539c9a5" +
			"6094275c6bc088ff52280e7b0a59909a77d708308c5c3bf747659b8ec1a8b9e5" +
			"b5859ddccc4fe7e75283b06a2c27245b2e41753dceef7277197b4088fba8899e" +
			"f8b628bc6f3d029608158e14b35ca36132164d08fe5fee75b684c5b8e4c10130" +
			"14ad48a1d0da7393f51f96e3c4878dd5ab0b738e50981ec6a8a76a9d340d4c3b" +
			"06b6e568704d12bb5bed972f60b1637c411491de63c68640cde8fb8706001445" +
			"224b7a1b8182a613e1d3b1c876bb9daefe607ee4f999517a1793d5a29af890b4" +
			"b12cc2a432f68dd6175ea6d4385edbf5cc9ae9d5d65503e41fc0b5e7650ca87d"),
		Q: hexToInt("a63b070783c94bba8ba694cb4d053e10db2a0c86442914831a7dbf7db32a682d"),
		G: hexToInt("c28619028cf2c0b7590103e8e75195b38dc5cac1b6fb5cd426f8c7f5fe0cad92" +
			"03eface7d0b5f529c15a1fa52b1220db7cea6473d5e3a8b91b927737af1fba6b" +
			"f0451b8e5fa0d504b50baf485b8d26e13c2ada39c7712749bd483def0a8db557" +
			"ec245fdcfb53ead1774c15b7477d67d8ab645491ff8829f157e4d5b8fe941f14" +
			"c723dafe97f63b1f2306912e6c4b57f09e3c97fa0477d24ab19a0138c433673e" +
			"4e41ae18e81a1da5a5ea6f14a4e04c22ddb10fa65c4dd711f3757d51131b296e" +
			"8564c76e3b6b23461c212cf483a909ecb827a298e7a9d3b7137eaff6991d3dbc" +
			"c1187a46d82521ef3698ba214e0cafc9268d62090252d7c9356e849661a1234"),
	}
}

// testKey2048 returns a fixed key pair over testParams2048.
func testKey2048() *PrivateKey {
	return &PrivateKey{
		Params: testParams2048(),
		Y:      hexToInt("3e5751e5ca8977f8961c7fee5d88ddee7e415cb264a07a18b18a1339c0ee4304" +
			"43ec55da5981473e4912386d7511918e2cf88ecba53843ed2367e13a301550ce" +
			"c6db6ae6b3984c3d0061c90c8f1f475a38bcb98b5d6edb21c13ad42f253093c2" +
			"8f83e45e6423b760204c2b44f97b63d83ba8b9d47587275f0d65cae3458f3b3b" +
			"975718c6dfe614aa5cae41fb3499d38d5f3d457873fd345edf53f50f54de9318" +
			"4ad8a78ba51139d4f94fb1867a7f6c65550b518746deb4c942c9d6883d7f7f10" +
			"cadad8ee7b2265b9feb05ea51747aa774bd5b7548cf81db33c1f2b8ce56a55dc" +
			"df5f5a997868b199ed8c4cb462b7f9feed3fc980196ee9e7a3e5dbc68c6ecbca"),
		X:      hexToInt("241cec29c8bf10e9af7ce187587bdb6c62f8079c647261cfd70ccf26eab9cb9a"),
	}
}

// Known-answer signing inputs over the fixed key, computed with an
// independent implementation: signing the SHA-256 digest of the ASCII
// message "sample message for dsa" with the fixed nonce must reproduce
// exactly this (r, s) pair.
var (
	knownNonce = hexToBytes("a2bb8d5e1adbb78e29a3389907a77261d37d8b1db305b30bfd82abc181f8dc8c")
	knownR     = hexToInt("79df76380617f5f33d3f29e97f4077302949ca7c4efda95aa40a5a75d59533af")
	knownS     = hexToInt("47472cac31c6195dd16651e902368f7beadf3e3c7f3f247ff281d262dd39c1ce")
)

// testParams1024 returns a fixed, externally generated L=1024, N=160
// parameter set for the cheaper round-trip tests.
func testParams1024() *Params {
	return &Params{
		P: hexToInt("fdd1a18c500ef6d55a78a9ab1cc96b8724ff1b7c2dbb1e454bd8b8f720227f0f" +
			"40828ac6f5c327bc752f50281465711797bef33fce00b8481d23af092ba466f8" +
			"6b78702420216d311afd19feff990ffd681a925f69427f64c93c17310775f81d" +
			"57df567f338015776fac8b3122dc38d4538d653645d40f11b213b000551ac673"),
		Q: hexToInt("f29202ef38740700d4b9e34f8aa064fd68658fd5"),
		G: hexToInt("4fd9e6bd91244f1eadbaac89854d79049c6f5381cd3d5e7bdf297b13f456b604" +
			"bf07ceb42e5e342d548369d3abd13bdbe8e2feefb52b7fb8d718987c976235b0" +
			"63b77105abff40e5c4325ce8081bcd70351dfe28e46a521de316af4676a34da4" +
			"3de477deebeeffd618009616de842e687df59a72f34468f54afa4a6aecb718ca"),
	}
}

// testKey1024 returns a fixed key pair over testParams1024.
func testKey1024() *PrivateKey {
	return &PrivateKey{
		Params: testParams1024(),
		Y:      hexToInt("9bc0eb461ddaa632c0e24ae96145275478a850fed02b4f7766e5b6093418bcbb" +
			"3d749c498e365262adf1dde1ffdb04059dc0a475de55fbc2f3ae0f099ecdc195" +
			"ce2bf30149ea85449e978f578cd899ea6488efe213dd84a684a5f647d64d8239" +
			"3ea11bdbfef1388832affbba34a54a48f1274b17e448c42efc13bba757bbde22"),
		X:      hexToInt("e30975e19c01f5257a9eae8fa9f42862c0fca95c"),
	}
}
