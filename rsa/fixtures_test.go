// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rsa

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

// testKey2048 returns a fixed, externally generated 2048-bit key used by the
// known-answer tests.
func testKey2048() *PrivateKey {
	return &PrivateKey{
		PublicKey: PublicKey{
			N: hexToInt("95ba7eea77c17674ccb0a659433274b8cac6a33f59eb4c2c3acf372c4d1fdbfb" +
				"6d380799f1af6b13782ce05532c8feac0ae3173c69d6d6d0b2f226c3493c8c20" +
				"8d61988c18425aafc189b93351ab61be83fd6df11f0c6a029b0370dc0b22f43b" +
				"dc4035204335583e6b1285d0b6ce12df26b35ff4f88d9431b6e127b0c6fc106d" +
				"74dede7849ff44a8dad22682c96143fd468280b8411ce447a2b67a77b293185e" +
				"3f9d03231e73b97edb290b5cd794f54abfa093982378f4f1096d31df44c131d1" +
				"1746bafaa6f57c30dead60134cba9dee541c0120b6dd210e7d945b8dcb9ce21b" +
				"c485e8e6c88ba2d723dd7646a6f6aa05014492399d46a39fba642568585107c5"),
			E: hexToInt("10001"),
		},
		D:    hexToInt("f50f48aa79572b89ff7b20c8f8329cd7d70b46256a06b3a5b09b76b20b891983" +
			"6a3f4a31ac606fe06dd1055a6cc48c0f09c2a5453bf565a22f4026317aac9eac" +
			"a8ba13f337c162ac47182306dba4a5562cb19e40079149f0f9c5a7f27e47b776" +
			"4206d4ecf913565ad2e47e201d132bd0108785866d494c44120e71e7e3c6ab19" +
			"f990eee975207515ad8f83b919db59279a6dea665ab169b576cd896e16655e0e" +
			"c00dce6fd55212c13ff5fd84a442ba2b1e8929065511e339a66cb5ade0442c87" +
			"6cfb7b12b398e5c4292d0bd17c6326c039c89fb79e9c5250e23dfeaa5f19d8b2" +
			"18bc695fc48c5a781d2c5063373cfd90bc2571be4e581042b5a5016bec23001"),
		P:    hexToInt("ba9cea3ccf3b7b901465289a09c1d66f26855fdf59df47ea7b0bdad26455680f" +
			"f47605d4a32d5b1ed414c2e7322ef15ac3c4fd4312d3730ae100f4a501dadf45" +
			"3bcbb277e585ce93340f2313d6c795e2709053523a01ebb98698078837b2e6b6" +
			"6ad94d0ca39a0563cb08ac51e1df9db05e72d61e99dd44ba55a2cccdbf557285"),
		Q:    hexToInt("cd66ab3bda0dc4146a627cd1c428033ce4fa5e0cabeb455c02158b5754750282" +
			"c40ed23cfbba82fcda0a5c5444635899edfc68c7045e7fe2c644eaae99b12303" +
			"da8ea446c4b14c3f8a458518cbf8c07a3edda455f9e8132975ba6aaf34be7828" +
			"e5ef818346985690ffd8cde3f3245d1989f201d312058e2ed98296e220476441"),
		Dp:   hexToInt("1b18a5ba66acd0683f4de0f35cef545f974c4e7b73e543dffc35e07424357282" +
			"be90549067913265eb8d882f61ce072592bf8bb6ad891e6f39f49591500fa3d3" +
			"bdb6fa1706b0c32a04a91e02c770fb8681a9b32f8154be11964584f27683f794" +
			"0d37b844598d07b351cbd4999f1e851b12dbc1d377abf54ac91c7678798bc2b1"),
		Dq:   hexToInt("630765f5444b30c71b0782e06baf52e8500979c0a83e954127ec1533348ff976" +
			"ec69ace92400a7589b1335b2970a42d46c0e2ec20d14369a323755e27a4d11f1" +
			"b0b4e6f50bade3721b0b2b816a0df356bcea8569c24426c0ed76c42ad6c6220e" +
			"add54c5eeb71550331a6e895474bb7eb313bd1af5ed7f8d6139e477a9c4f6f41"),
		Qinv: hexToInt("1592c3c650729d5c22b55af1c6fbe0996b95c5da78e050fe72d4bbd9ad9ae96a" +
			"3c33d33ec3c020a5098124001fc8afde69e74010ee9e054ad53155314a15e3ce" +
			"e9e80953a9f598864eaa1fd13f1126f95988fb9e5eb7dc3621d62b1e36988b4a" +
			"fd663ca992d1b49661ae292e04e5d39d976966fbee598686f288deba3f88a559"),
	}
}

// Known-answer signatures over the fixed key, computed with an independent
// implementation.
var (
	// SHA-256 signature over the ASCII message "abc".
	sigAbcSHA256 = hexToBytes("00f57e29009e1eaf45a335b28056dbf6bd645c3285533dd06ede2ad428dac02a" +
		"a350e018de8fb455711d537b447370f357451a6a90f5c7635f86fc0622d6ae4f" +
		"17e05b542940155cfcc16092b04bf4b310de7611d504e543b7264178e0671886" +
		"59b41b6cfc8d44067120e277a9eda62e41887484c477ca0887c8ca5939452873" +
		"3eb689fe5a9794ad713d4e8d11fc5d6fab75d62283549267bd0fbc5d28d8d7c1" +
		"ee731dd3942b014dcc8d4c0f36dd2c0ac9a331f2c07d64055876407c85c87781" +
		"946b396503e9e1eba804d443933db146a40f7cf78887c66c85e178b710fe2010" +
		"1f625335e321f9d0987c0a23e27bfa52ea53494d63a9c8484d33f640467883a6")

	// SHA-256 signature over the ASCII message "hello".
	sigHelloSHA256 = hexToBytes("7d74dada3e97bb14cc9cf1f7e70b9967370f7defa1e125f0b8694226ad9a5dcd" +
		"b24cbc2a17f07c0d857e7a9139d7db689f3333df71f15391363602d5d3500663" +
		"ce404b064056d5a7f85b60d1f2c01211966cc192ddd5e1f0534dfff89b4eda0d" +
		"4073166bb58d95412467f12895771d2e0df88b66963cf68865255b7efe354327" +
		"5c2253833db519906cabe72dc4288373fff7ee08e1d8ef7bfc50ba4f183f9c13" +
		"53b3216a44f6dc1328e7534fcfb25b4b3c6550da5bb1c12bf70064a3f36612a9" +
		"7c9039d3b104ef05e91a395cc34b11f191856afd4ef2329d7ac86ec4811c0331" +
		"4f606cfb67a28cccdac07e17523abf88350ca5c56a0903d1c745563b6ac2b7cf")

	// SHA-1 signature over the ASCII message "hello".
	sigHelloSHA1 = hexToBytes("3a5142c28eaa90d2a1a66d0b287853b4719377e7c7eeeaa5863103c8d7501a16" +
		"335633cc8c5f45c366d14a71ed48d599250cca49e020b93a61560ad9f509d094" +
		"35651f2fa448c7c92c997fd51b53f596fcfbbf07be0de41cb390e62900e718c2" +
		"faa32b02d8b5af3e50e5d1f4a53cc449641a82300d3f793131a13ce6b6dcfc35" +
		"75b1e6358caae7c177ed23adf5e02eff34e10636275fdb25d579f3cc9d54a21c" +
		"355d52dccb5b5e0d6ecc0fc6e567e5d59df793ce69226eed00df733adfc0cc9a" +
		"4527a51f3f44b05e0a7c6948547504c485b8b3e57e84317acf2f9467c8cd34d6" +
		"e8bdbde81d6d7a7f7d7dea29cb607562b5efceef619ef43cab0470a4f919e750")
)
