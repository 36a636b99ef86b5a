// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import (
	"crypto/rand"
	"testing"
)

// TestGCD ensures the binary GCD against independently computed results.
func TestGCD(t *testing.T) {
	tests := []struct {
		name    string
		a, b, g string
	}{{
		name: "coprime 128-bit",
		a:    "e6697833b841d0a01fe771d6d9178793",
		b:    "aab97e494f2d479681d2c7de4ce1eb90",
		g:    "1",
	}, {
		name: "coprime 512-bit",
		a: "2c8d0e44e71e43a6bf85bf0ead64b56c610faa3ff0bbac67aa38d0a16ba25efe" +
			"311c6eb62095eef68dedf9fb4bb00f20b27c40266703b6365380b904688c7015",
		b: "527eecfaa79ac9aa9b4e2c249479e1e6c9277d9b6e0d264835ce884149732d6c" +
			"4dcabfb7001a9a8bd56f03508c459ce267f48ad54d0b0d1a91b0e1d99d9262af",
		g: "1",
	}, {
		name: "shared even factor",
		a:    "9865aea81ada0c11e225396aa907d9f401b86e16d4e509cf14d2aa8b59471976c",
		b:    "d3f4f73805415045346e7e60e38a426c8",
		g:    "c",
	}, {
		name: "one operand zero",
		a:    "0",
		b:    "1234",
		g:    "1234",
	}, {
		name: "equal operands",
		a:    "abcdef",
		b:    "abcdef",
		g:    "abcdef",
	}, {
		name: "divides",
		a:    "30",
		b:    "c0",
		g:    "30",
	}}

	for _, test := range tests {
		a, b := hexToInt(test.a), hexToInt(test.b)
		if got := new(Int).GCD(a, b); got.Cmp(hexToInt(test.g)) != 0 {
			t.Errorf("%s: got %v want %s", test.name, got, test.g)
		}
		if got := new(Int).GCD(b, a); got.Cmp(hexToInt(test.g)) != 0 {
			t.Errorf("%s: reversed got %v want %s", test.name, got, test.g)
		}
	}
}

// TestModInverse ensures modular inversion against independently computed
// results, including an even modulus and inputs with no inverse.
func TestModInverse(t *testing.T) {
	tests := []struct {
		name    string
		x, m    string
		inv     string // empty means no inverse exists
	}{{
		name: "64-bit",
		x:    "93923de8babce3b",
		m:    "de84f058d5a804eb",
		inv:  "2d63c51e3827c375",
	}, {
		name: "256-bit",
		x:    "5d59cd2a4eea04e70ab54bde20a045026e06809725e979778d7248e2951f58d0",
		m:    "db9962c6e61fecc00a368ce7dc570131f8e1daa7cbceabdeeededb07e623a689",
		inv:  "ff4f000caef693562ab8dfb6aa0bd73070354d77fff40800d5b5efa42e0523b",
	}, {
		name: "1024-bit",
		x: "98b8e4cc1bc044fc09cb394243f59a85fbc9f87af668a61794a1875d2db69edb" +
			"42deffccf86c2ca2e08596db1d8709660710d430f071d87954c63cd889456f27" +
			"d7fa2d8dfb2ca025adf4e62d6651529e8268690ba43825b559e4b6714774bc58" +
			"c5f8bc16f7860b5011c58ef0dd463c09475287aa5408f9ac6601ddd03170f437",
		m: "ee6981a35d3d9e563270e4faabae4f43bcae8081bdf070aaf0b5156bb82c9074" +
			"afd5dea589d7fd6cce777f00ecf27e7685197ff4006ed6e36fa17735b572f3d0" +
			"0b5cea6a41357e8c30a900ad939b462de645f129629c2ae31d9af65982ec9f2d" +
			"fbf6e16f9b3080d56fb78271504d281fc9535b63ba81edd9587ef3446f3f920c",
		inv: "283b45f3824454043c4fdc23f7cc4957db356230f287c7500241a8af90ee1c2b" +
			"c5c2452759c5a09b812cacff775424b4233ff09c9fbd9897b68e9370284218327" +
			"fe623be1044b8987c2a644aeca3a7f775e4c0c864a67d794d17dbec9e014c58a" +
			"e74114abdf67bc43fd0b9ad1586f1193d043e66112e89f2e49bbb937e516cf7",
	}, {
		name: "even modulus",
		x:    "a9d3c2e6505cc6869f871ce75487fd4febb7a385aa0b7b14f2e9702d11e9cdab",
		m:    "ffffffffffffffffffffffffffffffffffffffffffffffffffffffff00000000",
		inv:  "f9f91a24904430cbb04e5f866afd165b696e269cc18aec08d60f41a812fac503",
	}, {
		name: "no inverse",
		x:    "6",
		m:    "9",
		inv:  "",
	}, {
		name: "zero has no inverse",
		x:    "0",
		m:    "11",
		inv:  "",
	}, {
		name: "multiple of modulus has no inverse",
		x:    "22",
		m:    "11",
		inv:  "",
	}}

	for _, test := range tests {
		x, m := hexToInt(test.x), hexToInt(test.m)
		got := new(Int).ModInverse(x, m)
		if test.inv == "" {
			if got != nil {
				t.Errorf("%s: expected no inverse, got %v", test.name, got)
			}
			continue
		}
		if got == nil {
			t.Errorf("%s: expected inverse, got none", test.name)
			continue
		}
		if got.Cmp(hexToInt(test.inv)) != 0 {
			t.Errorf("%s: got %v want %s", test.name, got, test.inv)
		}

		// The defining property: x * x^-1 = 1 (mod m).
		check := new(Int).Mul(x, got)
		check.Mod(check, m)
		if !check.IsOne() {
			t.Errorf("%s: x*inv mod m = %v, want 1", test.name, check)
		}
	}
}

// TestModInverseRandom ensures the inversion identity holds for random odd
// moduli, drawing fresh values until a coprime pair is found.
func TestModInverseRandom(t *testing.T) {
	for i := 0; i < 32; i++ {
		m, err := RandBits(rand.Reader, 256, true, true)
		if err != nil {
			t.Fatalf("rand: %v", err)
		}
		for {
			x, err := RandBits(rand.Reader, 256, false, false)
			if err != nil {
				t.Fatalf("rand: %v", err)
			}
			if !new(Int).GCD(x, m).IsOne() {
				continue
			}
			inv := new(Int).ModInverse(x, m)
			if inv == nil {
				t.Fatalf("iteration %d: coprime input reported no inverse", i)
			}
			check := new(Int).Mul(x, inv)
			check.Mod(check, m)
			if !check.IsOne() {
				t.Fatalf("iteration %d: x*inv mod m != 1", i)
			}
			break
		}
	}
}

// TestExtendedGCD ensures the Bezout identity a*x + b*y = gcd(x, y) holds for
// fixed and random operands.
func TestExtendedGCD(t *testing.T) {
	check := func(x, y *Int) {
		t.Helper()
		g, a, b := ExtendedGCD(x, y)
		if want := new(Int).GCD(x, y); g.Cmp(want) != 0 {
			t.Fatalf("gcd(%v, %v) = %v, want %v", x, y, g, want)
		}
		ax := new(Int).Mul(a, x)
		by := new(Int).Mul(b, y)
		if got := ax.Add(ax, by); got.Cmp(g) != 0 {
			t.Fatalf("a*x + b*y = %v, want %v", got, g)
		}
	}

	check(hexToInt("3"), hexToInt("a"))
	check(hexToInt("a"), hexToInt("3"))
	check(hexToInt("fedcba9876543210"), hexToInt("123456789abcdef"))
	check(hexToInt("1"), hexToInt("1"))
	for i := 0; i < 32; i++ {
		x, err := RandBits(rand.Reader, 256, true, false)
		if err != nil {
			t.Fatalf("rand: %v", err)
		}
		y, err := RandBits(rand.Reader, 192, true, false)
		if err != nil {
			t.Fatalf("rand: %v", err)
		}
		check(x, y)
	}
}
