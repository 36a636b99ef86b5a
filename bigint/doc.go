// Copyright (c) 2024 The bcrypto developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bigint implements the arbitrary-precision integer arithmetic backing
the RSA and DSA engines.

The central type is Int, a signed magnitude integer stored as little-endian
machine words with a math/big style chaining API.  On top of the basic
arithmetic the package provides the number-theoretic operations public-key
cryptography needs:

  - Modular exponentiation with Montgomery reduction for odd moduli, in both
    a variable-time 4-bit windowed form (Exp) and a form whose control flow
    and table accesses are independent of the exponent bits (ExpConstTime)
  - Modular inverses through the extended binary GCD (ModInverse)
  - Miller-Rabin primality testing with a small-prime trial division front
    end (ProbablyPrime)
  - Bias-free uniform random sampling below a bound (RandInt) and fixed
    bit-length candidate generation (RandBits)

Exp and every other operation without an explicit constant-time note run in
time that depends on their operand values.  They are appropriate for
verification, parameter generation, and any other computation over public
values only.  Private-key exponentiations must go through ExpConstTime.
*/
package bigint
