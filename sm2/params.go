// Package sm2 implements the SM2 public-key cryptosystem (GB/T 32918):
// key generation, signing and verification, and the four standard
// ciphertext encodings, layered on internal/curve, internal/field and
// internal/asn1ber. SM3, the hash function SM2 is built on, is treated
// as an external collaborator (github.com/sm2kit/sm2core/hash/sm3).
package sm2

import (
	"math/big"

	"github.com/sm2kit/sm2core/internal/curve"
)

func hexInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("sm2: invalid hex constant " + s)
	}
	return n
}

// Curve parameters (hex, big-endian), GB/T 32918 recommended curve.
const (
	hexP  = "FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFF"
	hexA  = "FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFC"
	hexB  = "28E9FA9E9D9F5E344D5A9E4BCF6509A7F39789F515AB8F92DDBCBD414D940E93"
	hexN  = "FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFF7203DF6B21C6052B53BBF40939D54123"
	hexGx = "32C4AE2C1F1981195F9904466A39C9948FE30BBFF2660BE1715A4589334C74C7"
	hexGy = "BC3736A2F4F6779C59BDCEE36B692153D0A9877CC62A474002DF32E52139F0A0"
)

// Params returns the SM2 recommended curve's domain parameters.
func Params() *curve.Params {
	return &curve.Params{
		P:       hexInt(hexP),
		A:       hexInt(hexA),
		B:       hexInt(hexB),
		N:       hexInt(hexN),
		Gx:      hexInt(hexGx),
		Gy:      hexInt(hexGy),
		BitSize: 256,
		Name:    "sm2p256v1",
	}
}

// CoordSize is the fixed big-endian byte width of a coordinate (L in
// the spec's terminology).
const CoordSize = 32

var (
	sm2Curve  *curve.Curve
	sm2Cache  *curve.GeneratorCache
	initError error
)

func init() {
	c, err := curve.New(Params())
	if err != nil {
		initError = err
		return
	}
	sm2Curve = c
	sm2Cache = curve.NewGeneratorCache(c, c.Generator())
}

// Curve returns the process-wide SM2 curve instance, built once at
// package initialization per the one-time-initialization discipline
// the curve parameters and generator cache share.
func Curve() *curve.Curve {
	if initError != nil {
		panic(initError)
	}
	return sm2Curve
}

// baseCache returns the process-wide comb table bound to G.
func baseCache() *curve.GeneratorCache {
	if initError != nil {
		panic(initError)
	}
	return sm2Cache
}
