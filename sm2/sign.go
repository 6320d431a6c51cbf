package sm2

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/sm2kit/sm2core/internal/asn1ber"
)

// Sign produces a GB/T 32918.2 signature over msg, returned as a
// BER SEQUENCE(INTEGER r, INTEGER s). rnd defaults to crypto/rand when
// nil. km must carry a private scalar.
func Sign(km *KeyMaterial, msg []byte, rnd io.Reader) ([]byte, error) {
	if !km.HasPrivateKey() {
		return nil, MissingPrivateKeyError{}
	}
	if rnd == nil {
		rnd = rand.Reader
	}
	n := Curve().Params.N
	e := signHash(km.userZ(), msg)
	dPlus1Inv, err := Curve().OrderField().Inverse(new(big.Int).Add(km.D, big.NewInt(1)))
	if err != nil {
		// d == n-1 makes d+1 == n, i.e. 0 mod n: vanishingly unlikely
		// for a properly generated key, but report it rather than panic.
		return nil, InvalidPointError{Err: err}
	}

	for {
		k, err := randScalar(rnd, n)
		if err != nil {
			return nil, err
		}
		kg := km.mulBase(k)
		r := new(big.Int).Mod(new(big.Int).Add(e, kg.X), n)
		if r.Sign() == 0 {
			continue
		}
		if new(big.Int).Add(r, k).Cmp(n) == 0 {
			continue
		}
		rd := new(big.Int).Mod(new(big.Int).Mul(r, km.D), n)
		kMinusRD := new(big.Int).Mod(new(big.Int).Sub(k, rd), n)
		s := new(big.Int).Mod(new(big.Int).Mul(kMinusRD, dPlus1Inv), n)
		if s.Sign() == 0 {
			continue
		}

		b := asn1ber.NewBuilder()
		b.AddSequence(func(inner *asn1ber.Builder) {
			inner.AddInteger(r)
			inner.AddInteger(s)
		})
		return b.Bytes(), nil
	}
}

// Verify checks sig (a BER SEQUENCE(INTEGER r, INTEGER s)) against msg
// and km's public point.
func Verify(km *KeyMaterial, msg, sig []byte) bool {
	r, s, err := decodeSignature(sig)
	if err != nil {
		return false
	}
	n := Curve().Params.N
	if r.Sign() <= 0 || r.Cmp(n) >= 0 || s.Sign() <= 0 || s.Cmp(n) >= 0 {
		return false
	}
	t := new(big.Int).Mod(new(big.Int).Add(r, s), n)
	if t.Sign() == 0 {
		return false
	}

	sg := km.mulBase(s)
	tq := km.mulPublic(t)
	p := Curve().Add(sg, tq)
	if p.Infinity {
		return false
	}

	e := signHash(km.userZ(), msg)
	got := new(big.Int).Mod(new(big.Int).Add(e, p.X), n)
	return got.Cmp(r) == 0
}

func decodeSignature(sig []byte) (r, s *big.Int, err error) {
	reader := asn1ber.NewReader(sig)
	seq, err := reader.ReadSequence()
	if err != nil {
		return nil, nil, wrapASN1Error(err)
	}
	r, err = seq.ReadInteger()
	if err != nil {
		return nil, nil, wrapASN1Error(err)
	}
	s, err = seq.ReadInteger()
	if err != nil {
		return nil, nil, wrapASN1Error(err)
	}
	return r, s, nil
}
