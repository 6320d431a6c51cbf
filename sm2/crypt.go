package sm2

import (
	"crypto/rand"
	"crypto/subtle"
	"io"

	"github.com/sm2kit/sm2core/hash/sm3"
	"github.com/sm2kit/sm2core/internal/asn1ber"
	"github.com/sm2kit/sm2core/internal/curve"
)

// Mode selects one of the four standard SM2 ciphertext encodings.
type Mode string

const (
	// ASN1 frames the ciphertext as a BER SEQUENCE(INTEGER c1x, INTEGER
	// c1y, OCTET STRING c3, OCTET STRING c2), per GB/T 32918.4 Annex C.
	ASN1 Mode = "ASN1"
	// C1C3C2 concatenates the point, the MAC, then the ciphertext body —
	// the order GB/T 32918.4 recommends.
	C1C3C2 Mode = "C1C3C2"
	// C1C2C3 concatenates the point, the ciphertext body, then the MAC —
	// the legacy ordering many older deployments still use.
	C1C2C3 Mode = "C1C2C3"
	// C1C2 omits the MAC entirely (no integrity check on decrypt).
	C1C2 Mode = "C1C2"
)

// Encrypt produces an SM2 ciphertext over msg under km's public point,
// in the given Mode. rnd defaults to crypto/rand when nil. Per GB/T
// 32918.4, an ephemeral key whose KDF output is all-zero is discarded
// and a fresh one drawn.
func Encrypt(km *KeyMaterial, msg []byte, mode Mode, rnd io.Reader) ([]byte, error) {
	if len(msg) == 0 {
		return nil, EmptyPlaintextError{}
	}
	if rnd == nil {
		rnd = rand.Reader
	}
	n := Curve().Params.N

	for {
		k, err := randScalar(rnd, n)
		if err != nil {
			return nil, err
		}
		c1Point := km.mulBase(k)
		sPoint := km.mulPublic(k)
		if sPoint.Infinity {
			continue
		}

		seed := append(bigToFixed(sPoint.X, CoordSize), bigToFixed(sPoint.Y, CoordSize)...)
		t, ok := kdf(seed, len(msg))
		if !ok {
			continue
		}

		c2 := make([]byte, len(msg))
		for i := range msg {
			c2[i] = msg[i] ^ t[i]
		}

		h := sm3.New()
		h.Write(bigToFixed(sPoint.X, CoordSize))
		h.Write(msg)
		h.Write(bigToFixed(sPoint.Y, CoordSize))
		c3 := h.Sum(nil)

		return encodeCiphertext(mode, c1Point, c2, c3)
	}
}

// Decrypt recovers the plaintext from an SM2 ciphertext encoded in
// mode, verifying the embedded MAC unless mode is C1C2.
func Decrypt(km *KeyMaterial, ct []byte, mode Mode) ([]byte, error) {
	if !km.HasPrivateKey() {
		return nil, MissingPrivateKeyError{}
	}
	c1Point, c2, c3, err := decodeCiphertext(mode, ct)
	if err != nil {
		return nil, err
	}

	sPoint := Curve().ScalarMult(c1Point, km.D)
	if sPoint.Infinity {
		return nil, InvalidEncodingError{Reason: "ephemeral point scales to infinity under private key"}
	}

	seed := append(bigToFixed(sPoint.X, CoordSize), bigToFixed(sPoint.Y, CoordSize)...)
	t, ok := kdf(seed, len(c2))
	if !ok {
		return nil, InvalidEncodingError{Reason: "KDF output is all-zero"}
	}

	msg := make([]byte, len(c2))
	for i := range c2 {
		msg[i] = c2[i] ^ t[i]
	}

	if mode != C1C2 {
		h := sm3.New()
		h.Write(bigToFixed(sPoint.X, CoordSize))
		h.Write(msg)
		h.Write(bigToFixed(sPoint.Y, CoordSize))
		want := h.Sum(nil)
		if subtle.ConstantTimeCompare(want, c3) != 1 {
			return nil, HashMismatchError{}
		}
	}
	return msg, nil
}

func encodeCiphertext(mode Mode, c1Point curve.Point, c2, c3 []byte) ([]byte, error) {
	if mode == ASN1 {
		b := asn1ber.NewBuilder()
		b.AddSequence(func(inner *asn1ber.Builder) {
			inner.AddInteger(c1Point.X)
			inner.AddInteger(c1Point.Y)
			inner.AddOctetString(c3)
			inner.AddOctetString(c2)
		})
		return b.Bytes(), nil
	}

	c1 := Curve().Encode(c1Point, false)
	switch mode {
	case C1C3C2:
		out := make([]byte, 0, len(c1)+len(c3)+len(c2))
		out = append(out, c1...)
		out = append(out, c3...)
		out = append(out, c2...)
		return out, nil
	case C1C2C3:
		out := make([]byte, 0, len(c1)+len(c2)+len(c3))
		out = append(out, c1...)
		out = append(out, c2...)
		out = append(out, c3...)
		return out, nil
	case C1C2:
		out := make([]byte, 0, len(c1)+len(c2))
		out = append(out, c1...)
		out = append(out, c2...)
		return out, nil
	default:
		return nil, UnknownModeError{Mode: mode}
	}
}

func decodeCiphertext(mode Mode, ct []byte) (c1Point curve.Point, c2, c3 []byte, err error) {
	const c1Len = 1 + 2*CoordSize
	const c3Len = 32 // SM3 digest size

	if mode == ASN1 {
		reader := asn1ber.NewReader(ct)
		seq, err := reader.ReadSequence()
		if err != nil {
			return curve.Point{}, nil, nil, wrapASN1Error(err)
		}
		x, err := seq.ReadInteger()
		if err != nil {
			return curve.Point{}, nil, nil, wrapASN1Error(err)
		}
		y, err := seq.ReadInteger()
		if err != nil {
			return curve.Point{}, nil, nil, wrapASN1Error(err)
		}
		c3, err = seq.ReadOctetString()
		if err != nil {
			return curve.Point{}, nil, nil, wrapASN1Error(err)
		}
		c2, err = seq.ReadOctetString()
		if err != nil {
			return curve.Point{}, nil, nil, wrapASN1Error(err)
		}
		p, err := Curve().NewPoint(x, y)
		if err != nil {
			return curve.Point{}, nil, nil, wrapPointError(err)
		}
		return p, c2, c3, nil
	}

	var c1 []byte
	switch mode {
	case C1C3C2:
		if len(ct) < c1Len+c3Len {
			return curve.Point{}, nil, nil, InvalidEncodingError{Reason: "ciphertext shorter than C1||C3"}
		}
		c1, c2, c3 = ct[:c1Len], ct[c1Len+c3Len:], ct[c1Len:c1Len+c3Len]
	case C1C2C3:
		if len(ct) < c1Len+c3Len {
			return curve.Point{}, nil, nil, InvalidEncodingError{Reason: "ciphertext shorter than C1||C3"}
		}
		c1, c2, c3 = ct[:c1Len], ct[c1Len:len(ct)-c3Len], ct[len(ct)-c3Len:]
	case C1C2:
		if len(ct) < c1Len {
			return curve.Point{}, nil, nil, InvalidEncodingError{Reason: "ciphertext shorter than C1"}
		}
		c1, c2 = ct[:c1Len], ct[c1Len:]
	default:
		return curve.Point{}, nil, nil, UnknownModeError{Mode: mode}
	}

	p, err := Curve().Decode(c1)
	if err != nil {
		return curve.Point{}, nil, nil, wrapPointError(err)
	}
	return p, c2, c3, nil
}
