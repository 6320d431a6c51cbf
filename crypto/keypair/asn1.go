package keypair

import (
	stdAsn1 "encoding/asn1"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/sm2kit/sm2core/sm2"
)

// ASN.1 object identifiers for SM2 keys framed the way NIST EC keys
// are: id-ecPublicKey with the sm2p256v1 curve OID in place of a NIST
// named curve. This lets SM2 keys ride the same SPKI/PKCS#8 envelope
// tooling already understands for ECDSA keys.
var (
	oidEcPublicKey = stdAsn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidSM2P256v1   = stdAsn1.ObjectIdentifier{1, 2, 156, 10197, 1, 301}
)

// MarshalSPKIPublicKey encodes km's public point as a
// SubjectPublicKeyInfo DER structure.
func MarshalSPKIPublicKey(km *sm2.KeyMaterial) ([]byte, error) {
	point := km.PublicBytes(false)

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oidEcPublicKey)
			b.AddASN1ObjectIdentifier(oidSM2P256v1)
		})
		b.AddASN1BitString(point)
	})
	return b.Bytes()
}

// MarshalPKCS8PrivateKey encodes km's private scalar (and public point,
// as the PKCS#8 ECPrivateKey's optional explicit field) as a PKCS#8
// PrivateKeyInfo DER structure.
func MarshalPKCS8PrivateKey(km *sm2.KeyMaterial) ([]byte, error) {
	if !km.HasPrivateKey() {
		return nil, EmptyPrivateKeyError{}
	}
	point := km.PublicBytes(false)

	var p8 cryptobyte.Builder
	p8.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0) // version
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oidEcPublicKey)
			b.AddASN1ObjectIdentifier(oidSM2P256v1)
		})
		b.AddASN1(asn1.OCTET_STRING, func(b *cryptobyte.Builder) {
			b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1Int64(1) // ECPrivateKey version
				b.AddASN1OctetString(km.D.Bytes())
				b.AddASN1(asn1.Tag(0).ContextSpecific().Constructed(), func(b *cryptobyte.Builder) {
					b.AddASN1ObjectIdentifier(oidSM2P256v1)
				})
				b.AddASN1(asn1.Tag(1).ContextSpecific().Constructed(), func(b *cryptobyte.Builder) {
					b.AddASN1BitString(point)
				})
			})
		})
	})
	return p8.Bytes()
}

// ParseSPKIPublicKey parses a SubjectPublicKeyInfo DER structure and
// returns the SM2 public key it carries. The point may use any encoding
// sm2.NewPublicKeyFromBytes accepts (compressed, uncompressed or raw
// X||Y); MarshalSPKIPublicKey always writes the uncompressed form.
func ParseSPKIPublicKey(der []byte) (*sm2.KeyMaterial, error) {
	in := cryptobyte.String(der)
	var spki, ai, bitStr cryptobyte.String
	var alg, curveOID stdAsn1.ObjectIdentifier
	var unused uint8
	if !(in.ReadASN1(&spki, asn1.SEQUENCE) && in.Empty() &&
		spki.ReadASN1(&ai, asn1.SEQUENCE) &&
		ai.ReadASN1ObjectIdentifier(&alg) && alg.Equal(oidEcPublicKey) &&
		ai.ReadASN1ObjectIdentifier(&curveOID) && curveOID.Equal(oidSM2P256v1) &&
		spki.ReadASN1(&bitStr, asn1.BIT_STRING) &&
		bitStr.ReadUint8(&unused)) {
		return nil, InvalidPublicKeyError{Err: stdAsn1.SyntaxError{Msg: "invalid SubjectPublicKeyInfo"}}
	}
	var point []byte
	_ = bitStr.ReadBytes(&point, len(bitStr))

	km, err := sm2.NewPublicKeyFromBytes(point)
	if err != nil {
		return nil, InvalidPublicKeyError{Err: err}
	}
	return km, nil
}

// ParsePKCS8PrivateKey parses a PKCS#8 PrivateKeyInfo DER structure and
// returns the SM2 private key it carries. The ECPrivateKey's optional
// explicit publicKey field, if present, is not cross-checked; the
// public point is always re-derived from the scalar.
func ParsePKCS8PrivateKey(der []byte) (*sm2.KeyMaterial, error) {
	in := cryptobyte.String(der)
	var p8 cryptobyte.String
	if !in.ReadASN1(&p8, asn1.SEQUENCE) || !in.Empty() {
		return nil, InvalidPrivateKeyError{Err: stdAsn1.SyntaxError{Msg: "invalid PKCS#8 PrivateKeyInfo"}}
	}
	var ver int64
	if !p8.ReadASN1Int64WithTag(&ver, asn1.INTEGER) {
		return nil, InvalidPrivateKeyError{Err: stdAsn1.SyntaxError{Msg: "missing version"}}
	}
	var ai cryptobyte.String
	if !p8.ReadASN1(&ai, asn1.SEQUENCE) {
		return nil, InvalidPrivateKeyError{Err: stdAsn1.SyntaxError{Msg: "missing AlgorithmIdentifier"}}
	}
	var alg stdAsn1.ObjectIdentifier
	if !ai.ReadASN1ObjectIdentifier(&alg) || !alg.Equal(oidEcPublicKey) {
		return nil, InvalidPrivateKeyError{Err: stdAsn1.StructuralError{Msg: "unexpected algorithm OID (want ecPublicKey)"}}
	}
	var curveOID stdAsn1.ObjectIdentifier
	if !ai.ReadASN1ObjectIdentifier(&curveOID) || !curveOID.Equal(oidSM2P256v1) {
		return nil, InvalidPrivateKeyError{Err: stdAsn1.StructuralError{Msg: "unexpected or missing curve OID (want sm2p256v1)"}}
	}
	var priOct cryptobyte.String
	if !p8.ReadASN1(&priOct, asn1.OCTET_STRING) {
		return nil, InvalidPrivateKeyError{Err: stdAsn1.SyntaxError{Msg: "missing privateKey"}}
	}

	ec := priOct
	var ecSeq cryptobyte.String
	if !ec.ReadASN1(&ecSeq, asn1.SEQUENCE) || !ec.Empty() {
		return nil, InvalidPrivateKeyError{Err: stdAsn1.SyntaxError{Msg: "invalid ECPrivateKey"}}
	}
	var ecVer int64
	if !ecSeq.ReadASN1Int64WithTag(&ecVer, asn1.INTEGER) || ecVer != 1 {
		return nil, InvalidPrivateKeyError{Err: stdAsn1.SyntaxError{Msg: "invalid ECPrivateKey version"}}
	}
	var keyOct cryptobyte.String
	if !ecSeq.ReadASN1(&keyOct, asn1.OCTET_STRING) {
		return nil, InvalidPrivateKeyError{Err: stdAsn1.SyntaxError{Msg: "missing EC privateKey"}}
	}

	d := new(big.Int).SetBytes(keyOct)
	km, err := sm2.NewKeyMaterialFromScalar(d)
	if err != nil {
		return nil, InvalidPrivateKeyError{Err: err}
	}
	return km, nil
}
