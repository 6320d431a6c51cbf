package sm2

import (
	"crypto/rand"
	"io"
	"math/big"
	"sync"

	"github.com/sm2kit/sm2core/internal/curve"
)

// DefaultUID is the user identity used when no WithUID option is
// supplied, per GB/T 32918.2's sample value.
var DefaultUID = []byte("1234567812345678")

// KeyMaterial bundles an SM2 private scalar (optional) and public
// point together with the per-user data (UID, and the derived Z value)
// that signing and verification both need.
type KeyMaterial struct {
	D *big.Int
	Q curve.Point

	uid []byte

	zOnce sync.Once
	z     []byte

	pubCache *curve.GeneratorCache
}

// Option configures a KeyMaterial at construction time.
type Option func(*KeyMaterial)

// WithUID overrides the default user identity used in the Z-value
// computation (GB/T 32918.2 §5.5).
func WithUID(uid []byte) Option {
	return func(km *KeyMaterial) {
		km.uid = append([]byte(nil), uid...)
	}
}

// WithPublicKeyCache builds a 32x256 comb table bound to this key
// material's public point, trading memory for faster repeated
// verification against the same key.
func WithPublicKeyCache() Option {
	return func(km *KeyMaterial) {
		km.pubCache = curve.NewGeneratorCache(Curve(), km.Q)
	}
}

func newKeyMaterial(d *big.Int, q curve.Point, opts []Option) *KeyMaterial {
	km := &KeyMaterial{D: d, Q: q, uid: DefaultUID}
	for _, opt := range opts {
		opt(km)
	}
	return km
}

// GenerateKey draws a fresh random scalar from rand and derives the
// matching public point via the generator comb cache.
func GenerateKey(rnd io.Reader, opts ...Option) (*KeyMaterial, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	n := Curve().Params.N
	d, err := randScalar(rnd, n)
	if err != nil {
		return nil, err
	}
	q := baseCache().Mul(d)
	return newKeyMaterial(d, q, opts), nil
}

// randScalar draws a value uniform on [2, n), the range GB/T 32918
// requires for both private keys and ephemeral per-operation scalars.
func randScalar(rnd io.Reader, n *big.Int) (*big.Int, error) {
	two := big.NewInt(2)
	span := new(big.Int).Sub(n, two)
	k, err := rand.Int(rnd, span)
	if err != nil {
		return nil, err
	}
	return k.Add(k, two), nil
}

// NewKeyMaterial builds key material from an already-known scalar and
// point, validating that the point lies on the curve and, when d is
// non-nil, that it actually produces q.
func NewKeyMaterial(d *big.Int, q curve.Point, opts ...Option) (*KeyMaterial, error) {
	if !q.Infinity && !Curve().IsOnCurve(q.X, q.Y) {
		return nil, wrapPointError(curve.InvalidPointError{X: q.X, Y: q.Y})
	}
	if d != nil {
		want := baseCache().Mul(d)
		if !Curve().Equal(want, q) {
			return nil, KeyMismatchError{}
		}
	}
	return newKeyMaterial(d, q, opts), nil
}

// NewPublicKeyFromBytes builds public-only key material from an
// SEC1-encoded point (compressed, uncompressed, or raw X||Y).
func NewPublicKeyFromBytes(data []byte, opts ...Option) (*KeyMaterial, error) {
	q, err := Curve().Decode(data)
	if err != nil {
		return nil, wrapPointError(err)
	}
	return NewKeyMaterial(nil, q, opts...)
}

// NewKeyMaterialFromScalar builds key material from a private scalar
// alone, deriving the public point via the generator comb cache. This
// is the shape a PKCS#8 ECPrivateKey decodes into when its optional
// explicit publicKey field is absent.
func NewKeyMaterialFromScalar(d *big.Int, opts ...Option) (*KeyMaterial, error) {
	q := baseCache().Mul(d)
	return NewKeyMaterial(d, q, opts...)
}

// PublicBytes encodes the public point in SEC1 form.
func (km *KeyMaterial) PublicBytes(compressed bool) []byte {
	return Curve().Encode(km.Q, compressed)
}

// HasPrivateKey reports whether this key material can sign or decrypt.
func (km *KeyMaterial) HasPrivateKey() bool {
	return km.D != nil
}

func (km *KeyMaterial) mulBase(k *big.Int) curve.Point {
	return baseCache().Mul(k)
}

func (km *KeyMaterial) mulPublic(k *big.Int) curve.Point {
	if km.pubCache != nil {
		return km.pubCache.Mul(k)
	}
	return Curve().ScalarMult(km.Q, k)
}
