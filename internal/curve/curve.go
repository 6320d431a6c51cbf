// Package curve implements short Weierstrass elliptic curve point
// arithmetic (y² = x³ + ax + b over F_p) using standard projective
// coordinates, the NAF-via-3k scalar multiplication trick of GB/T
// 32918.1 Annex A.3.2 Algorithm 2, and SEC1 point encoding. It is
// written generically over an explicit set of curve parameters; the
// SM2 constants live in the sm2 package, not here.
package curve

import (
	"math/big"

	"github.com/sm2kit/sm2core/internal/field"
)

// Params holds the domain parameters of a short Weierstrass curve.
type Params struct {
	P       *big.Int // field prime
	A       *big.Int // curve coefficient a
	B       *big.Int // curve coefficient b
	N       *big.Int // order of the base point
	Gx, Gy  *big.Int // base point coordinates
	BitSize int      // bit length of P (and, for SM2, of N)
	Name    string
}

// Point is an affine curve point. The zero value is not a valid point;
// use Infinity for the identity element. Point is a plain value type:
// copying a Point copies its coordinates by value semantics at the
// *big.Int pointer level, but callers must never mutate the big.Int
// values a Point holds — every operation below returns fresh ones.
type Point struct {
	Infinity bool
	X, Y     *big.Int
}

// projPoint is a point in standard projective coordinates (X, Y, Z)
// representing the affine point (X/Z, Y/Z). This is NOT the Jacobian
// representation; the formulas in ops.go are standard-projective
// formulas and must not be mixed with Jacobian ones.
type projPoint struct {
	X, Y, Z *big.Int
}

// Curve bundles domain parameters with the field arithmetic used to
// evaluate them.
type Curve struct {
	Params *Params
	field  *field.Field // arithmetic mod P
	order  *field.Field // arithmetic mod N, used by scalar reduction
}

// New constructs a Curve from the given parameters.
func New(p *Params) (*Curve, error) {
	f, err := field.New(p.P)
	if err != nil {
		return nil, err
	}
	ord, err := field.New(p.N)
	if err != nil {
		return nil, err
	}
	return &Curve{Params: p, field: f, order: ord}, nil
}

// Field returns the base-field arithmetic (mod P) backing this curve.
func (c *Curve) Field() *field.Field { return c.field }

// OrderField returns the scalar-field arithmetic (mod N) for this curve.
func (c *Curve) OrderField() *field.Field { return c.order }

// Infinity is the point at infinity (the group identity).
func Infinity() Point {
	return Point{Infinity: true}
}

// Generator returns the curve's base point G.
func (c *Curve) Generator() Point {
	return Point{X: new(big.Int).Set(c.Params.Gx), Y: new(big.Int).Set(c.Params.Gy)}
}

// IsOnCurve reports whether (x, y) satisfies y² = x³ + ax + b mod P.
func (c *Curve) IsOnCurve(x, y *big.Int) bool {
	if x.Sign() < 0 || x.Cmp(c.Params.P) >= 0 || y.Sign() < 0 || y.Cmp(c.Params.P) >= 0 {
		return false
	}
	f := c.field
	lhs := f.Mul(y, y)
	rhs := f.Add(f.Add(f.Mul(f.Mul(x, x), x), f.Mul(c.Params.A, x)), c.Params.B)
	return lhs.Cmp(rhs) == 0
}

// NewPoint validates (x, y) and returns the corresponding affine
// Point, or InvalidPointError if it is not on the curve.
func (c *Curve) NewPoint(x, y *big.Int) (Point, error) {
	if x.Sign() == 0 && y.Sign() == 0 {
		return Infinity(), nil
	}
	if !c.IsOnCurve(x, y) {
		return Point{}, InvalidPointError{X: x, Y: y}
	}
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}, nil
}

// Neg returns -p (the reflection of p across the x-axis).
func (c *Curve) Neg(p Point) Point {
	if p.Infinity {
		return p
	}
	return Point{X: new(big.Int).Set(p.X), Y: c.field.Neg(p.Y)}
}

func (c *Curve) toProj(p Point) projPoint {
	if p.Infinity {
		return projPoint{X: big.NewInt(0), Y: big.NewInt(1), Z: big.NewInt(0)}
	}
	return projPoint{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y), Z: big.NewInt(1)}
}

// toAffine converts a projective point back to affine form via the
// field inverse of Z. The zero Z case maps to Infinity.
func (c *Curve) toAffine(p projPoint) Point {
	if p.Z.Sign() == 0 {
		return Infinity()
	}
	f := c.field
	zInv, err := f.Inverse(p.Z)
	if err != nil {
		return Infinity()
	}
	x := f.Mul(p.X, zInv)
	y := f.Mul(p.Y, zInv)
	return Point{X: x, Y: y}
}

// Add returns p1 + p2 in affine coordinates, handling the identity
// element on either side. When p1 == p2 this dispatches to Double,
// since fastAdd's general formula degenerates to infinity whenever the
// two affine X-coordinates match — true both for P + (-P) and for
// P + P. When the X-coordinates match but the Y-coordinates don't
// (p1 == -p2), the pair is infinity.
func (c *Curve) Add(p1, p2 Point) Point {
	if p1.Infinity {
		return p2
	}
	if p2.Infinity {
		return p1
	}
	if p1.X.Cmp(p2.X) == 0 {
		if p1.Y.Cmp(p2.Y) == 0 {
			return c.Double(p1)
		}
		return Infinity()
	}
	return c.toAffine(c.fastAdd(c.toProj(p1), c.toProj(p2)))
}

// Double returns p1 + p1 in affine coordinates.
func (c *Curve) Double(p Point) Point {
	if p.Infinity {
		return p
	}
	return c.toAffine(c.fastDouble(c.toProj(p)))
}

// Sub returns p1 - p2.
func (c *Curve) Sub(p1, p2 Point) Point {
	return c.Add(p1, c.Neg(p2))
}

// Equal reports whether p1 and p2 are the same affine point.
func (c *Curve) Equal(p1, p2 Point) bool {
	if p1.Infinity || p2.Infinity {
		return p1.Infinity == p2.Infinity
	}
	return p1.X.Cmp(p2.X) == 0 && p1.Y.Cmp(p2.Y) == 0
}
