package curve

import "math/big"

// fastAdd adds two standard-projective points using the formula
// sequence of GB/T 32918.1 Annex A.2.2.1 (point addition, general
// case). It handles either operand being the identity (Z == 0) before
// falling into the algebraic formula, which does not itself handle
// infinity inputs.
func (c *Curve) fastAdd(p1, p2 projPoint) projPoint {
	if p1.Z.Sign() == 0 {
		return p2
	}
	if p2.Z.Sign() == 0 {
		return p1
	}
	f := c.field

	t1 := f.Mul(p1.X, p2.Z)
	t2 := f.Mul(p2.X, p1.Z)
	t3 := f.Sub(t1, t2)
	t2sum := f.Add(t1, t2)
	t4 := f.Mul(p1.Y, p2.Z)
	t5 := f.Sub(t4, f.Mul(p2.Y, p1.Z))
	t6 := f.Mul(p1.Z, p2.Z)
	t7 := f.Mul(t3, t3)
	t8 := f.Mul(t3, t7)
	t9 := f.Sub(f.Mul(t6, f.Mul(t5, t5)), f.Mul(t2sum, t7))

	x3 := f.Mul(t3, t9)
	y3 := f.Sub(f.Mul(t5, f.Sub(f.Mul(t7, t1), t9)), f.Mul(t4, t8))
	z3 := f.Mul(t8, t6)

	if z3.Sign() == 0 {
		// t3 == 0: the x-coordinates matched. Either the points are
		// equal (caller should have doubled) or they are inverses,
		// in which case the sum is the identity.
		return projPoint{X: big.NewInt(0), Y: big.NewInt(1), Z: big.NewInt(0)}
	}
	return projPoint{X: x3, Y: y3, Z: z3}
}

// fastDouble doubles a standard-projective point using the formula
// sequence of GB/T 32918.1 Annex A.2.2.1 (point doubling), specialized
// to the curve's `a` coefficient.
func (c *Curve) fastDouble(p projPoint) projPoint {
	if p.Z.Sign() == 0 || p.Y.Sign() == 0 {
		return projPoint{X: big.NewInt(0), Y: big.NewInt(1), Z: big.NewInt(0)}
	}
	f := c.field
	a := c.Params.A

	t1 := f.Add(f.Mul(big.NewInt(3), f.Mul(p.X, p.X)), f.Mul(a, f.Mul(p.Z, p.Z)))
	t2 := f.Mul(big.NewInt(2), f.Mul(p.Y, p.Z))
	t3 := f.Mul(p.Y, p.Y)
	t4 := f.Mul(t3, f.Mul(p.X, p.Z))
	t5 := f.Mul(t2, t2)
	t6 := f.Sub(f.Mul(t1, t1), f.Mul(big.NewInt(8), t4))

	x3 := f.Mul(t2, t6)
	y3 := f.Sub(f.Mul(f.Sub(f.Mul(big.NewInt(4), t4), t6), t1), f.Mul(big.NewInt(2), f.Mul(t5, t3)))
	z3 := f.Mul(t2, t5)

	return projPoint{X: x3, Y: y3, Z: z3}
}

// ScalarMult returns k*p using the NAF-via-3k trick of GB/T 32918.1
// Annex A.3.2 Algorithm 2: walk the bits of h = 3k and k in lockstep,
// adding ±p whenever the two bit streams disagree. k is reduced modulo
// the curve order first.
func (c *Curve) ScalarMult(p Point, k *big.Int) Point {
	if p.Infinity || k.Sign() == 0 {
		return Infinity()
	}
	kk := new(big.Int).Mod(k, c.Params.N)
	if kk.Sign() == 0 {
		return Infinity()
	}

	h := new(big.Int).Mul(kk, big.NewInt(3))
	neg := c.Neg(p)

	result := c.toProj(p)
	bits := h.BitLen()
	for i := bits - 2; i >= 1; i-- {
		result = c.fastDouble(result)
		hBit := h.Bit(i)
		kBit := kk.Bit(i)
		if hBit == 1 && kBit == 0 {
			result = c.fastAdd(result, c.toProj(p))
		} else if hBit == 0 && kBit == 1 {
			result = c.fastAdd(result, c.toProj(neg))
		}
	}
	return c.toAffine(result)
}

// ScalarBaseMult returns k*G using plain ScalarMult. Callers that need
// the accelerated comb-table path should use a GeneratorCache instead.
func (c *Curve) ScalarBaseMult(k *big.Int) Point {
	return c.ScalarMult(c.Generator(), k)
}
