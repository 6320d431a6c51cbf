// Package field implements modular arithmetic over an odd prime field,
// parametrized by an explicit modulus rather than a single hard-coded
// curve prime. It backs both the SM2 base field (coordinate arithmetic)
// and the SM2 scalar field (signature math modulo the curve order n).
package field

import (
	"math/big"
	"sync"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Field holds the modulus for a set of arithmetic operations and the
// lazily-built tables Sqrt needs for the general Tonelli–Shanks case.
// A Field is safe for concurrent use: the Tonelli–Shanks tables are
// built at most once, guarded by sync.Once.
type Field struct {
	p *big.Int

	tsOnce     sync.Once
	tsQ        *big.Int // p-1 = q * 2^s, q odd
	tsS        uint
	nonResidue *big.Int // a fixed quadratic non-residue mod p
	pow2p4     *big.Int // 2^((p-1)/4) mod p, used by the p%8==5 case
}

// New returns a Field over modulus p. p must be an odd integer greater
// than 2; New does not verify primality (the caller supplies a known
// prime, e.g. the SM2 base field prime or curve order).
func New(p *big.Int) (*Field, error) {
	if p.Sign() <= 0 || p.Cmp(big.NewInt(2)) <= 0 || p.Bit(0) == 0 {
		return nil, InvalidModulusError{Modulus: p.String()}
	}
	return &Field{p: new(big.Int).Set(p)}, nil
}

// Modulus returns the field's prime modulus.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

func (f *Field) reduce(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, f.p)
}

// Add returns (a + b) mod p.
func (f *Field) Add(a, b *big.Int) *big.Int {
	return f.reduce(new(big.Int).Add(a, b))
}

// Sub returns (a - b) mod p.
func (f *Field) Sub(a, b *big.Int) *big.Int {
	return f.reduce(new(big.Int).Sub(a, b))
}

// Mul returns (a * b) mod p.
func (f *Field) Mul(a, b *big.Int) *big.Int {
	return f.reduce(new(big.Int).Mul(a, b))
}

// Neg returns (-a) mod p.
func (f *Field) Neg(a *big.Int) *big.Int {
	return f.reduce(new(big.Int).Neg(a))
}

// Pow returns (base^exp) mod p via left-to-right square-and-multiply.
// exp is treated as a non-negative integer.
func (f *Field) Pow(base, exp *big.Int) *big.Int {
	result := new(big.Int).Set(one)
	b := f.reduce(base)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = f.Mul(result, result)
		if exp.Bit(i) == 1 {
			result = f.Mul(result, b)
		}
	}
	return result
}

// Inverse returns the multiplicative inverse of a modulo p using the
// extended Euclidean algorithm. It returns NotInvertibleError if a is
// congruent to 0 mod p.
func (f *Field) Inverse(a *big.Int) (*big.Int, error) {
	aa := f.reduce(a)
	if aa.Sign() == 0 {
		return nil, NotInvertibleError{Value: a.String()}
	}
	// Standard iterative extended GCD: find x such that aa*x + p*y = gcd(aa,p).
	oldR, r := new(big.Int).Set(aa), new(big.Int).Set(f.p)
	oldS, s := big.NewInt(1), big.NewInt(0)
	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Div(oldR, r)
		oldR, r = r, tmp.Sub(oldR, tmp.Mul(q, r))
		tmp = new(big.Int)
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
	}
	if oldR.Cmp(one) != 0 {
		return nil, NotInvertibleError{Value: a.String()}
	}
	return f.reduce(oldS), nil
}

// Div returns (a / b) mod p, i.e. a * Inverse(b).
func (f *Field) Div(a, b *big.Int) (*big.Int, error) {
	inv, err := f.Inverse(b)
	if err != nil {
		return nil, err
	}
	return f.Mul(a, inv), nil
}

// Legendre computes the Legendre symbol (a/p) using quadratic
// reciprocity: 1 if a is a nonzero quadratic residue, -1 if a is a
// non-residue, 0 if a is congruent to 0 mod p.
func (f *Field) Legendre(a *big.Int) int {
	x := f.reduce(a)
	if x.Sign() == 0 {
		return 0
	}
	p := new(big.Int).Set(f.p)
	result := 1
	for x.Sign() != 0 {
		for x.Bit(0) == 0 {
			x = new(big.Int).Rsh(x, 1)
			r := new(big.Int).Mod(p, big.NewInt(8)).Int64()
			if r == 3 || r == 5 {
				result = -result
			}
		}
		x, p = p, x
		if new(big.Int).Mod(x, big.NewInt(4)).Int64() == 3 && new(big.Int).Mod(p, big.NewInt(4)).Int64() == 3 {
			result = -result
		}
		x = new(big.Int).Mod(x, p)
	}
	if p.Cmp(one) == 0 {
		return result
	}
	return 0
}

// IsSquare reports whether a is a quadratic residue modulo p.
func (f *Field) IsSquare(a *big.Int) bool {
	return f.Legendre(a) >= 0
}

// initTonelliShanks factors p-1 = q * 2^s with q odd and finds a fixed
// quadratic non-residue, building the tables the general Sqrt case
// needs. It runs at most once per Field.
func (f *Field) initTonelliShanks() {
	f.tsOnce.Do(func() {
		q := new(big.Int).Sub(f.p, one)
		s := uint(0)
		for q.Bit(0) == 0 {
			q.Rsh(q, 1)
			s++
		}
		f.tsQ = q
		f.tsS = s

		nr := big.NewInt(2)
		for f.Legendre(nr) != -1 {
			nr.Add(nr, one)
		}
		f.nonResidue = nr

		exp := new(big.Int).Rsh(new(big.Int).Sub(f.p, one), 2) // (p-1)/4
		f.pow2p4 = f.Pow(two, exp)
	})
}

// Sqrt returns a square root of a modulo p, if one exists. It picks
// the fast path when p % 4 == 3 or p % 8 == 5, and falls back to
// general Tonelli–Shanks otherwise. Returns NotASquareError if a is a
// non-residue.
func (f *Field) Sqrt(a *big.Int) (*big.Int, error) {
	aa := f.reduce(a)
	if aa.Sign() == 0 {
		return big.NewInt(0), nil
	}
	if f.Legendre(aa) != 1 {
		return nil, NotASquareError{Value: a.String()}
	}

	pMod4 := new(big.Int).Mod(f.p, big.NewInt(4)).Int64()
	if pMod4 == 3 {
		exp := new(big.Int).Rsh(new(big.Int).Add(f.p, one), 2) // (p+1)/4
		return f.Pow(aa, exp), nil
	}

	pMod8 := new(big.Int).Mod(f.p, big.NewInt(8)).Int64()
	if pMod8 == 5 {
		f.initTonelliShanks()
		exp := new(big.Int).Rsh(new(big.Int).Add(f.p, big.NewInt(3)), 3) // (p+3)/8
		candidate := f.Pow(aa, exp)
		if f.Mul(candidate, candidate).Cmp(aa) == 0 {
			return candidate, nil
		}
		return f.Mul(candidate, f.pow2p4), nil
	}

	return f.sqrtTonelliShanks(aa)
}

// sqrtTonelliShanks implements the general Tonelli–Shanks algorithm
// using the per-Field cached factorization p-1 = q * 2^s and fixed
// non-residue built by initTonelliShanks.
func (f *Field) sqrtTonelliShanks(a *big.Int) (*big.Int, error) {
	f.initTonelliShanks()

	m := f.tsS
	c := f.Pow(f.nonResidue, f.tsQ)
	t := f.Pow(a, f.tsQ)
	exp := new(big.Int).Rsh(new(big.Int).Add(f.tsQ, one), 1) // (q+1)/2
	r := f.Pow(a, exp)

	for t.Cmp(one) != 0 {
		// Find the least i, 0 < i < m, such that t^(2^i) == 1.
		i := uint(0)
		tt := new(big.Int).Set(t)
		for tt.Cmp(one) != 0 {
			tt = f.Mul(tt, tt)
			i++
			if i >= m {
				return nil, NotASquareError{Value: a.String()}
			}
		}
		b := c
		for j := uint(0); j < m-i-1; j++ {
			b = f.Mul(b, b)
		}
		m = i
		c = f.Mul(b, b)
		t = f.Mul(t, c)
		r = f.Mul(r, b)
	}
	return r, nil
}
