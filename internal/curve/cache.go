package curve

import "math/big"

// combWidth is the number of fixed 8-bit windows (bytes) a 256-bit
// scalar is split into; combSize is the number of distinct point
// values tabulated per window. Together they form the 32x256 comb
// table described by GB/T 32918's precomputation guidance for
// accelerating fixed-point scalar multiplication.
const (
	combWidth = 32
	combSize  = 256
)

// GeneratorCache is a precomputed comb table bound to one fixed point
// (ordinarily the curve's base point G, but optionally any public key
// that will be used repeatedly, e.g. for verifying many signatures
// against the same key). table[i][j] holds j * 256^i * base, so a
// scalar multiplication becomes 32 table lookups and additions instead
// of a full NAF walk.
type GeneratorCache struct {
	curve *Curve
	table [combWidth][combSize]Point
}

// NewGeneratorCache builds the comb table for base. Construction does
// O(combWidth*combSize) point additions and combWidth*8 doublings; it
// is meant to run once per bound point, not per scalar multiplication.
func NewGeneratorCache(c *Curve, base Point) *GeneratorCache {
	g := &GeneratorCache{curve: c}

	current := base
	for i := 0; i < combWidth; i++ {
		var bitPoints [8]Point
		bitPoints[0] = current
		for b := 1; b < 8; b++ {
			bitPoints[b] = c.Double(bitPoints[b-1])
		}

		row := &g.table[i]
		row[0] = Infinity()
		for j := 1; j < combSize; j++ {
			lowBit := j & (-j)
			idx := bitLen(lowBit) - 1
			row[j] = c.Add(row[j&^lowBit], bitPoints[idx])
		}

		current = c.Double(bitPoints[7])
	}
	return g
}

func bitLen(x int) int {
	n := 0
	for x > 0 {
		x >>= 1
		n++
	}
	return n
}

// Mul returns k * base using the comb table, where base is the point
// NewGeneratorCache was built from. k is reduced modulo the curve order.
func (g *GeneratorCache) Mul(k *big.Int) Point {
	kk := new(big.Int).Mod(k, g.curve.Params.N)
	if kk.Sign() == 0 {
		return Infinity()
	}
	var buf [combWidth]byte
	kb := kk.Bytes()
	copy(buf[combWidth-len(kb):], kb)

	result := Infinity()
	for i := 0; i < combWidth; i++ {
		b := buf[combWidth-1-i]
		result = g.curve.Add(result, g.table[i][b])
	}
	return result
}
