package curve

import "math/big"

// coordSize returns the fixed-width byte length of a coordinate for
// this curve (32 for SM2's 256-bit field).
func (c *Curve) coordSize() int {
	return (c.Params.BitSize + 7) / 8
}

func padLeft(b []byte, size int) []byte {
	if len(b) >= size {
		return b[len(b)-size:]
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}

// Encode serializes p as a SEC1 octet string. When compressed is true
// the output is the 0x02/0x03-prefixed compressed form; otherwise it
// is the 0x04-prefixed uncompressed form. The identity element encodes
// as a single 0x00 byte.
func (c *Curve) Encode(p Point, compressed bool) []byte {
	size := c.coordSize()
	if p.Infinity {
		return []byte{0x00}
	}
	xb := padLeft(p.X.Bytes(), size)
	if !compressed {
		yb := padLeft(p.Y.Bytes(), size)
		out := make([]byte, 0, 1+2*size)
		out = append(out, 0x04)
		out = append(out, xb...)
		out = append(out, yb...)
		return out
	}
	prefix := byte(0x02)
	if p.Y.Bit(0) == 1 {
		prefix = 0x03
	}
	out := make([]byte, 0, 1+size)
	out = append(out, prefix)
	out = append(out, xb...)
	return out
}

// Decode parses a SEC1-encoded point: the identity sentinel 0x00, an
// uncompressed point with prefix 0x04 (0x06/0x07 accepted as legacy
// hybrid-form aliases of 0x04, ignoring the parity hint they carry),
// or a compressed point with prefix 0x02/0x03. A bare (2*coordSize)
// byte string with no prefix is also accepted as raw X||Y, matching
// the encoding some peers emit. With 1-byte coordinates the raw and
// compressed lengths coincide; a leading 0x02/0x03 is then read as the
// compressed form.
func (c *Curve) Decode(data []byte) (Point, error) {
	size := c.coordSize()
	if len(data) == 1 && data[0] == 0x00 {
		return Infinity(), nil
	}
	switch {
	case len(data) == 2*size && !(size == 1 && (data[0] == 0x02 || data[0] == 0x03)):
		x := new(big.Int).SetBytes(data[:size])
		y := new(big.Int).SetBytes(data[size:])
		return c.NewPoint(x, y)
	case len(data) == 2*size+1:
		switch data[0] {
		case 0x04, 0x06, 0x07:
			x := new(big.Int).SetBytes(data[1 : 1+size])
			y := new(big.Int).SetBytes(data[1+size:])
			return c.NewPoint(x, y)
		}
		return Point{}, InvalidEncodingError{Reason: "unrecognized uncompressed point prefix"}
	case len(data) == size+1:
		if data[0] != 0x02 && data[0] != 0x03 {
			return Point{}, InvalidEncodingError{Reason: "unrecognized compressed point prefix"}
		}
		x := new(big.Int).SetBytes(data[1:])
		y, err := c.decompressY(x, data[0] == 0x03)
		if err != nil {
			return Point{}, err
		}
		return c.NewPoint(x, y)
	default:
		return Point{}, InvalidEncodingError{Reason: "unexpected point encoding length"}
	}
}

// decompressY recovers y from x and the desired parity by solving
// y² = x³ + ax + b for y via the field's Sqrt, then picking the root
// whose least significant bit matches wantOdd.
func (c *Curve) decompressY(x *big.Int, wantOdd bool) (*big.Int, error) {
	f := c.field
	rhs := f.Add(f.Add(f.Mul(f.Mul(x, x), x), f.Mul(c.Params.A, x)), c.Params.B)
	y, err := f.Sqrt(rhs)
	if err != nil {
		return nil, InvalidPointError{X: x, Y: nil}
	}
	if (y.Bit(0) == 1) != wantOdd {
		y = f.Neg(y)
	}
	return y, nil
}
