package sm2

import (
	"encoding/binary"
	"math/big"

	"github.com/sm2kit/sm2core/hash/sm3"
)

// userZ computes Z = SM3(ENTL || UID || a || b || Gx || Gy || Qx || Qy)
// per GB/T 32918.2 §5.5, memoized on first use since it only depends on
// fixed curve parameters and this key material's UID and public point.
func (km *KeyMaterial) userZ() []byte {
	km.zOnce.Do(func() {
		km.z = computeZ(km.uid, km.Q.X, km.Q.Y)
	})
	return km.z
}

func computeZ(uid []byte, qx, qy *big.Int) []byte {
	entl := uint16(len(uid)) * 8
	h := sm3.New()

	var entlBuf [2]byte
	binary.BigEndian.PutUint16(entlBuf[:], entl)
	h.Write(entlBuf[:])
	h.Write(uid)

	p := Params()
	h.Write(bigToFixed(p.A, CoordSize))
	h.Write(bigToFixed(p.B, CoordSize))
	h.Write(bigToFixed(p.Gx, CoordSize))
	h.Write(bigToFixed(p.Gy, CoordSize))
	h.Write(bigToFixed(qx, CoordSize))
	h.Write(bigToFixed(qy, CoordSize))

	return h.Sum(nil)
}

func bigToFixed(n *big.Int, size int) []byte {
	out := make([]byte, size)
	b := n.Bytes()
	copy(out[size-len(b):], b)
	return out
}

// signHash computes e = SM3(Z || message), interpreted as a big-endian
// integer, the digest that both Sign and Verify operate on.
func signHash(z, msg []byte) *big.Int {
	h := sm3.New()
	h.Write(z)
	h.Write(msg)
	return new(big.Int).SetBytes(h.Sum(nil))
}
