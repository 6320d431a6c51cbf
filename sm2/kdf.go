package sm2

import (
	"encoding/binary"

	"github.com/sm2kit/sm2core/hash/sm3"
)

// kdf derives outLen bytes from seed using counter-mode SM3 (GB/T
// 32918.4 §6.1): KDF(seed, outLen) = SM3(seed||1) || SM3(seed||2) ...
// truncated to outLen bytes. It reports ok=false when every derived
// byte came out zero, the one case GB/T 32918.4 requires callers to
// detect and retry on with a fresh ephemeral key.
func kdf(seed []byte, outLen int) (out []byte, ok bool) {
	out = make([]byte, 0, outLen)
	var counter uint32 = 1
	var ctrBuf [4]byte
	allZero := true

	for len(out) < outLen {
		binary.BigEndian.PutUint32(ctrBuf[:], counter)
		h := sm3.New()
		h.Write(seed)
		h.Write(ctrBuf[:])
		block := h.Sum(nil)

		remain := outLen - len(out)
		if remain < len(block) {
			block = block[:remain]
		}
		for _, b := range block {
			if b != 0 {
				allZero = false
			}
		}
		out = append(out, block...)
		counter++
	}
	return out, !allZero
}
