// Package keypair manages SM2 key pairs: generation, PEM/PKCS#8/SPKI
// serialization, and parsing. CipherOrder picks the wire order of the
// C1/C2/C3 ciphertext components produced by the sm2 package.
package keypair

// CipherOrder specifies the concatenation order of SM2 ciphertext
// components. It controls how the library assembles (encrypt) and
// interprets (decrypt) the C1, C2, C3 parts.
//
// C1: EC point (x1||y1) in uncompressed form; C2: XORed plaintext;
// C3: SM3 digest over x2 || M || y2.
type CipherOrder string

// Supported SM2 ciphertext orders.
const (
	// C1C2C3 means ciphertext bytes are C1 || C2 || C3.
	C1C2C3 CipherOrder = "c1c2c3"
	// C1C3C2 means ciphertext bytes are C1 || C3 || C2.
	C1C3C2 CipherOrder = "c1c3c2"
)
