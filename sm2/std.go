package sm2

import (
	"crypto/rand"
	"io"
)

// StdEncrypter encrypts data under an SM2 public key in a fixed Mode.
type StdEncrypter struct {
	key   *KeyMaterial
	mode  Mode
	Error error
}

// NewStdEncrypter creates an encrypter bound to km's public point.
func NewStdEncrypter(km *KeyMaterial, mode Mode) *StdEncrypter {
	return &StdEncrypter{key: km, mode: mode}
}

// Encrypt encrypts src, returning the ciphertext in the encrypter's Mode.
func (e *StdEncrypter) Encrypt(src []byte) (dst []byte, err error) {
	if e.Error != nil {
		err = e.Error
		return
	}
	if len(src) == 0 {
		return
	}
	dst, err = Encrypt(e.key, src, e.mode, rand.Reader)
	return
}

// StreamEncrypter buffers plaintext and writes SM2 ciphertext on Close.
type StreamEncrypter struct {
	writer io.Writer
	key    *KeyMaterial
	mode   Mode
	buffer []byte
	Error  error
}

// NewStreamEncrypter returns a WriteCloser that encrypts all written
// data under km's public point and writes the ciphertext on Close.
func NewStreamEncrypter(w io.Writer, km *KeyMaterial, mode Mode) io.WriteCloser {
	return &StreamEncrypter{writer: w, key: km, mode: mode}
}

// Write buffers plaintext to be encrypted.
func (e *StreamEncrypter) Write(p []byte) (n int, err error) {
	if e.Error != nil {
		err = e.Error
		return
	}
	if len(p) == 0 {
		return
	}
	e.buffer = append(e.buffer, p...)
	return len(p), nil
}

// Close encrypts the buffered plaintext and writes the ciphertext to
// the underlying writer, then closes it if it implements io.Closer.
func (e *StreamEncrypter) Close() error {
	if e.Error != nil {
		return e.Error
	}
	if len(e.buffer) == 0 {
		if closer, ok := e.writer.(io.Closer); ok {
			return closer.Close()
		}
		return nil
	}
	dst, err := Encrypt(e.key, e.buffer, e.mode, rand.Reader)
	if err != nil {
		return err
	}
	if _, writeErr := e.writer.Write(dst); writeErr != nil {
		return writeErr
	}
	if closer, ok := e.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// StdDecrypter decrypts an SM2 ciphertext under an SM2 private key.
type StdDecrypter struct {
	key   *KeyMaterial
	mode  Mode
	Error error
}

// NewStdDecrypter creates a decrypter bound to km's private scalar.
func NewStdDecrypter(km *KeyMaterial, mode Mode) *StdDecrypter {
	d := &StdDecrypter{key: km, mode: mode}
	if !km.HasPrivateKey() {
		d.Error = MissingPrivateKeyError{}
	}
	return d
}

// Decrypt decrypts src, returning the recovered plaintext.
func (d *StdDecrypter) Decrypt(src []byte) (dst []byte, err error) {
	if d.Error != nil {
		err = d.Error
		return
	}
	if len(src) == 0 {
		return
	}
	dst, err = Decrypt(d.key, src, d.mode)
	return
}

// StreamDecrypter reads ciphertext from an io.Reader and decrypts it
// once fully read.
type StreamDecrypter struct {
	reader io.Reader
	key    *KeyMaterial
	mode   Mode
	Error  error
}

// NewStreamDecrypter returns a reader-bound decrypter for km's private scalar.
func NewStreamDecrypter(r io.Reader, km *KeyMaterial, mode Mode) *StreamDecrypter {
	d := &StreamDecrypter{reader: r, key: km, mode: mode}
	if !km.HasPrivateKey() {
		d.Error = MissingPrivateKeyError{}
	}
	return d
}

// Decrypt reads the full ciphertext from the underlying reader and
// decrypts it.
func (d *StreamDecrypter) Decrypt() (dst []byte, err error) {
	if d.Error != nil {
		err = d.Error
		return
	}
	ct, err := io.ReadAll(d.reader)
	if err != nil {
		return nil, err
	}
	if len(ct) == 0 {
		return nil, nil
	}
	return Decrypt(d.key, ct, d.mode)
}

// StdSigner signs data using an SM2 private key.
type StdSigner struct {
	key   *KeyMaterial
	Error error
}

// NewStdSigner creates a signer bound to km's private scalar.
func NewStdSigner(km *KeyMaterial) *StdSigner {
	s := &StdSigner{key: km}
	if !km.HasPrivateKey() {
		s.Error = MissingPrivateKeyError{}
	}
	return s
}

// Sign generates a signature for src.
func (s *StdSigner) Sign(src []byte) (sign []byte, err error) {
	if s.Error != nil {
		err = s.Error
		return
	}
	if len(src) == 0 {
		return
	}
	sign, err = Sign(s.key, src, rand.Reader)
	return
}

// StreamSigner buffers data and writes its SM2 signature on Close.
type StreamSigner struct {
	writer io.Writer
	key    *KeyMaterial
	buffer []byte
	Error  error
}

// NewStreamSigner returns a WriteCloser that signs all written data
// with km's private scalar and writes the signature on Close.
func NewStreamSigner(w io.Writer, km *KeyMaterial) io.WriteCloser {
	s := &StreamSigner{writer: w, key: km}
	if !km.HasPrivateKey() {
		s.Error = MissingPrivateKeyError{}
	}
	return s
}

// Write buffers data to be signed.
func (s *StreamSigner) Write(p []byte) (n int, err error) {
	if s.Error != nil {
		err = s.Error
		return
	}
	if len(p) == 0 {
		return
	}
	s.buffer = append(s.buffer, p...)
	return len(p), nil
}

// Close signs the buffered data and writes the signature to the
// underlying writer, then closes it if it implements io.Closer.
func (s *StreamSigner) Close() error {
	if s.Error != nil {
		return s.Error
	}
	if len(s.buffer) == 0 {
		if closer, ok := s.writer.(io.Closer); ok {
			return closer.Close()
		}
		return nil
	}
	sign, err := Sign(s.key, s.buffer, rand.Reader)
	if err != nil {
		return err
	}
	if _, writeErr := s.writer.Write(sign); writeErr != nil {
		return writeErr
	}
	if closer, ok := s.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// StdVerifier verifies data against an SM2 signature using a public key.
type StdVerifier struct {
	key   *KeyMaterial
	Error error
}

// NewStdVerifier creates a verifier bound to km's public point.
func NewStdVerifier(km *KeyMaterial) *StdVerifier {
	return &StdVerifier{key: km}
}

// Verify checks sign against src.
func (v *StdVerifier) Verify(src, sign []byte) (valid bool, err error) {
	if v.Error != nil {
		return false, v.Error
	}
	if len(src) == 0 {
		return false, nil
	}
	if len(sign) == 0 {
		return false, InvalidEncodingError{Reason: "empty signature"}
	}
	return Verify(v.key, src, sign), nil
}

// StreamVerifier reads a signature from an io.Reader and verifies data
// written to it via Write, once Close is called.
type StreamVerifier struct {
	reader   io.Reader
	key      *KeyMaterial
	buffer   []byte
	verified bool
	Error    error
}

// NewStreamVerifier creates a WriteCloser that verifies data written to
// it using the signature read from r.
func NewStreamVerifier(r io.Reader, km *KeyMaterial) io.WriteCloser {
	return &StreamVerifier{reader: r, key: km}
}

// Write buffers data for verification.
func (v *StreamVerifier) Write(p []byte) (n int, err error) {
	if v.Error != nil {
		return 0, v.Error
	}
	if len(p) == 0 {
		return 0, nil
	}
	v.buffer = append(v.buffer, p...)
	return len(p), nil
}

// Verified reports the outcome of the most recent Close call.
func (v *StreamVerifier) Verified() bool { return v.verified }

// Close reads the signature from the underlying reader and verifies
// the buffered data against it.
func (v *StreamVerifier) Close() error {
	if v.Error != nil {
		return v.Error
	}
	sig, err := io.ReadAll(v.reader)
	if err != nil {
		return err
	}
	if len(sig) == 0 {
		return nil
	}
	v.verified = Verify(v.key, v.buffer, sig)
	if closer, ok := v.reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
