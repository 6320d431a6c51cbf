package sm2

import (
	"fmt"

	"github.com/sm2kit/sm2core/internal/asn1ber"
	"github.com/sm2kit/sm2core/internal/curve"
)

// InvalidPointError wraps a curve-level point validation failure.
type InvalidPointError struct {
	Err error
}

func (e InvalidPointError) Error() string {
	return fmt.Sprintf("sm2: invalid point: %v", e.Err)
}

func (e InvalidPointError) Unwrap() error { return e.Err }

// InvalidEncodingError means a signature or ciphertext's byte framing
// did not match any supported shape.
type InvalidEncodingError struct {
	Reason string
}

func (e InvalidEncodingError) Error() string {
	return fmt.Sprintf("sm2: invalid encoding: %s", e.Reason)
}

// NotASquareError means a compressed point's x-coordinate has no
// corresponding y on the curve.
type NotASquareError struct {
	Err error
}

func (e NotASquareError) Error() string {
	return fmt.Sprintf("sm2: not a quadratic residue: %v", e.Err)
}

// KeyMismatchError means a supplied public key does not correspond to
// the supplied private scalar.
type KeyMismatchError struct{}

func (e KeyMismatchError) Error() string {
	return "sm2: public key does not match private key"
}

// MissingPrivateKeyError means an operation that requires a private
// scalar (sign, decrypt) was invoked on public-only key material.
type MissingPrivateKeyError struct{}

func (e MissingPrivateKeyError) Error() string {
	return "sm2: operation requires a private key"
}

// EmptyPlaintextError means Encrypt was called with zero-length input.
type EmptyPlaintextError struct{}

func (e EmptyPlaintextError) Error() string {
	return "sm2: plaintext must not be empty"
}

// UnknownModeError means a ciphertext Mode value outside the four
// supported modes was used.
type UnknownModeError struct {
	Mode Mode
}

func (e UnknownModeError) Error() string {
	return fmt.Sprintf("sm2: unknown ciphertext mode %q", string(e.Mode))
}

// HashMismatchError means the ciphertext's embedded MAC did not match
// the recomputed digest over the recovered plaintext.
type HashMismatchError struct{}

func (e HashMismatchError) Error() string {
	return "sm2: ciphertext MAC does not match"
}

// ASN1Error wraps a BER decode failure encountered while parsing a
// signature or ciphertext.
type ASN1Error struct {
	Err error
}

func (e ASN1Error) Error() string {
	return fmt.Sprintf("sm2: ASN.1 decode failed: %v", e.Err)
}

func (e ASN1Error) Unwrap() error { return e.Err }

func wrapPointError(err error) error {
	if err == nil {
		return nil
	}
	switch err.(type) {
	case curve.InvalidEncodingError:
		return InvalidEncodingError{Reason: err.Error()}
	default:
		return InvalidPointError{Err: err}
	}
}

func wrapASN1Error(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(asn1ber.Error); ok {
		return ASN1Error{Err: err}
	}
	return err
}
