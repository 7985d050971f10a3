// Package rs implements Reed-Solomon encoding and decoding over GF(256)
// with the CCSDS primitive polynomial 0x11d and generator α=2, fixed at
// P=64 parity symbols. The decoder is a from-scratch implementation of the
// Extended Euclidean Algorithm / Chien search / Forney algorithm approach
// used by the zxing family of QR-code Reed-Solomon decoders, since none of
// the retrieved example repositories ship a decoder matching this exact
// field and parameter combination.
package rs

import (
	"errors"
	"fmt"
)

// P is the number of Reed-Solomon parity symbols appended to every
// codeword.
const P = 64

// MaxPayload is the largest payload, in bytes, that fits in a single
// 255-symbol codeword alongside P parity symbols.
const MaxPayload = 255 - P

// ErrPayloadTooLarge is returned at encode time when the payload does not
// fit in a single codeword.
var ErrPayloadTooLarge = errors.New("rs: payload too large for a single codeword")

// ErrUncorrectableErrors is returned at decode time when the received
// codeword has more errors than the code can correct.
var ErrUncorrectableErrors = errors.New("rs: uncorrectable errors")

var generator = buildGenerator(P)

func buildGenerator(parity int) poly {
	g := poly{1}
	for i := 0; i < parity; i++ {
		g = g.multiply(poly{1, gf256.expOf(i)})
	}
	return g
}

// Encode appends P Reed-Solomon parity symbols to payload, returning the
// systematic codeword payload||parity.
func Encode(payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes exceeds max payload of %d", ErrPayloadTooLarge, len(payload), MaxPayload)
	}
	msg := newPoly(append(append([]byte{}, payload...), make([]byte, P)...))
	_, remainder := msg.divide(generator)

	parity := make([]byte, P)
	// remainder has degree < P; right-align it into the P-byte parity slice.
	for i := 0; i <= remainder.degree(); i++ {
		parity[P-1-i] = remainder.coefficient(i)
	}

	codeword := make([]byte, len(payload)+P)
	copy(codeword, payload)
	copy(codeword[len(payload):], parity)
	return codeword, nil
}

// Decode corrects up to floor(P/2) symbol errors in codeword and returns
// the original len(codeword)-P payload bytes.
func Decode(codeword []byte) ([]byte, error) {
	k := len(codeword) - P
	if k < 0 {
		return nil, fmt.Errorf("%w: codeword shorter than parity length", ErrUncorrectableErrors)
	}
	received := newPoly(append([]byte{}, codeword...))

	syndromeCoeffs := make([]byte, P)
	noErrors := true
	for i := 0; i < P; i++ {
		eval := received.evaluateAt(gf256.expOf(i))
		syndromeCoeffs[P-1-i] = eval
		if eval != 0 {
			noErrors = false
		}
	}
	if noErrors {
		return codeword[:k], nil
	}
	syndrome := newPoly(syndromeCoeffs)

	sigma, omega, err := runEuclideanAlgorithm(monomial(P, 1), syndrome, P/2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUncorrectableErrors, err)
	}

	errorLocations, err := findErrorLocations(sigma)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUncorrectableErrors, err)
	}
	errorMagnitudes := findErrorMagnitudes(omega, errorLocations)

	fixed := append([]byte{}, codeword...)
	n := len(fixed)
	for i, loc := range errorLocations {
		position := n - 1 - int(gf256.log[loc])
		if position < 0 || position >= n {
			return nil, fmt.Errorf("%w: error location out of range", ErrUncorrectableErrors)
		}
		fixed[position] ^= errorMagnitudes[i]
	}
	return fixed[:k], nil
}

// runEuclideanAlgorithm finds the error-locator polynomial sigma and
// error-evaluator polynomial omega via the Extended Euclidean Algorithm
// run between x^(2t) and the syndrome polynomial, stopping once the
// remainder's degree drops below t.
func runEuclideanAlgorithm(a, b poly, t int) (sigma, omega poly, err error) {
	if a.degree() < b.degree() {
		a, b = b, a
	}
	rLast, r := a, b
	tLast, tCur := poly{0}, poly{1}

	for 2*r.degree() >= 2*t {
		rLastLast, tLastLast := rLast, tLast
		rLast, tLast = r, tCur

		if rLast.isZero() {
			return nil, nil, errors.New("r_{i-1} was zero")
		}
		r = rLastLast
		q := poly{0}
		inverseLead := invert(rLast.coefficient(rLast.degree()))
		for r.degree() >= rLast.degree() && !r.isZero() {
			degreeDiff := r.degree() - rLast.degree()
			scale := gf256.mul(r.coefficient(r.degree()), inverseLead)
			q = q.add(monomial(degreeDiff, scale))
			r = r.add(rLast.multiplyByMonomial(degreeDiff, scale))
		}
		tCur = q.multiply(tLast).add(tLastLast)
		if r.degree() >= rLast.degree() {
			return nil, nil, errors.New("division algorithm failed to reduce polynomial")
		}
	}

	sigmaTildeAtZero := tCur.coefficient(0)
	if sigmaTildeAtZero == 0 {
		return nil, nil, errors.New("sigma tilde(0) was zero")
	}
	inv := invert(sigmaTildeAtZero)
	return tCur.scale(inv), r.scale(inv), nil
}

// findErrorLocations runs a Chien search: it evaluates sigma at every
// nonzero field element and collects the inverses of the roots.
func findErrorLocations(sigma poly) ([]byte, error) {
	numErrors := sigma.degree()
	if numErrors == 1 {
		return []byte{sigma.coefficient(1)}, nil
	}
	locations := make([]byte, 0, numErrors)
	for i := 1; i < 256 && len(locations) < numErrors; i++ {
		if sigma.evaluateAt(byte(i)) == 0 {
			locations = append(locations, invert(byte(i)))
		}
	}
	if len(locations) != numErrors {
		return nil, fmt.Errorf("error locator degree %d does not match %d roots found", numErrors, len(locations))
	}
	return locations, nil
}

// findErrorMagnitudes applies the Forney algorithm to compute the error
// value at each located position (generator base 0, so no extra scaling by
// the inverse root is required).
func findErrorMagnitudes(omega poly, errorLocations []byte) []byte {
	s := len(errorLocations)
	result := make([]byte, s)
	for i := 0; i < s; i++ {
		xiInverse := invert(errorLocations[i])
		denominator := byte(1)
		for j := 0; j < s; j++ {
			if i == j {
				continue
			}
			denominator = gf256.mul(denominator, 1^gf256.mul(errorLocations[j], xiInverse))
		}
		result[i] = gf256.mul(omega.evaluateAt(xiInverse), invert(denominator))
	}
	return result
}
