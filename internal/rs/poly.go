package rs

// poly is a polynomial over GF(256) stored with the highest-degree
// coefficient first, mirroring the convention used by the zxing family of
// Reed-Solomon decoders this package's decode path is grounded on.
type poly []byte

// newPoly trims leading zero coefficients, keeping at least one term.
func newPoly(coefficients []byte) poly {
	i := 0
	for i < len(coefficients)-1 && coefficients[i] == 0 {
		i++
	}
	return poly(coefficients[i:])
}

func monomial(degree int, coeff byte) poly {
	if coeff == 0 {
		return poly{0}
	}
	p := make(poly, degree+1)
	p[0] = coeff
	return p
}

func (p poly) degree() int {
	return len(p) - 1
}

func (p poly) isZero() bool {
	return len(p) == 1 && p[0] == 0
}

// coefficient returns the coefficient of x^degree.
func (p poly) coefficient(degree int) byte {
	if degree < 0 || degree > p.degree() {
		return 0
	}
	return p[len(p)-1-degree]
}

func (p poly) evaluateAt(x byte) byte {
	if x == 0 {
		return p.coefficient(0)
	}
	result := p[0]
	for i := 1; i < len(p); i++ {
		result = gf256.mul(x, result) ^ p[i]
	}
	return result
}

func (p poly) add(q poly) poly {
	if p.isZero() {
		return q
	}
	if q.isZero() {
		return p
	}
	small, large := p, q
	if len(small) > len(large) {
		small, large = large, small
	}
	diff := len(large) - len(small)
	out := make(poly, len(large))
	copy(out, large[:diff])
	for i := diff; i < len(large); i++ {
		out[i] = small[i-diff] ^ large[i]
	}
	return newPoly(out)
}

func (p poly) multiply(q poly) poly {
	if p.isZero() || q.isZero() {
		return poly{0}
	}
	out := make(poly, len(p)+len(q)-1)
	for i, pc := range p {
		if pc == 0 {
			continue
		}
		for j, qc := range q {
			if qc == 0 {
				continue
			}
			out[i+j] ^= gf256.mul(pc, qc)
		}
	}
	return newPoly(out)
}

func (p poly) multiplyByMonomial(degree int, coeff byte) poly {
	if coeff == 0 {
		return poly{0}
	}
	out := make(poly, len(p)+degree)
	for i, pc := range p {
		out[i] = gf256.mul(pc, coeff)
	}
	return newPoly(out)
}

func (p poly) scale(coeff byte) poly {
	if coeff == 0 {
		return poly{0}
	}
	if coeff == 1 {
		return p
	}
	out := make(poly, len(p))
	for i, pc := range p {
		out[i] = gf256.mul(pc, coeff)
	}
	return out
}

// divide performs polynomial long division, returning quotient and
// remainder such that p == quotient*other + remainder.
func (p poly) divide(other poly) (quotient poly, remainder poly) {
	quotient = poly{0}
	remainder = p
	inverseLead := invert(other.coefficient(other.degree()))
	for remainder.degree() >= other.degree() && !remainder.isZero() {
		degreeDiff := remainder.degree() - other.degree()
		scale := gf256.mul(remainder.coefficient(remainder.degree()), inverseLead)
		quotient = quotient.add(monomial(degreeDiff, scale))
		remainder = remainder.add(other.multiplyByMonomial(degreeDiff, scale))
	}
	return quotient, remainder
}

// invert returns the multiplicative inverse of a nonzero GF(256) element.
func invert(a byte) byte {
	if a == 0 {
		panic("rs: no multiplicative inverse of zero")
	}
	return gf256.exp[255-int(gf256.log[a])]
}
