package gauss

import "math"

const twoPi = 2 * math.Pi

// Quadrature order for the reduced integral on [0, a], 0 < a <= 1.
// The integrand is smooth there, so a fixed-order rule reaches
// near machine precision.
const glOrder = 24

var glNodes, glWeights [glOrder]float64

func init() {
	// Gauss-Legendre nodes and weights on [-1,1], found by Newton
	// iteration on the Legendre recurrence.
	for i := 0; i < (glOrder+1)/2; i++ {
		x := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(glOrder) + 0.5))
		var dp float64
		for iter := 0; iter < 64; iter++ {
			p0, p1 := 1.0, x
			for k := 2; k <= glOrder; k++ {
				p0, p1 = p1, ((2*float64(k)-1)*x*p1-(float64(k)-1)*p0)/float64(k)
			}
			dp = float64(glOrder) * (x*p1 - p0) / (x*x - 1)
			dx := p1 / dp
			x -= dx
			if math.Abs(dx) < 1e-15 {
				break
			}
		}
		w := 2 / ((1 - x*x) * dp * dp)
		glNodes[i], glWeights[i] = x, w
		glNodes[glOrder-1-i], glWeights[glOrder-1-i] = -x, w
	}
}

// OwenT evaluates Owen's T function
//
//	T(h, a) = (1/2pi) * Integral_0^a exp(-h^2(1+t^2)/2) / (1+t^2) dt,
//
// the probability that a standard bivariate normal falls in the wedge
// between the ray at angle atan(a) and the horizontal, beyond h.
// Defined for all real h and a; T is even in h and odd in a.
func OwenT(h, a float64) float64 {
	if math.IsNaN(h) || math.IsNaN(a) {
		return math.NaN()
	}
	if a == 0 {
		return 0
	}
	if h < 0 {
		h = -h
	}
	if h == 0 {
		return math.Atan(a) / twoPi
	}
	if a < 0 {
		return -OwenT(h, -a)
	}
	if a > 1 {
		// Reduce to a <= 1: T(h,a) = Phi(h)/2 + Phi(ah)/2
		//   - Phi(h)Phi(ah) - T(ah, 1/a).
		ph, pah := Phi(h), Phi(a*h)
		return 0.5*ph + 0.5*pah - ph*pah - OwenT(a*h, 1/a)
	}
	half := 0.5 * a
	hh := 0.5 * h * h
	var sum float64
	for i := range glNodes {
		t := half * (glNodes[i] + 1)
		sum += glWeights[i] * math.Exp(-hh*(1+t*t)) / (1 + t*t)
	}
	return half * sum / twoPi
}
