package network

import "math"

// Sigmoid is the logistic activation σ(x) = 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// SigmoidPrime is the derivative of Sigmoid: σ'(x) = σ(x)·(1-σ(x)).
func SigmoidPrime(x float64) float64 {
	s := Sigmoid(x)
	return s * (1.0 - s)
}
