package utils

// Clamp limita v ao intervalo [min, max]
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampNps limita um valor de NPS percentual à faixa exibível [0, 100]
func ClampNps(v int) int {
	return Clamp(v, 0, 100)
}
