package utils

import "math"

// NumOrZero normaliza divisões por zero, valores negativos e razões não
// finitas para 0, mantendo métricas derivadas sempre numéricas
func NumOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}

	return f
}
