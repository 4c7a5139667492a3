package analytics

import "math"

const growthRateBound = 50.0

// GrowthRate deriva uma taxa de crescimento composta por período a partir de
// uma série ordenada. Apenas valores estritamente positivos participam do
// cálculo; com menos de dois sobreviventes a taxa é zero. O resultado é
// limitado a [-50, 50].
func GrowthRate(series []float64) float64 {
	positives := make([]float64, 0, len(series))
	for _, v := range series {
		if v > 0 {
			positives = append(positives, v)
		}
	}

	if len(positives) < 2 {
		return 0
	}

	first := positives[0]
	last := positives[len(positives)-1]
	rate := (math.Pow(last/first, 1/float64(len(positives))) - 1) * 100

	if rate > growthRateBound {
		return growthRateBound
	}
	if rate < -growthRateBound {
		return -growthRateBound
	}
	return rate
}
