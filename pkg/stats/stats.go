package stats

import "math"

func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

func StdDev(data []float64, mean float64) float64 {
	if len(data) <= 1 {
		return 0
	}
	var sum float64
	for _, v := range data {
		diff := v - mean
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(len(data)))
}

// SampleStdDev uses the n-1 denominator.
func SampleStdDev(data []float64, mean float64) float64 {
	if len(data) <= 1 {
		return 0
	}
	var sum float64
	for _, v := range data {
		diff := v - mean
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(len(data)-1))
}

// CohensD calculates the standardized effect size for two independent
// samples: the mean difference divided by the pooled standard deviation.
func CohensD(g1Mean, g1StdDev float64, g1N int, g2Mean, g2StdDev float64, g2N int) float64 {
	meanDiff := g2Mean - g1Mean

	num := float64(g1N-1)*g1StdDev*g1StdDev + float64(g2N-1)*g2StdDev*g2StdDev
	denom := float64(g1N + g2N - 2)

	pooled := math.Sqrt(num / denom)
	if pooled == 0 {
		return 0
	}
	return meanDiff / pooled
}
