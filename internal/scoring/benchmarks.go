package scoring

import "github.com/spacesedan/adforge/internal/models"

type benchmark struct {
	avgScore            float64
	excellentThreshold  float64
	goodThreshold       float64
	acceptableThreshold float64
}

var industryBenchmarks = map[string]benchmark{
	models.BusinessTypeEsoteric: {
		avgScore:            68.5,
		excellentThreshold:  85,
		goodThreshold:       70,
		acceptableThreshold: 55,
	},
	models.BusinessTypeGeneric: {
		avgScore:            72.0,
		excellentThreshold:  88,
		goodThreshold:       75,
		acceptableThreshold: 60,
	},
}

func compareToBenchmark(industry string, score float64) *models.BenchmarkComparison {
	b, ok := industryBenchmarks[industry]
	if !ok {
		industry = models.BusinessTypeGeneric
		b = industryBenchmarks[industry]
	}

	var standing string
	switch {
	case score >= b.excellentThreshold:
		standing = "Excelente"
	case score >= b.goodThreshold:
		standing = "Bueno"
	case score >= b.acceptableThreshold:
		standing = "Aceptable"
	default:
		standing = "Bajo"
	}

	return &models.BenchmarkComparison{
		Industry:        industry,
		IndustryAverage: b.avgScore,
		Difference:      round1(score - b.avgScore),
		Standing:        standing,
		Percentile:      estimatePercentile(score),
	}
}

func estimatePercentile(score float64) int {
	switch {
	case score >= 90:
		return 95
	case score >= 85:
		return 90
	case score >= 80:
		return 85
	case score >= 75:
		return 75
	case score >= 70:
		return 65
	case score >= 65:
		return 55
	case score >= 60:
		return 45
	case score >= 55:
		return 35
	default:
		return 25
	}
}

// Grade maps an overall score onto the fixed letter scale.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "A-"
	case score >= 75:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 65:
		return "B-"
	case score >= 60:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 50:
		return "C-"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}
