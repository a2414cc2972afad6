package marketdata

import (
	"math"

	"github.com/montanaflynn/stats"
)

// LogReturns computes ln(close[i]/close[i-1]) over consecutive closes,
// skipping pairs where the previous close is not positive.
func LogReturns(closes []float64) []float64 {
	var returns []float64
	for i := 1; i < len(closes); i++ {
		if closes[i-1] > 0 {
			returns = append(returns, math.Log(closes[i]/closes[i-1]))
		}
	}
	return returns
}

// HistoricalVolatility estimates annualized volatility, as a percentage,
// from a chronological close-price series. The estimator is the
// Bessel-corrected sample standard deviation of daily log returns,
// scaled by sqrt(252)*100. Returns ok=false for series shorter than
// two bars.
func HistoricalVolatility(closes []float64) (float64, bool) {
	if len(closes) < 2 {
		return 0, false
	}

	returns := LogReturns(closes)
	if len(returns) == 0 {
		return 0, false
	}

	variance, err := stats.SampleVariance(returns)
	if err != nil {
		return 0, false
	}

	return math.Sqrt(variance) * math.Sqrt(252) * 100, true
}
