package pricing

import "math"

// TradingDaysPerYear is the annualization divisor for trading-day counts.
const TradingDaysPerYear = 252.0

// Inputs holds the five Black-Scholes parameters in model units:
// time in years, rate continuously compounded, volatility as a fraction.
type Inputs struct {
	Spot         float64 // Current underlying price (> 0)
	Strike       float64 // Exercise price (> 0)
	TimeToExpiry float64 // Remaining life in years (> 0)
	RiskFreeRate float64 // Continuously-compounded annual rate
	Volatility   float64 // Annualized, as a fraction (> 0)
}

// Greeks holds call-side risk sensitivities.
type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"` // Per trading day
	Vega  float64 `json:"vega"`  // Per 1 percentage-point vol change
}

// Result is the output of one pricing pass. It is always recomputed
// fresh from Inputs, never cached or mutated in place.
type Result struct {
	CallPrice float64 `json:"call_price"`
	PutPrice  float64 `json:"put_price"`
	Greeks    Greeks  `json:"greeks"`
}

// InputsFromDisplay converts presentation-layer units (trading days,
// nominal annual rate percent, volatility percent) to model units.
func InputsFromDisplay(spot, strike, days, ratePct, volPct float64) Inputs {
	return Inputs{
		Spot:         spot,
		Strike:       strike,
		TimeToExpiry: days / TradingDaysPerYear,
		RiskFreeRate: math.Log(1 + ratePct/100),
		Volatility:   volPct / 100,
	}
}

// PriceAndGreeks computes call and put fair values and call-side Greeks.
// Inputs are not validated: T<=0 or sigma<=0 yields NaN/Inf outputs,
// which propagate into the Result unchanged.
func PriceAndGreeks(in Inputs) Result {
	sqrtT := math.Sqrt(in.TimeToExpiry)
	d1 := (math.Log(in.Spot/in.Strike) + (in.RiskFreeRate+0.5*in.Volatility*in.Volatility)*in.TimeToExpiry) /
		(in.Volatility * sqrtT)
	d2 := d1 - in.Volatility*sqrtT

	discount := math.Exp(-in.RiskFreeRate * in.TimeToExpiry)
	call := in.Spot*normCDF(d1) - in.Strike*discount*normCDF(d2)
	put := in.Strike*discount*normCDF(-d2) - in.Spot*normCDF(-d1)

	pdfD1 := normPDF(d1)
	return Result{
		CallPrice: call,
		PutPrice:  put,
		Greeks: Greeks{
			Delta: normCDF(d1),
			Gamma: pdfD1 / (in.Spot * in.Volatility * sqrtT),
			Vega:  in.Spot * sqrtT * pdfD1 / 100,
			Theta: (-(in.Spot*pdfD1*in.Volatility)/(2*sqrtT) -
				in.RiskFreeRate*in.Strike*discount*normCDF(d2)) / TradingDaysPerYear,
		},
	}
}

// normCDF is the standard normal cumulative distribution function.
func normCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// normPDF is the standard normal density.
func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}
