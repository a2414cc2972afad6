package marketdata

// Bar is a single daily quote bar.
type Bar struct {
	Timestamp int64   // Unix seconds
	Close     float64 // Daily close price
}

// Wire types for provider JSON responses.

// chartWire is the provider's chart endpoint envelope.
type chartWire struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// toBars converts the wire envelope to the internal bar sequence,
// preserving chronological order.
func (w *chartWire) toBars() []Bar {
	if len(w.Chart.Result) == 0 || len(w.Chart.Result[0].Indicators.Quote) == 0 {
		return nil
	}
	res := w.Chart.Result[0]
	closes := res.Indicators.Quote[0].Close

	bars := make([]Bar, 0, len(closes))
	for i, c := range closes {
		var ts int64
		if i < len(res.Timestamp) {
			ts = res.Timestamp[i]
		}
		bars = append(bars, Bar{Timestamp: ts, Close: c})
	}
	return bars
}
