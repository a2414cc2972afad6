package pipeline

import "github.com/google/uuid"

// Kind discriminates the parameter an Update carries.
type Kind int

const (
	KindPrice Kind = iota + 1
	KindVolatility
	KindRiskFreeRate
)

// String returns the kind name for log fields.
func (k Kind) String() string {
	switch k {
	case KindPrice:
		return "price"
	case KindVolatility:
		return "volatility"
	case KindRiskFreeRate:
		return "risk_free_rate"
	default:
		return "unknown"
	}
}

// Update is a single parameter value produced by a fetch operation.
// Each update is consumed exactly once by the drain loop. RefreshID
// ties the update back to the refresh request that produced it.
type Update struct {
	Kind      Kind
	Value     float64
	RefreshID uuid.UUID
}
