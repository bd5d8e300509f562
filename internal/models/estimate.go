// internal/models/estimate.go
package models

// MaterialRequest is a price-catalog lookup key. It carries no cached or
// estimated values; it only identifies what to look up and how much of it.
type MaterialRequest struct {
	CategoryPath string  `json:"categoryPath"` // e.g. "flooring/laminate/standard"
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

// MaterialPriceResult is a resolved unit price. Invariant: UnitPrice > 0,
// or the lookup threw instead of returning.
type MaterialPriceResult struct {
	CategoryPath string  `json:"categoryPath"`
	UnitPrice    float64 `json:"unitPrice"`
	Unit         string  `json:"unit"`
}

// LaborRequest is a labor-catalog lookup key for one trade on one process.
type LaborRequest struct {
	Trade     string    `json:"trade"` // e.g. "tiler", "plumber"
	ProcessID ProcessID `json:"processId"`
	Quantity  float64   `json:"quantity"`
}

// LaborRateResult carries productivity and cost figures for a trade.
// Invariant: all three numbers > 0, or the lookup threw.
type LaborRateResult struct {
	Trade            string  `json:"trade"`
	DailyOutput      float64 `json:"dailyOutput"`
	CrewSize         int     `json:"crewSize"`
	RatePerPersonDay float64 `json:"ratePerPersonDay"`
}

// MaterialLine is one priced material row inside a process block.
type MaterialLine struct {
	CategoryPath string  `json:"categoryPath"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unitPrice"`
	Amount       float64 `json:"amount"`
}

// LaborLine is the priced labor row inside a process block.
type LaborLine struct {
	Trade      string  `json:"trade"`
	PersonDays float64 `json:"personDays"`
	Rate       float64 `json:"rate"`
	Multiplier float64 `json:"multiplier"`
	Amount     float64 `json:"amount"`
}

// ProcessEstimateBlock aggregates the priced lines of one process. No
// block may contain a zero-priced material line or a null-rated labor line.
type ProcessEstimateBlock struct {
	ProcessID        ProcessID      `json:"processId"`
	MaterialLines    []MaterialLine `json:"materialLines"`
	LaborLine        LaborLine      `json:"laborLine"`
	MaterialSubtotal float64        `json:"materialSubtotal"`
	LaborSubtotal    float64        `json:"laborSubtotal"`
	BlockTotal       float64        `json:"blockTotal"`
}

// FinalEstimate is the fully aggregated result. All figures are rounded
// exactly once, at assembly.
type FinalEstimate struct {
	Blocks        []ProcessEstimateBlock `json:"blocks"`
	MaterialTotal float64                `json:"materialTotal"`
	LaborTotal    float64                `json:"laborTotal"`
	Contingency   float64                `json:"contingency"`
	VAT           float64                `json:"vat"`
	GrandTotal    float64                `json:"grandTotal"`
	PerPyeong     float64                `json:"perPyeong"`
}
