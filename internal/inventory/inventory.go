// Package inventory defines the raw monthly inventory data model and the
// calculator that derives the core/outlet card figures from it.
package inventory

// MonthData holds one brand's raw figures for one calendar month. All
// amounts are in whole currency units; a field left at its zero value means
// the figure was not reported and is treated as zero everywhere.
type MonthData struct {
	// ORSalesCore is direct retail sales, mainline only.
	ORSalesCore float64 `json:"orSalesCore,omitempty" yaml:"orSalesCore"`
	// HQORCore and HQOROutlet are headquarters-held stock before any buffer
	// deduction.
	HQORCore   float64 `json:"hqOrCore,omitempty" yaml:"hqOrCore"`
	HQOROutlet float64 `json:"hqOrOutlet,omitempty" yaml:"hqOrOutlet"`
	// TotalCore and TotalOutlet are the aggregate figures across all
	// channels (FR + HQ + OR).
	TotalCore   float64 `json:"totalCore,omitempty" yaml:"totalCore"`
	TotalOutlet float64 `json:"totalOutlet,omitempty" yaml:"totalOutlet"`
	// FRSCore and FRSOutlet are the agency-channel figures.
	FRSCore   float64 `json:"frsCore,omitempty" yaml:"frsCore"`
	FRSOutlet float64 `json:"frsOutlet,omitempty" yaml:"frsOutlet"`
}

// CardValue is one category card split into mainline and outlet amounts.
type CardValue struct {
	Core   int64 `json:"core"`
	Outlet int64 `json:"outlet"`
}

// CardSet holds the five category cards derived for one month.
type CardSet struct {
	Total         CardValue `json:"total"`
	Agency        CardValue `json:"agency"`
	Headquarters  CardValue `json:"headquarters"`
	RetailPlanned CardValue `json:"retailPlanned"`
	Warehouse     CardValue `json:"warehouse"`
}
