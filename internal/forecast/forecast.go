// Package forecast defines the editable forecast data structures and
// includes functions for generating forecast months and persisting user
// edits per brand.
package forecast

import (
	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/pkg/monthkey"
)

// Item identifies one editable forecast category. The vocabulary is closed;
// the store rejects anything outside it.
type Item string

const (
	ItemTotal         Item = "total"
	ItemAgency        Item = "agency"
	ItemHeadquarters  Item = "headquarters"
	ItemRetailPlanned Item = "retailPlanned"
	ItemWarehouse     Item = "warehouse"
)

// Items lists every valid forecast item in display order.
var Items = []Item{
	ItemTotal,
	ItemAgency,
	ItemHeadquarters,
	ItemRetailPlanned,
	ItemWarehouse,
}

// IsValid reports whether the item belongs to the forecast vocabulary.
func (i Item) IsValid() bool {
	switch i {
	case ItemTotal, ItemAgency, ItemHeadquarters, ItemRetailPlanned, ItemWarehouse:
		return true
	}
	return false
}

// MonthForecast is one user-edited month: a partial mapping from item to
// amount. Items absent from the map are undefined, not zero.
type MonthForecast map[Item]float64

// StorageData is a brand's full persisted forecast, keyed by dotted month.
type StorageData map[string]MonthForecast

// BuildEditableMonths returns exactly count consecutive month keys strictly
// after latestActualYm, each zero-padded, rolling December into January of
// the following year. A latest-actual month that does not parse as YYYY.MM
// is rejected; a count of zero or less yields an empty sequence.
func BuildEditableMonths(latestActualYm string, count int) ([]string, error) {
	if count < 0 {
		count = 0
	}
	months := make([]string, 0, count)
	current := latestActualYm
	for i := 0; i < count; i++ {
		next, err := monthkey.Next(current)
		if err != nil {
			return nil, err
		}
		months = append(months, next)
		current = next
	}
	return months, nil
}
