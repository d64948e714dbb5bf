package inventory

import (
	"testing"

	"go.uber.org/zap"
)

func TestCardsRetailPlannedAndWarehouse(t *testing.T) {
	calc := NewCalculator(zap.NewNop(), 2)

	data := &MonthData{
		ORSalesCore: 3000,
		HQORCore:    10000,
	}

	cards := calc.Cards(data, 30)

	// (3000/30) * 7 * 2 = 1400
	if cards.RetailPlanned.Core != 1400 {
		t.Errorf("RetailPlanned.Core = %d, expected 1400", cards.RetailPlanned.Core)
	}
	if cards.RetailPlanned.Outlet != 0 {
		t.Errorf("RetailPlanned.Outlet = %d, expected 0", cards.RetailPlanned.Outlet)
	}
	// 10000 - 1400 = 8600
	if cards.Warehouse.Core != 8600 {
		t.Errorf("Warehouse.Core = %d, expected 8600", cards.Warehouse.Core)
	}
}

func TestCardsZeroDays(t *testing.T) {
	calc := NewCalculator(nil, 2)

	data := &MonthData{
		ORSalesCore: 3000,
		HQORCore:    10000,
	}

	cards := calc.Cards(data, 0)

	if cards.RetailPlanned.Core != 0 {
		t.Errorf("RetailPlanned.Core with zero days = %d, expected 0", cards.RetailPlanned.Core)
	}
	// With no reservation the full headquarters figure remains.
	if cards.Warehouse.Core != 10000 {
		t.Errorf("Warehouse.Core with zero days = %d, expected 10000", cards.Warehouse.Core)
	}
}

func TestCardsWarehouseNeverNegative(t *testing.T) {
	calc := NewCalculator(nil, 4)

	// Reservation far exceeds headquarters stock.
	data := &MonthData{
		ORSalesCore: 30000,
		HQORCore:    1000,
	}

	cards := calc.Cards(data, 30)

	if cards.Warehouse.Core != 0 {
		t.Errorf("Warehouse.Core = %d, expected clamp to 0", cards.Warehouse.Core)
	}
}

func TestCardsWarehouseOutletUnreduced(t *testing.T) {
	calc := NewCalculator(nil, 2)

	data := &MonthData{
		ORSalesCore: 3000,
		HQORCore:    10000,
		HQOROutlet:  4200.6,
	}

	cards := calc.Cards(data, 30)

	if cards.Warehouse.Outlet != 4201 {
		t.Errorf("Warehouse.Outlet = %d, expected the rounded headquarters outlet figure 4201", cards.Warehouse.Outlet)
	}
	if cards.Headquarters.Outlet != 4201 {
		t.Errorf("Headquarters.Outlet = %d, expected 4201", cards.Headquarters.Outlet)
	}
}

func TestCardsPassThroughFields(t *testing.T) {
	calc := NewCalculator(nil, 2)

	data := &MonthData{
		TotalCore:   100.4,
		TotalOutlet: 200.5,
		FRSCore:     300.6,
		FRSOutlet:   400.49,
		HQORCore:    500,
		HQOROutlet:  600,
	}

	cards := calc.Cards(data, 30)

	tests := []struct {
		name     string
		got      int64
		expected int64
	}{
		{"Total core", cards.Total.Core, 100},
		{"Total outlet rounds half away from zero", cards.Total.Outlet, 201},
		{"Agency core", cards.Agency.Core, 301},
		{"Agency outlet", cards.Agency.Outlet, 400},
		{"Headquarters core", cards.Headquarters.Core, 500},
		{"Headquarters outlet", cards.Headquarters.Outlet, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %d, expected %d", tt.got, tt.expected)
			}
		})
	}
}

func TestCardsMissingFieldsTreatedAsZero(t *testing.T) {
	calc := NewCalculator(nil, 2)

	cards := calc.Cards(&MonthData{}, 30)

	if cards != (CardSet{}) {
		t.Errorf("Cards with empty data = %+v, expected all zeros", cards)
	}
}

func TestCardsNilDataAllZero(t *testing.T) {
	calc := NewCalculator(nil, 2)

	cards := calc.Cards(nil, 30)

	if cards != (CardSet{}) {
		t.Errorf("Cards(nil) = %+v, expected all zeros", cards)
	}
}

func TestCardsDeterministic(t *testing.T) {
	calc := NewCalculator(nil, 1.5)

	data := &MonthData{
		ORSalesCore: 1234.5,
		HQORCore:    9876.5,
		HQOROutlet:  11.2,
		TotalCore:   55555,
		FRSOutlet:   42,
	}

	first := calc.Cards(data, 31)
	for i := 0; i < 10; i++ {
		if got := calc.Cards(data, 31); got != first {
			t.Fatalf("Cards is not deterministic: %+v vs %+v", got, first)
		}
	}
}
