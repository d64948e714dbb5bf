package inventory

import (
	"go.uber.org/zap"

	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/pkg/constants"
	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/pkg/mathutil"
)

// Calculator derives the monthly card figures from raw data. It is pure and
// deterministic; identical inputs always produce identical card sets.
type Calculator struct {
	logger    *zap.Logger
	stockWeek float64
}

// NewCalculator creates a calculator with the given stock-week buffer.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewCalculator(logger *zap.Logger, stockWeek float64) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger, stockWeek: stockWeek}
}

// Cards derives the five category cards for one month of raw data.
//
// Retail-planned core reserves stockWeek weeks of the month's daily sales
// rate; a zero day count yields a zero reservation rather than dividing by
// zero. Warehouse core is the headquarters core stock remaining after that
// reservation, floored at zero; warehouse outlet is the full headquarters
// outlet figure since no buffer concept applies to the outlet channel. The
// remaining cards read their raw fields directly. A nil data record yields
// an all-zero card set.
func (c *Calculator) Cards(data *MonthData, days int) CardSet {
	if data == nil {
		return CardSet{}
	}

	var retailPlannedCore int64
	if days != 0 {
		retailPlannedCore = mathutil.RoundAmount(data.ORSalesCore / float64(days) * constants.DaysPerWeek * c.stockWeek)
	}

	warehouseCore := mathutil.ClampNonNegative(mathutil.RoundAmount(data.HQORCore - float64(retailPlannedCore)))

	cards := CardSet{
		Total: CardValue{
			Core:   mathutil.RoundAmount(data.TotalCore),
			Outlet: mathutil.RoundAmount(data.TotalOutlet),
		},
		Agency: CardValue{
			Core:   mathutil.RoundAmount(data.FRSCore),
			Outlet: mathutil.RoundAmount(data.FRSOutlet),
		},
		Headquarters: CardValue{
			Core:   mathutil.RoundAmount(data.HQORCore),
			Outlet: mathutil.RoundAmount(data.HQOROutlet),
		},
		RetailPlanned: CardValue{
			Core:   retailPlannedCore,
			Outlet: 0,
		},
		Warehouse: CardValue{
			Core:   warehouseCore,
			Outlet: mathutil.RoundAmount(data.HQOROutlet),
		},
	}

	c.logger.Debug("derived card set",
		zap.Int("days", days),
		zap.Float64("stockWeek", c.stockWeek),
		zap.Int64("retailPlannedCore", retailPlannedCore),
		zap.Int64("warehouseCore", warehouseCore),
	)

	return cards
}
