package forecast

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/internal/storage"
	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/pkg/constants"
)

// Store persists per-brand forecast edits through a storage engine. Every
// operation is total: failures are logged and reported as absence or false,
// never raised to the caller.
type Store struct {
	logger *zap.Logger
	engine storage.Engine
}

// NewStore creates a forecast store over the given engine.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewStore(logger *zap.Logger, engine storage.Engine) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger, engine: engine}
}

// StorageKey derives the engine key holding a brand's forecast blob.
func StorageKey(brand string) string {
	return constants.StorageKeyPrefix + brand
}

// Load returns the persisted forecast for brand. The second return is false
// when nothing is stored; corrupt data is treated the same way after a
// diagnostic log.
func (s *Store) Load(brand string) (StorageData, bool) {
	raw, ok, err := s.engine.Get(StorageKey(brand))
	if err != nil {
		s.logger.Warn("failed to read forecast data",
			zap.String("op", "forecast.Store.Load"),
			zap.String("brand", brand),
			zap.Error(err),
		)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var data StorageData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Warn("discarding corrupt forecast data",
			zap.String("op", "forecast.Store.Load"),
			zap.String("brand", brand),
			zap.Error(err),
		)
		return nil, false
	}
	if data == nil {
		// A stored JSON null decodes without error; treat it as no data.
		return nil, false
	}
	return data, true
}

// Save serializes and writes the brand's full forecast. It reports failure
// through its return value only.
func (s *Store) Save(brand string, data StorageData) bool {
	raw, err := json.Marshal(data)
	if err != nil {
		s.logger.Warn("failed to serialize forecast data",
			zap.String("op", "forecast.Store.Save"),
			zap.String("brand", brand),
			zap.Error(err),
		)
		return false
	}

	if err := s.engine.Set(StorageKey(brand), raw); err != nil {
		s.logger.Warn("failed to write forecast data",
			zap.String("op", "forecast.Store.Save"),
			zap.String("brand", brand),
			zap.Error(err),
		)
		return false
	}
	return true
}

// UpdateItem sets one item within one month and writes the whole record
// back, preserving every other month and every other item in the same
// month. A brand with nothing stored (or with a corrupt blob) starts from an
// empty record; a failing engine read aborts the update so an existing
// record is never overwritten blind.
//
// The read-modify-write is not atomic across concurrent writers; two
// processes editing the same brand can silently drop one writer's edit.
func (s *Store) UpdateItem(brand, month string, item Item, value float64) bool {
	if !item.IsValid() {
		s.logger.Warn("rejecting unknown forecast item",
			zap.String("op", "forecast.Store.UpdateItem"),
			zap.String("brand", brand),
			zap.String("item", string(item)),
		)
		return false
	}

	raw, ok, err := s.engine.Get(StorageKey(brand))
	if err != nil {
		s.logger.Warn("aborting update, failed to read existing forecast data",
			zap.String("op", "forecast.Store.UpdateItem"),
			zap.String("brand", brand),
			zap.Error(err),
		)
		return false
	}

	data := StorageData{}
	if ok {
		if err := json.Unmarshal(raw, &data); err != nil {
			s.logger.Warn("discarding corrupt forecast data",
				zap.String("op", "forecast.Store.UpdateItem"),
				zap.String("brand", brand),
				zap.Error(err),
			)
			data = StorageData{}
		}
		if data == nil {
			data = StorageData{}
		}
	}

	monthData, ok := data[month]
	if !ok {
		monthData = MonthForecast{}
		data[month] = monthData
	}
	monthData[item] = value

	return s.Save(brand, data)
}

// Clear removes the brand's persisted forecast entirely.
func (s *Store) Clear(brand string) bool {
	if err := s.engine.Delete(StorageKey(brand)); err != nil {
		s.logger.Warn("failed to clear forecast data",
			zap.String("op", "forecast.Store.Clear"),
			zap.String("brand", brand),
			zap.Error(err),
		)
		return false
	}
	return true
}
