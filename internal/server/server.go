// Package server exposes the calculator and forecast store over a small
// JSON API for the editor frontend.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/internal/config"
	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/internal/forecast"
	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/internal/inventory"
	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/pkg/monthkey"
)

type handler struct {
	logger *zap.Logger
	conf   *config.Configuration
	calc   *inventory.Calculator
	store  *forecast.Store
}

// NewHandler constructs the HTTP handler that serves the forecast API.
func NewHandler(logger *zap.Logger, conf *config.Configuration, calc *inventory.Calculator, store *forecast.Store) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &handler{logger: logger, conf: conf, calc: calc, store: store}

	r := mux.NewRouter()
	r.HandleFunc("/api/brands", h.handleBrands).Methods("GET")
	r.HandleFunc("/api/months", h.handleMonths).Methods("GET")
	r.HandleFunc("/api/cards/{brand}/{month}", h.handleCards).Methods("GET")
	r.HandleFunc("/api/forecast/{brand}", h.handleForecastLoad).Methods("GET")
	r.HandleFunc("/api/forecast/{brand}/{month}/{item}", h.handleForecastUpdate).Methods("PUT")
	r.HandleFunc("/api/forecast/{brand}", h.handleForecastClear).Methods("DELETE")

	return r
}

func (h *handler) handleBrands(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.conf.Brands)
}

func (h *handler) handleMonths(w http.ResponseWriter, r *http.Request) {
	months, err := forecast.BuildEditableMonths(h.conf.Forecast.LatestActualMonth, h.conf.Forecast.EditableMonths)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "latest actual month is not configured as a valid month key")
		return
	}
	h.writeJSON(w, http.StatusOK, months)
}

func (h *handler) handleCards(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	brand := vars["brand"]
	month := vars["month"]

	if !monthkey.Valid(month) {
		h.respondError(w, http.StatusBadRequest, "month must be a YYYY.MM key")
		return
	}

	data := h.conf.MonthDataFor(brand, month)
	days := monthkey.DaysIn(month, h.conf.DaysInMonth)
	cards := h.calc.Cards(data, days)

	h.writeJSON(w, http.StatusOK, cards)
}

func (h *handler) handleForecastLoad(w http.ResponseWriter, r *http.Request) {
	brand := mux.Vars(r)["brand"]

	data, ok := h.store.Load(brand)
	if !ok {
		// Absence is an empty record, not an error.
		h.writeJSON(w, http.StatusOK, forecast.StorageData{})
		return
	}
	h.writeJSON(w, http.StatusOK, data)
}

type updateRequest struct {
	Value float64 `json:"value"`
}

type updateResponse struct {
	Saved bool `json:"saved"`
}

func (h *handler) handleForecastUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	brand := vars["brand"]
	month := vars["month"]
	item := forecast.Item(vars["item"])

	if !monthkey.Valid(month) {
		h.respondError(w, http.StatusBadRequest, "month must be a YYYY.MM key")
		return
	}
	if !item.IsValid() {
		h.respondError(w, http.StatusBadRequest, "unknown forecast item")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "request body must be a JSON object with a numeric value")
		return
	}

	if !h.store.UpdateItem(brand, month, item, req.Value) {
		h.respondError(w, http.StatusBadGateway, "failed to persist forecast update")
		return
	}
	h.writeJSON(w, http.StatusOK, updateResponse{Saved: true})
}

func (h *handler) handleForecastClear(w http.ResponseWriter, r *http.Request) {
	brand := mux.Vars(r)["brand"]

	if !h.store.Clear(brand) {
		h.respondError(w, http.StatusBadGateway, "failed to clear forecast data")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.logger.Warn("request failed",
		zap.String("op", "server"),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server"),
			zap.Error(err),
		)
	}
}
