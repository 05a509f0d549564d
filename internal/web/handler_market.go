package web

import (
	"net/http"

	"github.com/krishimitra/krishimitra/internal/domain"
	"github.com/krishimitra/krishimitra/internal/service"
)

func (s *Server) filteredPrices(r *http.Request) ([]domain.MarketPrice, error) {
	prices, err := s.prices.List(r.Context())
	if err != nil {
		return nil, err
	}
	q := r.URL.Query()
	return service.FilterPrices(prices, q.Get("crop"), q.Get("district")), nil
}

func (s *Server) handleMarketPrices(w http.ResponseWriter, r *http.Request) {
	filtered, err := s.filteredPrices(r)
	if err != nil {
		s.logger.Error("list market prices failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "Failed to fetch market prices")
		return
	}
	s.writeJSON(w, http.StatusOK, filtered)
}

func (s *Server) handleMarketPricesExport(w http.ResponseWriter, r *http.Request) {
	filtered, err := s.filteredPrices(r)
	if err != nil {
		s.logger.Error("export market prices failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "Failed to fetch market prices")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="market_prices.csv"`)
	if _, err := w.Write([]byte(service.ExportCSV(filtered))); err != nil {
		s.logger.Error("write csv failed", "error", err)
	}
}
