package web

import (
	"net/http"

	"github.com/krishimitra/krishimitra/internal/domain"
)

// demoWeather is the static forecast served until a real weather feed is
// wired in.
func demoWeather() *domain.Weather {
	return &domain.Weather{
		Location:    "Bengaluru, Karnataka",
		Temperature: 28,
		Condition:   "Partly Cloudy",
		Humidity:    65,
		Rainfall:    0,
		Forecast: []domain.ForecastDay{
			{Day: "Today", Temp: 28, Condition: "Partly Cloudy", Rainfall: 0},
			{Day: "Tomorrow", Temp: 27, Condition: "Cloudy", Rainfall: 5},
			{Day: "Day 3", Temp: 26, Condition: "Rainy", Rainfall: 15},
		},
	}
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, demoWeather())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "KrishiMitra API Server Running",
	})
}
