package api

import (
	"encoding/json"
	"net/http"

	"github.com/MANASI777-hub/horizon/internal/cache"
)

type nearbyRequest struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// nearbyPlaces handles POST /api/nearby: a cached proxy in front of the
// Overpass API for hospitals and mental-health providers around the caller.
func (s *Server) nearbyPlaces(w http.ResponseWriter, r *http.Request) {
	var req nearbyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Lat == nil || req.Lon == nil {
		respondError(w, http.StatusBadRequest, "missing lat/lon")
		return
	}

	key := cache.NearbyKey(*req.Lat, *req.Lon)
	if cached, ok := s.cache.GetString(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	raw, err := s.nearby.Find(r.Context(), *req.Lat, *req.Lon)
	if err != nil {
		s.logger.Error("nearby lookup failed", "error", err)
		respondError(w, http.StatusBadGateway, "nearby lookup failed")
		return
	}
	s.cache.SetString(r.Context(), key, string(raw), cache.NearbyTTL)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}
