package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sandevgo/coinbot/internal/core"
	"github.com/sandevgo/coinbot/pkg/log"
)

const sessionCookie = "coinbot_session"

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	message := strings.TrimSpace(r.URL.Query().Get("message"))
	if message == "" {
		writeJSON(w, http.StatusOK, map[string]string{"response": "Send me a message to get started!"})
		return
	}

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
			sessionID = c.Value
		}
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
		})
	}

	resp := s.bot.Process(r.Context(), sessionID, message)
	writeJSON(w, http.StatusOK, resp)
}

type coinProjection struct {
	Coin                string   `json:"coin"`
	Trend               string   `json:"trend"`
	Verdict             string   `json:"verdict"`
	Advice              string   `json:"advice"`
	RiskLevel           string   `json:"risk_level"`
	Tags                []string `json:"tags"`
	SustainabilityScore float64  `json:"sustainability_score"`
}

func (s *Server) handleCoinAdvice(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	rec, ok := s.bot.Advice(r.Context(), id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": fmt.Sprintf("'%s'? Never heard of it. Are you making up coins now? 😅", id),
		})
		return
	}

	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, coinProjection{
		Coin:                strings.ToUpper(id),
		Trend:               rec.Trend,
		Verdict:             rec.Verdict,
		Advice:              rec.Advice,
		RiskLevel:           rec.RiskLevel(),
		Tags:                tags,
		SustainabilityScore: rec.SustainabilityScore,
	})
}

type addCoinRequest struct {
	Name                string   `json:"name"`
	Trend               string   `json:"trend"`
	Verdict             string   `json:"verdict"`
	Advice              string   `json:"advice"`
	MarketCap           string   `json:"market_cap"`
	SustainabilityScore *float64 `json:"sustainability_score"`
	Tags                []string `json:"tags"`
}

func (req *addCoinRequest) validate() error {
	missing := make([]string, 0, 4)
	for _, f := range []struct{ name, value string }{
		{"name", req.Name},
		{"trend", req.Trend},
		{"verdict", req.Verdict},
		{"advice", req.Advice},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (s *Server) handleAddCoin(w http.ResponseWriter, r *http.Request) {
	var req addCoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("invalid data: %v", err)})
		return
	}
	if err := req.validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("invalid data: %v", err)})
		return
	}

	rec := core.CoinRecord{
		Name:                strings.ToLower(req.Name),
		Trend:               req.Trend,
		Verdict:             req.Verdict,
		Advice:              req.Advice,
		MarketCap:           "medium",
		SustainabilityScore: 5.0,
		LastUpdated:         time.Now(),
		Tags:                req.Tags,
	}
	if req.MarketCap != "" {
		rec.MarketCap = req.MarketCap
	}
	if req.SustainabilityScore != nil {
		rec.SustainabilityScore = *req.SustainabilityScore
	}

	if err := s.bot.AddCoin(r.Context(), rec); err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Str("coin", rec.Name).Msg("coin upsert failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("server error: %v", err)})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Successfully added %s!", rec.Name),
		"crypto":  rec.Name,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
