package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tmallory/chronicler/pkg/reputation"
	"github.com/tmallory/chronicler/pkg/spectacle"
	"github.com/tmallory/chronicler/pkg/spellname"
)

// Stateless generator endpoints. Same seed in, same text out; nothing
// here touches storage.

type SpellNameRequest struct {
	SpellBase       string `json:"spell_base"`
	Rank            int    `json:"rank"`
	Rarity          string `json:"rarity,omitempty"`
	EscalationLevel int    `json:"escalation_level,omitempty"`
	SeedKey         string `json:"seed_key"`
}

type SpellNameResponse struct {
	Name string `json:"name"`
}

type SpellNameHandler struct {
	logger *slog.Logger
}

func NewSpellNameHandler(logger *slog.Logger) *SpellNameHandler {
	return &SpellNameHandler{logger: logger}
}

func (h *SpellNameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
		return
	}

	var req SpellNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid spell name request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.SeedKey == "" {
		writeError(w, h.logger, http.StatusBadRequest, "seed_key is required")
		return
	}

	name := spellname.Build(req.SpellBase, req.Rank, spellname.ParseRarity(req.Rarity), req.EscalationLevel, req.SeedKey)
	if err := json.NewEncoder(w).Encode(SpellNameResponse{Name: name}); err != nil {
		h.logger.Error("Failed to encode spell name response", "error", err)
	}
}

type ReputationHandler struct {
	logger *slog.Logger
}

func NewReputationHandler(logger *slog.Logger) *ReputationHandler {
	return &ReputationHandler{logger: logger}
}

func (h *ReputationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
		return
	}

	var req reputation.Input
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid reputation request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.BaseName == "" {
		writeError(w, h.logger, http.StatusBadRequest, "base_name is required")
		return
	}
	if req.SeedKey == "" {
		writeError(w, h.logger, http.StatusBadRequest, "seed_key is required")
		return
	}

	result := reputation.BuildTitle(req)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("Failed to encode reputation response", "error", err)
	}
}

type SpectacleResponse struct {
	Line string `json:"line"`
}

type SpectacleHandler struct {
	logger *slog.Logger
}

func NewSpectacleHandler(logger *slog.Logger) *SpectacleHandler {
	return &SpectacleHandler{logger: logger}
}

func (h *SpectacleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
		return
	}

	var req spectacle.Input
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid spectacle request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.SeedKey == "" {
		writeError(w, h.logger, http.StatusBadRequest, "seed_key is required")
		return
	}

	line := spectacle.BuildLine(req)
	if err := json.NewEncoder(w).Encode(SpectacleResponse{Line: line}); err != nil {
		h.logger.Error("Failed to encode spectacle response", "error", err)
	}
}
