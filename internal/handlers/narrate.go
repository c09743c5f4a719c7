package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tmallory/chronicler/internal/storage"
	"github.com/tmallory/chronicler/pkg/board"
	"github.com/tmallory/chronicler/pkg/narrator"
	"github.com/tmallory/chronicler/pkg/state"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// NarrateRequest is one turn of the companion app's play loop. An
// empty session_id starts a fresh session.
type NarrateRequest struct {
	SessionID    string `json:"session_id,omitempty"`
	CampaignSeed string `json:"campaign_seed"`
	EventID      string `json:"event_id"`

	Tone      string `json:"tone,omitempty"`
	Intensity int    `json:"intensity,omitempty"`
	Biome     string `json:"biome,omitempty"`

	Board          string   `json:"board,omitempty"`
	Hooks          []string `json:"hooks,omitempty"`
	TimePressure   string   `json:"time_pressure,omitempty"`
	FactionTension string   `json:"faction_tension,omitempty"`
	ResourceWindow string   `json:"resource_window,omitempty"`
	RegionName     string   `json:"region_name,omitempty"`

	BoardAnchor   string `json:"board_anchor,omitempty"`
	ActionSummary string `json:"action_summary,omitempty"`
	RecoveryBeat  string `json:"recovery_beat,omitempty"`
	Suppressed    bool   `json:"suppressed,omitempty"`

	Events []narrator.RawEvent `json:"events,omitempty"`
}

type NarrateResponse struct {
	SessionID     string                  `json:"session_id"`
	Text          string                  `json:"text"`
	BoardText     string                  `json:"board_text,omitempty"`
	BoardOpenerID string                  `json:"board_opener_id,omitempty"`
	LineHash      string                  `json:"line_hash"`
	VerbKey       string                  `json:"verb_key,omitempty"`
	Trace         narrator.Trace          `json:"trace"`
	State         state.PresentationState `json:"state"`
}

type NarrateHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewNarrateHandler(storage storage.Storage, logger *slog.Logger) *NarrateHandler {
	return &NarrateHandler{
		storage: storage,
		logger:  logger,
	}
}

// ServeHTTP handles POST /v1/narrate. It loads the session's
// presentation state, composes the turn, and persists the updated
// state before responding.
func (h *NarrateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
		return
	}

	var req NarrateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid narrate request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.CampaignSeed == "" {
		writeError(w, h.logger, http.StatusBadRequest, "campaign_seed is required")
		return
	}
	if req.EventID == "" {
		writeError(w, h.logger, http.StatusBadRequest, "event_id is required")
		return
	}

	sessionID := uuid.New()
	if req.SessionID != "" {
		parsed, err := uuid.Parse(req.SessionID)
		if err != nil {
			h.logger.Warn("Invalid session ID", "id", req.SessionID, "error", err)
			writeError(w, h.logger, http.StatusBadRequest, "Invalid session ID format")
			return
		}
		sessionID = parsed
	}

	ps, err := h.storage.GetPresentationState(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("Failed to load presentation state", "uuid", sessionID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load session state")
		return
	}
	if ps == nil {
		ps = &state.PresentationState{}
	}

	in := narrator.TurnInput{
		CampaignSeed:  req.CampaignSeed,
		SessionID:     sessionID.String(),
		EventID:       req.EventID,
		Tone:          req.Tone,
		Intensity:     req.Intensity,
		Biome:         req.Biome,
		BoardAnchor:   req.BoardAnchor,
		ActionSummary: req.ActionSummary,
		RecoveryBeat:  req.RecoveryBeat,
		Suppressed:    req.Suppressed,
		Events:        req.Events,
		State:         *ps,
	}

	var boardNarration *board.Narration
	if req.Board != "" {
		boardNarration, err = board.Compose(board.Input{
			SeedKey:        in.TurnSeed() + "::board",
			Board:          board.ParseType(req.Board),
			Hooks:          req.Hooks,
			TimePressure:   req.TimePressure,
			FactionTension: req.FactionTension,
			ResourceWindow: req.ResourceWindow,
			RegionName:     req.RegionName,
			LastOpenerID:   ps.LastBoardOpenerID,
		})
		if err != nil {
			h.logger.Error("Failed to compose board narration", "uuid", sessionID, "error", err)
			writeError(w, h.logger, http.StatusInternalServerError, "Failed to compose board narration")
			return
		}
		in.BoardNarration = boardNarration.Text
	}

	result, err := narrator.Narrate(in)
	if err != nil {
		h.logger.Error("Failed to narrate turn", "uuid", sessionID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to narrate turn")
		return
	}

	updated := *ps
	updated.LastTone = req.Tone
	updated.PushLineHash(result.LineHash)
	updated.PushVerbKey(result.VerbKey)
	if boardNarration != nil {
		updated.LastBoardOpenerID = boardNarration.OpenerID
	}

	if err := h.storage.SavePresentationState(r.Context(), sessionID, &updated); err != nil {
		h.logger.Error("Failed to save presentation state", "uuid", sessionID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save session state")
		return
	}

	resp := NarrateResponse{
		SessionID: sessionID.String(),
		Text:      result.Text,
		LineHash:  result.LineHash,
		VerbKey:   result.VerbKey,
		Trace:     result.Trace,
		State:     updated,
	}
	if boardNarration != nil {
		resp.BoardText = boardNarration.Text
		resp.BoardOpenerID = boardNarration.OpenerID
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Failed to encode narrate response", "error", err)
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}
