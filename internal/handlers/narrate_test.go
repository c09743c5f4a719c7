package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tmallory/chronicler/internal/storage"
	"github.com/tmallory/chronicler/pkg/narrator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))
}

func postNarrate(t *testing.T, handler *NarrateHandler, req NarrateRequest) (*httptest.ResponseRecorder, *NarrateResponse) {
	t.Helper()

	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/narrate", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httpReq)

	if rr.Code != http.StatusOK {
		return rr, nil
	}
	var resp NarrateResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return rr, &resp
}

func TestNarrateHandler_NewSession(t *testing.T) {
	handler := NewNarrateHandler(storage.NewMockStorage(), testLogger())

	rr, resp := postNarrate(t, handler, NarrateRequest{
		CampaignSeed: "campaign-7",
		EventID:      "evt-001",
		Tone:         "grim",
		Events: []narrator.RawEvent{
			{Kind: "attack", ID: "a1", Actor: "Kael", Target: "the gnoll", Amount: 7},
		},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, resp.SessionID)
	assert.NotEmpty(t, resp.Text)
	assert.NotEmpty(t, resp.LineHash)
	assert.Equal(t, "grim", resp.Trace.Tone)
	assert.NotEmpty(t, resp.Trace.Picks, "trace should record RNG decisions")

	// A fresh session ID must be a valid UUID.
	_, err := uuid.Parse(resp.SessionID)
	assert.NoError(t, err)
}

func TestNarrateHandler_Deterministic(t *testing.T) {
	sessionID := uuid.New().String()
	req := NarrateRequest{
		SessionID:    sessionID,
		CampaignSeed: "campaign-7",
		EventID:      "evt-001",
		Events: []narrator.RawEvent{
			{Kind: "loot", ID: "l1", Actor: "Kael", Amount: 3},
		},
	}

	// Separate stores so the second call does not see the first call's
	// persisted state.
	_, first := postNarrate(t, NewNarrateHandler(storage.NewMockStorage(), testLogger()), req)
	_, second := postNarrate(t, NewNarrateHandler(storage.NewMockStorage(), testLogger()), req)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, first.LineHash, second.LineHash)
	assert.Equal(t, first.Trace.Seed, second.Trace.Seed)
}

func TestNarrateHandler_StatePersistsAcrossTurns(t *testing.T) {
	mockStorage := storage.NewMockStorage()
	handler := NewNarrateHandler(mockStorage, testLogger())
	sessionID := uuid.New().String()

	_, first := postNarrate(t, handler, NarrateRequest{
		SessionID:    sessionID,
		CampaignSeed: "campaign-7",
		EventID:      "evt-001",
		Board:        "town",
		RegionName:   "Harrowmere",
	})
	assert.NotEmpty(t, first.BoardText)
	assert.NotEmpty(t, first.BoardOpenerID)

	id, err := uuid.Parse(sessionID)
	if err != nil {
		t.Fatalf("Failed to parse session ID: %v", err)
	}
	saved, err := mockStorage.GetPresentationState(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to load saved state: %v", err)
	}
	if saved == nil {
		t.Fatal("Expected state to be persisted after the turn")
	}
	assert.Equal(t, first.BoardOpenerID, saved.LastBoardOpenerID)
	assert.Contains(t, saved.RecentLineHashes, first.LineHash)

	// Second turn on the same session must not reuse the opener.
	_, second := postNarrate(t, handler, NarrateRequest{
		SessionID:    sessionID,
		CampaignSeed: "campaign-7",
		EventID:      "evt-002",
		Board:        "town",
		RegionName:   "Harrowmere",
	})
	assert.NotEqual(t, first.BoardOpenerID, second.BoardOpenerID)
}

func TestNarrateHandler_SuppressedTurn(t *testing.T) {
	handler := NewNarrateHandler(storage.NewMockStorage(), testLogger())

	_, resp := postNarrate(t, handler, NarrateRequest{
		CampaignSeed: "campaign-7",
		EventID:      "evt-003",
		Suppressed:   true,
		Events: []narrator.RawEvent{
			{Kind: "attack", ID: "a1", Actor: "Kael"},
		},
	})

	assert.Equal(t, "The moment passes quietly.", resp.Text)
	assert.True(t, resp.Trace.Suppressed)
}

func TestNarrateHandler_Validation(t *testing.T) {
	handler := NewNarrateHandler(storage.NewMockStorage(), testLogger())

	tests := []struct {
		name           string
		method         string
		body           string
		expectedStatus int
	}{
		{
			name:           "missing campaign seed",
			method:         http.MethodPost,
			body:           `{"event_id":"evt-001"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing event id",
			method:         http.MethodPost,
			body:           `{"campaign_seed":"campaign-7"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed session id",
			method:         http.MethodPost,
			body:           `{"campaign_seed":"campaign-7","event_id":"evt-001","session_id":"not-a-uuid"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid json",
			method:         http.MethodPost,
			body:           `{invalid json}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "wrong method",
			method:         http.MethodGet,
			body:           "",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/narrate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Response body: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}

			var response ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if response.Error == "" {
				t.Error("Expected error message in response")
			}
		})
	}
}
