// Package state holds the presentation memory carried between
// narration turns. The engine treats it as an advisory, read-only
// snapshot for anti-repeat selection; the caller owns it, applies the
// updated pointers each turn, and persists it.
package state

import (
	"fmt"
	"strings"

	"github.com/tmallory/chronicler/pkg/rng"
)

// RecentLineLimit caps how many line hashes are carried forward.
const RecentLineLimit = 8

// LastVerbLimit caps how many verb keys are carried forward.
const LastVerbLimit = 6

// PresentationState is the only cross-call memory of the narrative
// engine. It is supplied explicitly on every call; the engine never
// holds one in package state.
type PresentationState struct {
	LastTone          string   `json:"last_tone,omitempty"`
	LastBoardOpenerID string   `json:"last_board_opener_id,omitempty"`
	RecentLineHashes  []string `json:"recent_line_hashes,omitempty"`
	LastVerbKeys      []string `json:"last_verb_keys,omitempty"`
}

// LineHash fingerprints a narration line for anti-repeat tracking.
func LineHash(text string) string {
	return fmt.Sprintf("%08x", rng.Hash32(strings.TrimSpace(text)))
}

// SeenLine reports whether the hash is in the recent-line window.
func (ps *PresentationState) SeenLine(hash string) bool {
	for _, h := range ps.RecentLineHashes {
		if h == hash {
			return true
		}
	}
	return false
}

// LastVerbKey returns the most recently recorded verb key, or "".
func (ps *PresentationState) LastVerbKey() string {
	if len(ps.LastVerbKeys) == 0 {
		return ""
	}
	return ps.LastVerbKeys[len(ps.LastVerbKeys)-1]
}

// PushLineHash records a line hash, dropping the oldest entries beyond
// the window. Callers invoke this on their own copy after a turn.
func (ps *PresentationState) PushLineHash(hash string) {
	if hash == "" {
		return
	}
	ps.RecentLineHashes = append(ps.RecentLineHashes, hash)
	if n := len(ps.RecentLineHashes); n > RecentLineLimit {
		ps.RecentLineHashes = ps.RecentLineHashes[n-RecentLineLimit:]
	}
}

// PushVerbKey records a flavor-verb key, dropping the oldest entries
// beyond the window.
func (ps *PresentationState) PushVerbKey(key string) {
	if key == "" {
		return
	}
	ps.LastVerbKeys = append(ps.LastVerbKeys, key)
	if n := len(ps.LastVerbKeys); n > LastVerbLimit {
		ps.LastVerbKeys = ps.LastVerbKeys[n-LastVerbLimit:]
	}
}
