package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// The scoring-state blob persisted on a match has two shapes: the full live
// State while the match is in progress, and the compact set-score summary
// once it is finished. Both are wrapped in an envelope with an explicit kind
// discriminant. Decoding also accepts the undiscriminated shapes older rows
// carry (a bare object is a live state, a bare array a summary).

type BlobKind string

const (
	BlobLive    BlobKind = "live"
	BlobSummary BlobKind = "summary"
)

var ErrEmptyBlob = errors.New("scoring blob is empty")

type Blob struct {
	Kind  BlobKind   `json:"kind"`
	State *State     `json:"state,omitempty"`
	Sets  []SetScore `json:"sets,omitempty"`
}

// LiveBlob wraps an in-progress state.
func LiveBlob(s State) Blob {
	return Blob{Kind: BlobLive, State: &s}
}

// SummaryBlob wraps the permanent set-history record of a finished match.
func SummaryBlob(sets []SetScore) Blob {
	return Blob{Kind: BlobSummary, Sets: sets}
}

func EncodeBlob(b Blob) (string, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s scoring blob: %w", b.Kind, err)
	}
	return string(raw), nil
}

func DecodeBlob(raw string) (Blob, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Blob{}, ErrEmptyBlob
	}

	if strings.HasPrefix(trimmed, "[") {
		var sets []SetScore
		if err := json.Unmarshal([]byte(trimmed), &sets); err != nil {
			return Blob{}, fmt.Errorf("failed to decode summary scoring blob: %w", err)
		}
		return SummaryBlob(sets), nil
	}

	var b Blob
	if err := json.Unmarshal([]byte(trimmed), &b); err != nil {
		return Blob{}, fmt.Errorf("failed to decode scoring blob: %w", err)
	}

	switch b.Kind {
	case BlobLive:
		if b.State == nil {
			return Blob{}, errors.New("live scoring blob is missing its state")
		}
		return b, nil
	case BlobSummary:
		return b, nil
	case "":
		// Undiscriminated object: a live state persisted before the envelope
		// was introduced.
		var s State
		if err := json.Unmarshal([]byte(trimmed), &s); err != nil {
			return Blob{}, fmt.Errorf("failed to decode legacy scoring blob: %w", err)
		}
		return LiveBlob(s), nil
	default:
		return Blob{}, fmt.Errorf("unknown scoring blob kind %q", b.Kind)
	}
}
