// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/internmatch/internal/catalog"
)

// ErrMalformedEnvelope indicates the remote payload is not a usable envelope.
var ErrMalformedEnvelope = errors.New("malformed remote envelope")

// remoteEnvelope is the JSON document the remote scorer is asked to produce.
// Recommendations is a pointer so that a missing or null list is detectable.
type remoteEnvelope struct {
	Recommendations *[]remoteEntry `json:"recommendations"`
	Summary         string         `json:"summary"`
}

// remoteEntry is one remote recommendation. ID is decoded loosely: entries
// whose id is not an integral number are dropped during resolution.
type remoteEntry struct {
	ID           any      `json:"id"`
	MatchScore   *float64 `json:"matchScore"`
	MatchReasons []string `json:"matchReasons"`
}

// stripCodeFences removes markdown code fences that models wrap around JSON.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// parseEnvelope decodes the raw remote text into an envelope.
func parseEnvelope(raw string) (*remoteEnvelope, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedEnvelope)
	}

	var env remoteEnvelope
	if err := json.Unmarshal([]byte(cleaned), &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if env.Recommendations == nil {
		return nil, fmt.Errorf("%w: missing recommendations", ErrMalformedEnvelope)
	}
	return &env, nil
}

// entryID converts a loosely decoded id into a catalog id.
func entryID(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// remoteScore rounds a remote score half-up and clamps it to [0, MaxInt32].
// A missing score is zero.
func remoteScore(v *float64) int {
	if v == nil {
		return 0
	}
	f := math.Floor(*v + 0.5)
	switch {
	case f <= 0 || math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	}
	return int(f)
}

// resolve joins remote entries with catalog postings. Unknown ids and
// repeats of an id already seen are skipped; remote order is preserved.
func (env *remoteEnvelope) resolve(cat *catalog.Catalog) []ScoredPosting {
	entries := *env.Recommendations
	out := make([]ScoredPosting, 0, len(entries))
	seen := make(map[int]struct{}, len(entries))

	for i := range entries {
		entry := &entries[i]
		id, ok := entryID(entry.ID)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		posting, found := cat.Lookup(id)
		if !found {
			continue
		}
		seen[id] = struct{}{}

		reasons := entry.MatchReasons
		if reasons == nil {
			reasons = []string{}
		}

		out = append(out, ScoredPosting{
			Posting:      posting,
			MatchScore:   remoteScore(entry.MatchScore),
			MatchReasons: reasons,
		})
	}
	return out
}
