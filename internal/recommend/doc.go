// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

// Package recommend ranks catalog postings for a candidate profile.
//
// # Architecture
//
// Two scorers produce results of the same shape:
//
//   - LocalScorer: deterministic rules over education, skills, sector
//     interest, location and employment type. Always computed.
//   - RemoteScorer: an optional language model that receives a prompt
//     describing the profile and the whole catalog, and answers with a JSON
//     envelope of ids, scores and reasons.
//
// Engine runs the local scorer first and then, if a remote scorer is
// configured, makes exactly one remote attempt. Transport errors, unusable
// payloads and answers that reference no known posting all degrade to the
// local result; Recommend never returns an error. The Outcome field of the
// result records which path was taken.
//
// # Scoring
//
// With default weights a posting earns 30 points for education, up to 40 for
// skills (prorated by the fraction of candidate skills matched), 20 for a
// sector interest, 10 for location and a 5 point bonus for the preferred
// employment type. Text comparisons are case-insensitive substring matches
// in either direction. Totals are rounded half-up and are not clamped unless
// Config.ScoreCap is set, so a perfect match scores 105.
//
// # Usage
//
//	cat := catalog.Default()
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), cat, remote, logger)
//	if err != nil {
//	    return err
//	}
//	result := engine.Recommend(ctx, recommend.CandidateProfile{
//	    Education: "B.Tech",
//	    Skills:    []string{"Python", "SQL"},
//	    Interests: []string{"Technology"},
//	    Location:  "Bangalore, Karnataka",
//	})
//
// # Thread Safety
//
// The engine and scorer are safe for concurrent use. The only shared mutable
// state is a set of atomic counters.
package recommend
