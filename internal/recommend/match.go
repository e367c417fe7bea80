// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import (
	"strings"

	"github.com/tomtom215/internmatch/internal/catalog"
)

// overlaps reports whether either string contains the other, ignoring case.
// An empty string is contained in everything.
func overlaps(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// overlapsAny reports whether s overlaps at least one entry of list.
func overlapsAny(s string, list []string) bool {
	for _, item := range list {
		if overlaps(s, item) {
			return true
		}
	}
	return false
}

func educationMatches(education string, accepted []string) bool {
	for _, edu := range accepted {
		if edu == catalog.AnyGraduate || overlaps(edu, education) {
			return true
		}
	}
	return false
}

// matchedSkills returns the candidate skills found among required, in candidate order.
func matchedSkills(candidate, required []string) []string {
	var matched []string
	for _, skill := range candidate {
		if overlapsAny(skill, required) {
			matched = append(matched, skill)
		}
	}
	return matched
}

func interestMatches(interests []string, sector catalog.Sector) bool {
	name := sector.String()
	for _, interest := range interests {
		if overlaps(interest, name) {
			return true
		}
	}
	return false
}
