// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/tomtom215/internmatch/internal/catalog"
)

//go:embed prompts/recommend.tmpl
var recommendPromptRaw string

// recommendPrompt is parsed once at package init and reused for every request.
var recommendPrompt = template.Must(template.New("recommend").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(recommendPromptRaw))

type promptData struct {
	Education      string
	Skills         []string
	Interests      []string
	Location       string
	TypePreference string
	Postings       []catalog.Posting
}

// BuildPrompt renders the remote scoring instruction for profile over postings.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func BuildPrompt(profile CandidateProfile, postings []catalog.Posting) (string, error) {
	typePref := profile.PreferredType.String()
	if typePref == "" {
		typePref = "Any"
	}

	data := promptData{
		Education:      sanitizeUTF8(profile.Education),
		Skills:         sanitizeAll(profile.Skills),
		Interests:      sanitizeAll(profile.Interests),
		Location:       sanitizeUTF8(profile.Location),
		TypePreference: typePref,
		Postings:       postings,
	}

	var sb strings.Builder
	if err := recommendPrompt.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return sb.String(), nil
}

// sanitizeUTF8 replaces invalid UTF-8 so provider SDKs never reject the payload.
func sanitizeUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}

func sanitizeAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = sanitizeUTF8(s)
	}
	return out
}
