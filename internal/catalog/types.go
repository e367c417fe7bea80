// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package catalog

import (
	"fmt"
	"strings"
)

// AnyGraduate is the accepted-education entry that admits every candidate.
const AnyGraduate = "Any Graduate"

// EmploymentType is the engagement model of a posting.
type EmploymentType int

const (
	// TypeUnspecified means no preference. Only valid on candidate profiles.
	TypeUnspecified EmploymentType = iota
	// TypeFullTime is a full-time internship.
	TypeFullTime
	// TypePartTime is a part-time internship.
	TypePartTime
)

// EmploymentTypes lists every specified employment type in display order.
var EmploymentTypes = []EmploymentType{TypeFullTime, TypePartTime}

// String returns the display label ("Full-time", "Part-time").
// TypeUnspecified renders as an empty string.
func (t EmploymentType) String() string {
	switch t {
	case TypeFullTime:
		return "Full-time"
	case TypePartTime:
		return "Part-time"
	default:
		return ""
	}
}

// IsSpecified reports whether t names a concrete employment type.
func (t EmploymentType) IsSpecified() bool {
	return t == TypeFullTime || t == TypePartTime
}

// ParseEmploymentType converts a label into an EmploymentType.
// Matching ignores case and the hyphen, so "full time" and "FULL-TIME" both work.
// An empty string or "Any" yields TypeUnspecified.
func ParseEmploymentType(s string) (EmploymentType, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, " ", "-")

	switch norm {
	case "", "any":
		return TypeUnspecified, nil
	case "full-time", "fulltime":
		return TypeFullTime, nil
	case "part-time", "parttime":
		return TypePartTime, nil
	default:
		return TypeUnspecified, fmt.Errorf("%w: employment type %q", ErrUnknownValue, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t EmploymentType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *EmploymentType) UnmarshalText(text []byte) error {
	parsed, err := ParseEmploymentType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Sector is the industry a posting belongs to.
type Sector int

const (
	// SectorUnknown is the zero value and never appears in a valid catalog.
	SectorUnknown Sector = iota
	SectorTechnology
	SectorMarketing
	SectorAnalytics
	SectorDesign
	SectorMedia
	SectorFinance
	SectorHumanResources
	SectorBusinessDevelopment
	SectorHealthcare
	SectorEducation
	SectorGovernment
	SectorNonProfit
)

var sectorNames = map[Sector]string{
	SectorTechnology:          "Technology",
	SectorMarketing:           "Marketing",
	SectorAnalytics:           "Analytics",
	SectorDesign:              "Design",
	SectorMedia:               "Media",
	SectorFinance:             "Finance",
	SectorHumanResources:      "Human Resources",
	SectorBusinessDevelopment: "Business Development",
	SectorHealthcare:          "Healthcare",
	SectorEducation:           "Education",
	SectorGovernment:          "Government",
	SectorNonProfit:           "Non-Profit",
}

// Sectors lists every known sector in display order.
var Sectors = []Sector{
	SectorTechnology,
	SectorMarketing,
	SectorAnalytics,
	SectorDesign,
	SectorMedia,
	SectorFinance,
	SectorHumanResources,
	SectorBusinessDevelopment,
	SectorHealthcare,
	SectorEducation,
	SectorGovernment,
	SectorNonProfit,
}

// String returns the display name of the sector.
func (s Sector) String() string {
	return sectorNames[s]
}

// ParseSector converts a display name into a Sector, ignoring case and
// surrounding whitespace.
func ParseSector(name string) (Sector, error) {
	trimmed := strings.TrimSpace(name)
	for _, s := range Sectors {
		if strings.EqualFold(sectorNames[s], trimmed) {
			return s, nil
		}
	}
	return SectorUnknown, fmt.Errorf("%w: sector %q", ErrUnknownValue, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Sector) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Sector) UnmarshalText(text []byte) error {
	parsed, err := ParseSector(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Posting is a single internship listing.
type Posting struct {
	// ID uniquely identifies the posting within a catalog.
	ID int `json:"id"`

	// Title is the role name, e.g. "Data Analytics Intern".
	Title string `json:"title"`

	// Company is the hiring organization.
	Company string `json:"company"`

	// Location is a free-form "City, State" string.
	Location string `json:"location"`

	// Sector is the industry classification.
	Sector Sector `json:"sector"`

	// Duration is a display string such as "6 months".
	Duration string `json:"duration"`

	// Stipend is a display string such as "₹15,000/month".
	Stipend string `json:"stipend"`

	// Description is a one-line summary of the work.
	Description string `json:"description"`

	// Skills are the required skills, in listing order.
	Skills []string `json:"skills"`

	// Education lists accepted qualifications. May contain AnyGraduate.
	Education []string `json:"education"`

	// Requirements are soft requirements shown on the detail view.
	Requirements []string `json:"requirements,omitempty"`

	// Type is the employment type.
	Type EmploymentType `json:"type"`
}

// Clone returns a deep copy that shares no slices with p.
//
//nolint:gocritic // hugeParam: value receiver keeps the original untouched
func (p Posting) Clone() Posting {
	p.Skills = cloneStrings(p.Skills)
	p.Education = cloneStrings(p.Education)
	p.Requirements = cloneStrings(p.Requirements)
	return p
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
