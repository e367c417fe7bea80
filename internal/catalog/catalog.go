// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

// Package catalog holds the read-only set of internship postings that the
// recommendation engine scores against.
//
// A Catalog is built once at startup, either from the bundled fixture
// (Default) or from a YAML/JSON file (LoadFile), and is then shared by every
// request. Construction validates the data: identifiers must be unique,
// every posting needs a title, a known sector and a specified employment
// type. After construction nothing can change the postings; accessors return
// copies.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by catalog construction.
var (
	// ErrDuplicateID indicates two postings share an identifier.
	ErrDuplicateID = errors.New("duplicate posting id")

	// ErrInvalidPosting indicates a posting is missing required data.
	ErrInvalidPosting = errors.New("invalid posting")

	// ErrUnknownValue indicates an enum label outside the closed set.
	ErrUnknownValue = errors.New("unknown value")
)

// Catalog is an immutable, ordered collection of postings.
// It is safe for concurrent use.
type Catalog struct {
	postings []Posting
	index    map[int]int
}

// New validates postings and builds a catalog preserving their order.
func New(postings []Posting) (*Catalog, error) {
	c := &Catalog{
		postings: make([]Posting, 0, len(postings)),
		index:    make(map[int]int, len(postings)),
	}

	for i := range postings {
		p := &postings[i]
		if err := validatePosting(p); err != nil {
			return nil, err
		}
		if _, exists := c.index[p.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		c.index[p.ID] = len(c.postings)
		c.postings = append(c.postings, p.Clone())
	}

	return c, nil
}

func validatePosting(p *Posting) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: posting %d has no title", ErrInvalidPosting, p.ID)
	}
	if p.Sector.String() == "" {
		return fmt.Errorf("%w: posting %d has no sector", ErrInvalidPosting, p.ID)
	}
	if !p.Type.IsSpecified() {
		return fmt.Errorf("%w: posting %d has no employment type", ErrInvalidPosting, p.ID)
	}
	return nil
}

// Len returns the number of postings.
func (c *Catalog) Len() int {
	return len(c.postings)
}

// Postings returns a copy of all postings in catalog order.
func (c *Catalog) Postings() []Posting {
	out := make([]Posting, len(c.postings))
	for i := range c.postings {
		out[i] = c.postings[i].Clone()
	}
	return out
}

// Lookup returns the posting with the given id.
func (c *Catalog) Lookup(id int) (Posting, bool) {
	i, ok := c.index[id]
	if !ok {
		return Posting{}, false
	}
	return c.postings[i].Clone(), true
}

// Filter narrows a listing. Zero-valued fields do not filter.
type Filter struct {
	// Sector keeps postings in this sector.
	Sector Sector

	// Type keeps postings of this employment type.
	Type EmploymentType

	// Location keeps postings whose location contains this text (case-insensitive).
	Location string
}

// Find returns the postings matching f, in catalog order.
//
//nolint:gocritic // hugeParam: small value struct
func (c *Catalog) Find(f Filter) []Posting {
	location := strings.ToLower(strings.TrimSpace(f.Location))

	out := make([]Posting, 0, len(c.postings))
	for i := range c.postings {
		p := &c.postings[i]
		if f.Sector != SectorUnknown && p.Sector != f.Sector {
			continue
		}
		if f.Type.IsSpecified() && p.Type != f.Type {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(p.Location), location) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}
