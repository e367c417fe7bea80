// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// postingRecord is the on-disk shape of a posting. Enum fields are read as
// text and converted through the Parse functions so that typos fail loudly.
type postingRecord struct {
	ID           int      `koanf:"id"`
	Title        string   `koanf:"title"`
	Company      string   `koanf:"company"`
	Location     string   `koanf:"location"`
	Sector       string   `koanf:"sector"`
	Duration     string   `koanf:"duration"`
	Stipend      string   `koanf:"stipend"`
	Description  string   `koanf:"description"`
	Skills       []string `koanf:"skills"`
	Education    []string `koanf:"education"`
	Requirements []string `koanf:"requirements"`
	Type         string   `koanf:"type"`
}

type catalogFile struct {
	Postings []postingRecord `koanf:"postings"`
}

// Load returns the catalog at path, or the bundled postings when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a catalog from a YAML (or JSON) document of the form
//
//	postings:
//	  - id: 1
//	    title: Software Development Intern
//	    sector: Technology
//	    type: Full-time
//	    ...
func LoadFile(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load catalog file %s: %w", path, err)
	}

	var doc catalogFile
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", path, err)
	}

	postings := make([]Posting, 0, len(doc.Postings))
	for i := range doc.Postings {
		p, err := doc.Postings[i].toPosting()
		if err != nil {
			return nil, fmt.Errorf("catalog file %s entry %d: %w", path, i, err)
		}
		postings = append(postings, p)
	}

	return New(postings)
}

func (r *postingRecord) toPosting() (Posting, error) {
	sector, err := ParseSector(r.Sector)
	if err != nil {
		return Posting{}, err
	}
	typ, err := ParseEmploymentType(r.Type)
	if err != nil {
		return Posting{}, err
	}

	return Posting{
		ID:           r.ID,
		Title:        r.Title,
		Company:      r.Company,
		Location:     r.Location,
		Sector:       sector,
		Duration:     r.Duration,
		Stipend:      r.Stipend,
		Description:  r.Description,
		Skills:       r.Skills,
		Education:    r.Education,
		Requirements: r.Requirements,
		Type:         typ,
	}, nil
}
