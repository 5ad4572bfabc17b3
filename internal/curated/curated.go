// Package curated holds the hand-authored curriculum records and their
// exact-match lookup. Records are keyed by the literal concatenation
// "<program_type>_<domain>" (case-sensitive); there is no fuzzy matching and
// no cross-references between records.
package curated

import (
	_ "embed"
	"encoding/json"
	"errors"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/currhub/curricuforge/internal/schema"
)

//go:embed data/curriculum_database.json
var embedded []byte

// ErrNotFound indicates no curated record exists for the request key.
var ErrNotFound = errors.New("no curated record")

// Dataset is an immutable set of curated records, shared safely across
// concurrent requests.
type Dataset struct {
	records map[string]schema.CurriculumPayload
}

// Load reads curated records from a JSON file. An empty path selects the
// embedded default dataset. A missing or malformed file never fails the
// caller: it logs a warning and yields an empty dataset so the pipeline
// degrades to its later tiers.
func Load(path string) *Dataset {
	raw := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("curated dataset unavailable, continuing with empty dataset")
			return &Dataset{}
		}
		raw = b
	}
	var records map[string]schema.CurriculumPayload
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("curated dataset malformed, continuing with empty dataset")
		return &Dataset{}
	}
	return &Dataset{records: records}
}

// Len reports the number of curated records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Lookup returns the curated record for the request, with three fields
// overridden from the live request: academic level, total semesters
// (clamped to the requested duration), and the accreditation statement.
// The stored semester map is returned verbatim and is NOT truncated when the
// requested duration is shorter than the record; callers relying on
// total_semesters must tolerate extra semester keys. This mirrors how the
// records have always been served.
func (d *Dataset) Lookup(req schema.CurriculumRequest) (schema.CurriculumPayload, error) {
	key := req.ProgramType + "_" + req.Domain
	rec, ok := d.records[key]
	if !ok {
		return schema.CurriculumPayload{}, ErrNotFound
	}
	log.Debug().Str("key", key).Msg("curated dataset hit")

	p := rec.Clone()
	if req.AcademicLevel != "" {
		p.AcademicLevel = req.AcademicLevel
	}
	stored := p.TotalSemesters
	if stored <= 0 {
		stored = 8
	}
	requested := req.DurationSemesters
	if requested <= 0 {
		requested = 8
	}
	p.TotalSemesters = min(requested, stored)
	body := req.AccreditationBody
	if body == "" {
		body = "Global"
	}
	p.AccreditationAligned = "Aligned with " + body + " Standards"
	return p, nil
}
