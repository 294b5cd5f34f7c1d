// Package identity maps team identifiers across data sources. The scoreboard
// API keys teams by numeric ID while the season datasets key them by school
// name; the resolver bridges the two with a static table plus a fuzzy
// name-match fallback.
package identity

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	_ "embed"
)

//go:embed teams.csv
var teamsCSV string

// Resolver holds the bidirectional cross-ID table.
type Resolver struct {
	idToName map[string]string
	nameToID map[string]string
}

// NewResolver builds a resolver from the embedded team table.
func NewResolver() (*Resolver, error) {
	return newResolver(strings.NewReader(teamsCSV))
}

func newResolver(r io.Reader) (*Resolver, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse team table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("team table is empty")
	}

	resolver := &Resolver{
		idToName: make(map[string]string, len(records)),
		nameToID: make(map[string]string, len(records)),
	}
	for _, record := range records[1:] { // skip header
		id := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		if id == "" || name == "" {
			continue
		}
		resolver.idToName[id] = name
		resolver.nameToID[name] = id
	}
	return resolver, nil
}

// CrossID translates an identifier across sources in either direction: a
// numeric scoreboard ID resolves to a school name and vice versa.
func (r *Resolver) CrossID(id string) (string, bool) {
	if name, ok := r.idToName[id]; ok {
		return name, true
	}
	if mapped, ok := r.nameToID[id]; ok {
		return mapped, true
	}
	return "", false
}

// FuzzyMatch finds a candidate whose name contains the target's first word.
// Matching is case-insensitive and requires the token to be longer than three
// characters, so short words like "Ohio" never absorb "Ohio State". The
// candidate list is sorted before scanning to keep results deterministic.
func FuzzyMatch(target string, candidates []string) (string, bool) {
	token := firstToken(target)
	if len(token) <= 3 {
		return "", false
	}

	sorted := make([]string, len(candidates))
	copy(sorted, candidates)
	sort.Strings(sorted)

	for _, candidate := range sorted {
		if strings.Contains(strings.ToLower(candidate), token) {
			return candidate, true
		}
	}
	return "", false
}

func firstToken(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
