// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

// Package dataset loads the historical cutoff table from CSV and serves it
// as an immutable in-memory snapshot. Reloads build a fresh snapshot and
// swap it atomically; readers never observe a partially loaded table.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/JARAWA/MHTCET/internal/logging"
	"github.com/JARAWA/MHTCET/internal/models"
)

// ErrDataUnavailable is returned when the cutoff table cannot be opened,
// has no usable header, or yields zero valid records.
var ErrDataUnavailable = errors.New("cutoff dataset unavailable")

// Snapshot is one immutable load of the cutoff table plus derived catalogs.
// All fields are read-only after construction.
type Snapshot struct {
	Records  []models.CutoffRecord
	Branches []string
	Stats    models.DatasetStats
}

// Expected CSV columns. Header matching is case- and punctuation-insensitive
// ("Cutoff rank", "cutoff_rank", and "CUTOFF RANK" all resolve to the same
// column).
const (
	colCollegeCode      = "collegecode"
	colCollegeName      = "collegename"
	colBranchCode       = "branchcode"
	colBranchName       = "branchname"
	colCategoryCode     = "categorycode"
	colQuota            = "quota"
	colCategory         = "category"
	colSeatType         = "seattype"
	colCutoffRank       = "cutoffrank"
	colCutoffPercentile = "cutoffpercentile"
	colRound            = "round"
)

var requiredColumns = []string{
	colCollegeCode, colCollegeName, colBranchCode, colBranchName,
	colQuota, colCategory, colSeatType, colCutoffRank, colRound,
}

// LoadFile opens and parses the cutoff CSV at path. Malformed rows are
// skipped and counted, never fatal; an unopenable file, an unusable header,
// or a file with zero valid rows returns ErrDataUnavailable.
func LoadFile(path string, year int) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrDataUnavailable, path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	snap, err := Load(f, year)
	if err != nil {
		return nil, err
	}
	snap.Stats.Source = path
	return snap, nil
}

// Load parses a cutoff CSV from r. See LoadFile for the error contract.
func Load(r io.Reader, year int) (*Snapshot, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row width validated per row, bad rows skipped
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", ErrDataUnavailable, err)
	}

	cols, err := mapHeader(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	records := make([]models.CutoffRecord, 0, 1024)
	skipped := 0
	line := 1
	for {
		line++
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Structurally broken row (bare quote, stray escape). Skip it
			// like any other malformed row.
			skipped++
			logging.Debug().Int("line", line).Err(err).Msg("skipping unparseable row")
			continue
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			skipped++
			logging.Debug().Int("line", line).Err(err).Msg("skipping malformed row")
			continue
		}
		rec.Serial = len(records) + 1
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no valid rows (skipped %d)", ErrDataUnavailable, skipped)
	}
	if skipped > 0 {
		logging.Warn().
			Int("skipped_rows", skipped).
			Int("loaded_rows", len(records)).
			Msg("cutoff table loaded with malformed rows skipped")
	}

	return newSnapshot(records, skipped, year), nil
}

// mapHeader resolves column names to indices. Missing required columns make
// the whole file unusable.
func mapHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[normalizeHeader(name)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}
	return cols, nil
}

// normalizeHeader lowercases a header cell and strips spaces, underscores,
// and hyphens.
func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, name)
}

// parseRow converts one CSV row into a CutoffRecord, validating every field
// the matcher and scorer depend on.
func parseRow(row []string, cols map[string]int) (models.CutoffRecord, error) {
	var rec models.CutoffRecord

	field := func(col string) string {
		idx, ok := cols[col]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	rec.CollegeCode = field(colCollegeCode)
	rec.CollegeName = field(colCollegeName)
	rec.BranchCode = field(colBranchCode)
	rec.BranchName = field(colBranchName)
	rec.CategoryCode = field(colCategoryCode)
	rec.Quota = field(colQuota)
	rec.Category = field(colCategory)
	rec.SeatType = field(colSeatType)

	for name, val := range map[string]string{
		"college code": rec.CollegeCode,
		"college name": rec.CollegeName,
		"branch code":  rec.BranchCode,
		"branch name":  rec.BranchName,
		"quota":        rec.Quota,
		"category":     rec.Category,
		"seat type":    rec.SeatType,
	} {
		if val == "" {
			return rec, fmt.Errorf("empty %s", name)
		}
	}

	rank, err := strconv.Atoi(strings.ReplaceAll(field(colCutoffRank), ",", ""))
	if err != nil {
		return rec, fmt.Errorf("cutoff rank: %w", err)
	}
	if rank < 1 {
		return rec, fmt.Errorf("cutoff rank %d out of range", rank)
	}
	rec.CutoffRank = rank

	if raw := field(colCutoffPercentile); raw != "" {
		pct, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return rec, fmt.Errorf("cutoff percentile: %w", err)
		}
		if pct < 0 || pct > 100 {
			return rec, fmt.Errorf("cutoff percentile %v out of range", pct)
		}
		rec.CutoffPercentile = pct
	}

	round, err := strconv.Atoi(field(colRound))
	if err != nil {
		return rec, fmt.Errorf("round: %w", err)
	}
	if round < 1 {
		return rec, fmt.Errorf("round %d out of range", round)
	}
	rec.Round = round

	return rec, nil
}

// newSnapshot derives catalogs and stats from the loaded records.
func newSnapshot(records []models.CutoffRecord, skipped, year int) *Snapshot {
	colleges := make(map[string]struct{})
	branches := make(map[string]struct{})
	for i := range records {
		colleges[strings.ToLower(records[i].CollegeCode)] = struct{}{}
		branches[records[i].BranchName] = struct{}{}
	}

	branchList := make([]string, 0, len(branches))
	for b := range branches {
		branchList = append(branchList, b)
	}
	sort.Strings(branchList)

	return &Snapshot{
		Records:  records,
		Branches: branchList,
		Stats: models.DatasetStats{
			Records:     len(records),
			SkippedRows: skipped,
			Colleges:    len(colleges),
			Branches:    len(branchList),
			Year:        year,
			LoadedAt:    time.Now().UTC(),
		},
	}
}
