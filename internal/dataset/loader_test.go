// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testHeader = "College code,College name,Branch code,Branch name,Category code,Quota,Category,Seat Type,Cutoff rank,Cutoff percentile,Round"

func validCSV() string {
	return testHeader + "\n" +
		"1002,Government College of Engineering Pune,100237,Computer Engineering,GOPENS,General,Open,State Level,1500,99.2,1\n" +
		"3012,VJTI Mumbai,301224,Information Technology,GOPENS,General,Open,State Level,900,99.6,1\n"
}

func TestLoadValidFile(t *testing.T) {
	snap, err := Load(strings.NewReader(validCSV()), 2025)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(snap.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(snap.Records))
	}
	if snap.Stats.SkippedRows != 0 {
		t.Errorf("skipped = %d, want 0", snap.Stats.SkippedRows)
	}

	first := snap.Records[0]
	if first.Serial != 1 {
		t.Errorf("serial = %d, want 1", first.Serial)
	}
	if first.CollegeCode != "1002" || first.CutoffRank != 1500 || first.Round != 1 {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.CutoffPercentile != 99.2 {
		t.Errorf("percentile = %v, want 99.2", first.CutoffPercentile)
	}
	if snap.Stats.Colleges != 2 || snap.Stats.Branches != 2 {
		t.Errorf("stats = %+v, want 2 colleges / 2 branches", snap.Stats)
	}
	if snap.Stats.Year != 2025 {
		t.Errorf("year = %d, want 2025", snap.Stats.Year)
	}
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	csv := testHeader + "\n" +
		"1002,GCOEP,100237,Computer Engineering,GOPENS,General,Open,State Level,1500,99.2,1\n" +
		"1002,GCOEP,100237,Computer Engineering,GOPENS,General,Open,State Level,not-a-rank,99.2,1\n" +
		",GCOEP,100237,Computer Engineering,GOPENS,General,Open,State Level,1600,99.1,1\n" +
		"1002,GCOEP,100237,Computer Engineering,GOPENS,General,Open,State Level,0,99.2,1\n" +
		"1002,GCOEP,100237,Computer Engineering,GOPENS,General,Open,State Level,1700,150.0,1\n" +
		"1002,GCOEP,100237,Computer Engineering,GOPENS,General,Open,State Level,1800,99.0,0\n" +
		"3012,VJTI,301224,Information Technology,GOPENS,General,Open,State Level,900,99.6,1\n"

	snap, err := Load(strings.NewReader(csv), 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(snap.Records))
	}
	if snap.Stats.SkippedRows != 5 {
		t.Errorf("skipped = %d, want 5", snap.Stats.SkippedRows)
	}

	// Serials are dense over loaded rows, not source line numbers.
	if snap.Records[0].Serial != 1 || snap.Records[1].Serial != 2 {
		t.Errorf("serials = %d, %d, want 1, 2", snap.Records[0].Serial, snap.Records[1].Serial)
	}
}

func TestLoadAllRowsMalformed(t *testing.T) {
	csv := testHeader + "\n" +
		"1002,GCOEP,100237,CE,GOPENS,General,Open,State Level,bad,99.2,1\n"

	_, err := Load(strings.NewReader(csv), 0)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	csv := "College code,College name,Branch code\n1002,GCOEP,100237\n"
	_, err := Load(strings.NewReader(csv), 0)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestLoadHeaderNormalization(t *testing.T) {
	csv := "COLLEGE_CODE,college name,Branch-Code,branch_name,category code,QUOTA,Category,seat_type,CUTOFF RANK,cutoff percentile,ROUND\n" +
		"1002,GCOEP,100237,Computer Engineering,GOPENS,General,Open,State Level,1500,99.2,1\n"

	snap, err := Load(strings.NewReader(csv), 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Records[0].CutoffRank != 1500 {
		t.Errorf("rank = %d, want 1500", snap.Records[0].CutoffRank)
	}
}

func TestLoadRankWithThousandsSeparator(t *testing.T) {
	csv := testHeader + "\n" +
		"1002,GCOEP,100237,Computer Engineering,GOPENS,General,Open,State Level,\"12,500\",95.0,2\n"

	snap, err := Load(strings.NewReader(csv), 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Records[0].CutoffRank != 12500 {
		t.Errorf("rank = %d, want 12500", snap.Records[0].CutoffRank)
	}
}

func TestLoadEmptyPercentileAllowed(t *testing.T) {
	csv := testHeader + "\n" +
		"1002,GCOEP,100237,Computer Engineering,GOPENS,General,Open,State Level,1500,,1\n"

	snap, err := Load(strings.NewReader(csv), 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Records[0].CutoffPercentile != 0 {
		t.Errorf("percentile = %v, want 0", snap.Records[0].CutoffPercentile)
	}
}

func TestLoadFileUnopenable(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv"), 0)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestStoreReloadAndSwap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cutoffs.csv")
	if err := os.WriteFile(path, []byte(validCSV()), 0o600); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path, 2025)
	if store.Loaded() {
		t.Error("store must start empty")
	}
	if _, err := store.Snapshot(); !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("empty store err = %v, want ErrDataUnavailable", err)
	}

	if _, err := store.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	recs, err := store.Records()
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}

	// A failed reload keeps serving the previous snapshot.
	if err := os.WriteFile(path, []byte("garbage"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Reload(); err == nil {
		t.Error("expected reload error for corrupt file")
	}
	recs, err = store.Records()
	if err != nil || len(recs) != 2 {
		t.Errorf("previous snapshot must survive failed reload: %v, %d records", err, len(recs))
	}
}

func TestStoreBranchesSorted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cutoffs.csv")
	csv := testHeader + "\n" +
		"3012,VJTI,301224,Information Technology,GOPENS,General,Open,State Level,900,99.6,1\n" +
		"1002,GCOEP,100237,Computer Engineering,GOPENS,General,Open,State Level,1500,99.2,1\n"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path, 0)
	if _, err := store.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	branches, err := store.Branches()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Computer Engineering", "Information Technology"}
	if len(branches) != 2 || branches[0] != want[0] || branches[1] != want[1] {
		t.Errorf("branches = %v, want %v", branches, want)
	}
}
