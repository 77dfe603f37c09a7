// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package api

import (
	"net/http/httptest"
	"testing"
)

func TestSanitizeLogValue(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"with\nnewline", "with\\x0anewline"},
		{"tab\there", "tab\\x09here"},
		{"del\x7f", "del\\x7f"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := sanitizeLogValue(tc.in); got != tc.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateETagStable(t *testing.T) {
	a := generateETag([]byte("hello"))
	b := generateETag([]byte("hello"))
	c := generateETag([]byte("world"))

	if a != b {
		t.Errorf("same input produced different tags: %q vs %q", a, b)
	}
	if a == c {
		t.Errorf("different inputs produced the same tag: %q", a)
	}
}

func TestGetIntParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/?limit=25&bad=abc", nil)

	if got := getIntParam(r, "limit", 10); got != 25 {
		t.Errorf("limit = %d, want 25", got)
	}
	if got := getIntParam(r, "bad", 10); got != 10 {
		t.Errorf("bad = %d, want default 10", got)
	}
	if got := getIntParam(r, "missing", 7); got != 7 {
		t.Errorf("missing = %d, want default 7", got)
	}
}

func TestValidateRequestRejects(t *testing.T) {
	req := PreferenceRequest{Quota: "General", Category: "Open", SeatType: "State Level", Round: 1}
	apiErr := validateRequest(&req)
	if apiErr == nil {
		t.Fatal("expected validation error for missing student_rank")
	}
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
}
