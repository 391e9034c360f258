package handler

import (
	"strings"
	"testing"
)

func validReq() thesisReq {
	return thesisReq{
		Title:        "Query Optimization in Distributed Stores",
		Abstract:     "A study of cost models.",
		Year:         float64(2023),
		Type:         "Master",
		Language:     "English",
		SupervisorID: 4,
		InstituteID:  2,
		UniversityID: 1,
	}
}

func TestValidateThesisReq(t *testing.T) {
	cases := []struct {
		name       string
		mutate     func(*thesisReq)
		wantReason string // substring of the expected reason, "" = valid
	}{
		{"valid payload", func(r *thesisReq) {}, ""},
		{"missing title", func(r *thesisReq) { r.Title = "  " }, "title"},
		{"missing abstract", func(r *thesisReq) { r.Abstract = "" }, "abstract"},
		{"missing supervisor", func(r *thesisReq) { r.SupervisorID = 0 }, "supervisor_id"},
		{"missing institute", func(r *thesisReq) { r.InstituteID = 0 }, "institute_id"},
		{"missing university", func(r *thesisReq) { r.UniversityID = 0 }, "university_id"},
		{"co-supervisor equals supervisor", func(r *thesisReq) { r.CosupervisorID = r.SupervisorID }, "must differ"},
		{"distinct co-supervisor ok", func(r *thesisReq) { r.CosupervisorID = 9 }, ""},
		{"year not required", func(r *thesisReq) { r.Year = nil }, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validReq()
			tc.mutate(&req)
			reason := validateThesisReq(req)
			if tc.wantReason == "" {
				if reason != "" {
					t.Fatalf("expected valid, got rejection: %q", reason)
				}
				return
			}
			if reason == "" {
				t.Fatalf("expected rejection mentioning %q, got none", tc.wantReason)
			}
			if !strings.Contains(reason, tc.wantReason) {
				t.Fatalf("reason %q does not mention %q", reason, tc.wantReason)
			}
		})
	}
}
