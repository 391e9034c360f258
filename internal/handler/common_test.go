package handler

import (
	"reflect"
	"testing"
)

func TestSplitKeywords(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty input", "", nil},
		{"only separators", " , ,, ", nil},
		{"single keyword", "AI", []string{"AI"}},
		{"drops empty segments", "AI, SQL, , Design", []string{"AI", "SQL", "Design"}},
		{"trims whitespace", "  machine learning ,databases ", []string{"machine learning", "databases"}},
		{"keeps duplicates", "AI,AI", []string{"AI", "AI"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitKeywords(tc.in)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitKeywords(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCoerceInt(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int
	}{
		{"json number", float64(2023), 2023},
		{"go int", 120, 120},
		{"numeric string", "2021", 2021},
		{"padded string", " 88 ", 88},
		{"garbage string", "abc", 0},
		{"nil", nil, 0},
		{"empty string", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := coerceInt(tc.in); got != tc.want {
				t.Fatalf("coerceInt(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}
