package repository

import (
	"strings"
	"testing"
)

func TestBuildSearchSQLNoFilters(t *testing.T) {
	sqlStr, args := buildSearchSQL(ThesisSearchQuery{Limit: 30})

	if strings.Contains(sqlStr, "WHERE") {
		t.Fatalf("expected no WHERE clause, got:\n%s", sqlStr)
	}
	if !strings.Contains(sqlStr, "ORDER BY t.submission_date DESC, t.year DESC") {
		t.Fatalf("missing newest-first ordering:\n%s", sqlStr)
	}
	if !strings.Contains(sqlStr, "LIMIT $1") {
		t.Fatalf("missing row cap placeholder:\n%s", sqlStr)
	}
	if len(args) != 1 || args[0] != 30 {
		t.Fatalf("expected args [30], got %v", args)
	}
}

func TestBuildSearchSQLSearchPredicateIsInclusiveOr(t *testing.T) {
	sqlStr, args := buildSearchSQL(ThesisSearchQuery{Search: "ATA", Limit: 30})

	// One placeholder feeds both sides of the OR: a match on either title
	// or author name is enough.
	if !strings.Contains(sqlStr, "(t.title ILIKE $1 OR a.author_name ILIKE $1)") {
		t.Fatalf("missing OR search predicate:\n%s", sqlStr)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args (pattern, limit), got %v", args)
	}
	if args[0] != "%ATA%" {
		t.Fatalf("expected substring pattern %%ATA%%, got %v", args[0])
	}
}

func TestBuildSearchSQLFiltersAreConjunctive(t *testing.T) {
	q := ThesisSearchQuery{
		Search:   "graph",
		Type:     "Master",
		Language: "English",
		Year:     2023,
		Limit:    30,
	}
	sqlStr, args := buildSearchSQL(q)

	for _, clause := range []string{
		"(t.title ILIKE $1 OR a.author_name ILIKE $1)",
		"t.type = $2",
		"l.language_name = $3",
		"t.year = $4",
		"LIMIT $5",
	} {
		if !strings.Contains(sqlStr, clause) {
			t.Fatalf("missing clause %q in:\n%s", clause, sqlStr)
		}
	}
	if strings.Count(sqlStr, " AND ") != 3 {
		t.Fatalf("expected 3 ANDs joining 4 predicates, got:\n%s", sqlStr)
	}
	want := []any{"%graph%", "Master", "English", 2023, 30}
	if len(args) != len(want) {
		t.Fatalf("expected %d args, got %v", len(want), args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("arg %d = %v, want %v", i, args[i], want[i])
		}
	}
}

func TestBuildSearchSQLAllSentinelMeansNoFilter(t *testing.T) {
	sqlStr, args := buildSearchSQL(ThesisSearchQuery{Type: "All", Language: "All", Limit: 30})

	if strings.Contains(sqlStr, "t.type") || strings.Contains(sqlStr, "l.language_name =") {
		t.Fatalf("sentinel \"All\" must not produce a filter:\n%s", sqlStr)
	}
	if len(args) != 1 {
		t.Fatalf("expected only the limit arg, got %v", args)
	}
}

func TestBuildSearchSQLPlaceholdersStayDense(t *testing.T) {
	// Skipping the search predicate must not leave a gap in the $n
	// numbering, or Postgres rejects the statement.
	sqlStr, args := buildSearchSQL(ThesisSearchQuery{Type: "Doctorate", Year: 2020, Limit: 10})

	if !strings.Contains(sqlStr, "t.type = $1") {
		t.Fatalf("expected type to bind $1:\n%s", sqlStr)
	}
	if !strings.Contains(sqlStr, "t.year = $2") {
		t.Fatalf("expected year to bind $2:\n%s", sqlStr)
	}
	if !strings.Contains(sqlStr, "LIMIT $3") {
		t.Fatalf("expected limit to bind $3:\n%s", sqlStr)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %v", args)
	}
}
