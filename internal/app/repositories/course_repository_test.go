package repositories

import (
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"

	"github.com/degreedash/degreedash/internal/pkg/helpers"
)

// buildListQuery mirrors List's filter handling so the generated SQL can
// be inspected without a database.
func buildListQuery(filter CourseFilter) (string, []interface{}, error) {
	builder := selectCoursesQuery()

	if dept := strings.TrimSpace(filter.Department); dept != "" && dept != "all" {
		builder = builder.Where(squirrel.Eq{"department": dept})
	}
	if pattern := helpers.SearchPattern(filter.SearchTerm); pattern != "" {
		builder = builder.Where(searchPredicate(pattern))
	}

	return builder.ToSql()
}

func TestListQueryNoFilter(t *testing.T) {
	query, args, err := buildListQuery(CourseFilter{})
	if err != nil {
		t.Fatalf("ToSql() error = %v", err)
	}

	if strings.Contains(query, "WHERE") {
		t.Errorf("unfiltered query contains WHERE clause: %s", query)
	}
	if !strings.Contains(query, "ORDER BY course_code ASC") {
		t.Errorf("query not ordered by course code: %s", query)
	}
	if len(args) != 0 {
		t.Errorf("unfiltered query has %d args, want 0", len(args))
	}
}

func TestListQueryDepartmentAllMeansNoFilter(t *testing.T) {
	allQuery, _, err := buildListQuery(CourseFilter{Department: "all"})
	if err != nil {
		t.Fatalf("ToSql() error = %v", err)
	}
	noneQuery, _, err := buildListQuery(CourseFilter{})
	if err != nil {
		t.Fatalf("ToSql() error = %v", err)
	}

	if allQuery != noneQuery {
		t.Errorf("department \"all\" produced a different query:\n%s\n%s", allQuery, noneQuery)
	}
}

func TestListQueryDepartmentFilter(t *testing.T) {
	query, args, err := buildListQuery(CourseFilter{Department: "COMP"})
	if err != nil {
		t.Fatalf("ToSql() error = %v", err)
	}

	if !strings.Contains(query, "department = $1") {
		t.Errorf("query missing department predicate: %s", query)
	}
	if len(args) != 1 || args[0] != "COMP" {
		t.Errorf("args = %v, want [COMP]", args)
	}
}

func TestListQuerySearchFilter(t *testing.T) {
	query, args, err := buildListQuery(CourseFilter{SearchTerm: "algo"})
	if err != nil {
		t.Fatalf("ToSql() error = %v", err)
	}

	for _, column := range []string{"course_code", "course_name", "description"} {
		if !strings.Contains(query, column+" ILIKE") {
			t.Errorf("query missing ILIKE on %s: %s", column, query)
		}
	}
	if len(args) != 3 {
		t.Fatalf("args = %v, want three copies of the pattern", args)
	}
	for _, arg := range args {
		if arg != "%algo%" {
			t.Errorf("arg = %v, want %%algo%%", arg)
		}
	}
}

func TestListQueryCombinedFilters(t *testing.T) {
	query, args, err := buildListQuery(CourseFilter{Department: "COMP", SearchTerm: "systems"})
	if err != nil {
		t.Fatalf("ToSql() error = %v", err)
	}

	if !strings.Contains(query, "department = $1") {
		t.Errorf("query missing department predicate: %s", query)
	}
	if !strings.Contains(query, "$4") {
		t.Errorf("combined query should bind four placeholders: %s", query)
	}
	if len(args) != 4 {
		t.Errorf("args = %v, want 4 values", args)
	}
}

func TestSearchPatternIgnoredWhenBlank(t *testing.T) {
	query, _, err := buildListQuery(CourseFilter{SearchTerm: "   "})
	if err != nil {
		t.Fatalf("ToSql() error = %v", err)
	}
	if strings.Contains(query, "ILIKE") {
		t.Errorf("blank search term still filtered: %s", query)
	}
}
