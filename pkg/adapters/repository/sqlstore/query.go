package sqlstore

import (
	"strings"

	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
)

// predicate is one AND-ed term of a WHERE clause. The clause text uses "?"
// markers and never embeds user input; values travel in args.
type predicate struct {
	clause string
	args   []any
}

// whereBuilder accumulates predicates in insertion order.
type whereBuilder struct {
	preds []predicate
}

func (b *whereBuilder) add(clause string, args ...any) {
	b.preds = append(b.preds, predicate{clause: clause, args: args})
}

// build joins the predicates with AND and flattens their arguments.
func (b *whereBuilder) build() (string, []any) {
	if len(b.preds) == 0 {
		return "", nil
	}
	clauses := make([]string, 0, len(b.preds))
	args := make([]any, 0, len(b.preds))
	for _, p := range b.preds {
		clauses = append(clauses, p.clause)
		args = append(args, p.args...)
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

const jobColumns = `jobs.id, jobs.title, jobs.company, jobs.location, jobs.category,
	jobs.description, jobs.employment_type, jobs.salary_range, jobs.created_at`

const jobSelect = `SELECT ` + jobColumns + `, COUNT(applications.id) AS application_count
	FROM jobs
	LEFT JOIN applications ON applications.job_id = jobs.id`

// escapeLike makes the search term match literally inside a LIKE pattern.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// orderBy returns the ORDER BY clause for a sort mode. id is the final
// tie-break so that results form a total order.
func orderBy(mode domain.SortMode) string {
	switch mode {
	case domain.SortOldest:
		return " ORDER BY jobs.created_at ASC, jobs.id ASC"
	case domain.SortApplications:
		return " ORDER BY application_count DESC, jobs.created_at DESC, jobs.id DESC"
	default:
		return " ORDER BY jobs.created_at DESC, jobs.id DESC"
	}
}

// buildSearchQuery translates criteria into a parameterized aggregate query.
func buildSearchQuery(d Dialect, c domain.Criteria) (string, []any) {
	c = c.Normalize()

	var wb whereBuilder
	if c.Search != "" {
		pattern := "%" + escapeLike(c.Search) + "%"
		wb.add("("+d.containsMatch("jobs.title")+" OR "+d.containsMatch("jobs.company")+" OR "+d.containsMatch("jobs.description")+")",
			pattern, pattern, pattern)
	}
	if c.Category != "" {
		wb.add("jobs.category = ?", c.Category)
	}
	if c.Location != "" {
		wb.add("jobs.location = ?", c.Location)
	}
	if c.EmploymentType != "" {
		wb.add("jobs.employment_type = ?", c.EmploymentType)
	}

	where, args := wb.build()
	query := jobSelect + where + " GROUP BY jobs.id" + orderBy(c.Sort)
	return d.Rebind(query), args
}
