package catalog

import (
	"fmt"
	"strings"
)

// genreIDs maps application genre slugs to IGDB genre codes.
var genreIDs = map[string]int{
	"fighting":     4,
	"shooter":      5,
	"music":        7,
	"platform":     8,
	"puzzle":       9,
	"racing":       10,
	"rts":          11,
	"rpg":          12,
	"simulator":    13,
	"sport":        14,
	"strategy":     15,
	"adventure":    31,
	"indie":        32,
	"arcade":       33,
	"visual-novel": 34,
}

// platformIDs maps application platform slugs to IGDB platform codes.
var platformIDs = map[string]int{
	"pc":          6,
	"ps3":         9,
	"ps4":         48,
	"ps5":         167,
	"xbox-360":    12,
	"xbox-one":    49,
	"xbox-series": 169,
	"switch":      130,
	"ios":         39,
	"android":     34,
	"linux":       3,
	"mac":         14,
}

// sortClauses maps application sort keys to IGDB sort clauses.
var sortClauses = map[string]string{
	"rating":  "total_rating desc",
	"release": "first_release_date desc",
	"name":    "name asc",
}

// Query builds an APICalypse query string for the IGDB endpoint.
type Query struct {
	fields []string
	where  []string
	search string
	sort   string
	limit  int
	offset int
}

func NewQuery() *Query {
	return &Query{}
}

// Fields sets the field list to request.
func (q *Query) Fields(fields ...string) *Query {
	q.fields = fields
	return q
}

// Where appends a raw filter clause. Clauses are ANDed together.
func (q *Query) Where(clause string) *Query {
	q.where = append(q.where, clause)
	return q
}

// Genre filters by an application genre slug. Unknown slugs are
// ignored rather than producing an invalid clause.
func (q *Query) Genre(slug string) *Query {
	if id, ok := genreIDs[slug]; ok {
		q.Where(fmt.Sprintf("genres = (%d)", id))
	}
	return q
}

// Platform filters by an application platform slug.
func (q *Query) Platform(slug string) *Query {
	if id, ok := platformIDs[slug]; ok {
		q.Where(fmt.Sprintf("platforms = (%d)", id))
	}
	return q
}

// Search sets a free-text search term. The catalog orders search
// results by relevance, so any sort clause is suppressed.
func (q *Query) Search(term string) *Query {
	q.search = term
	return q
}

// Sort sets the ordering by application sort key. Unknown keys are
// ignored.
func (q *Query) Sort(key string) *Query {
	if clause, ok := sortClauses[key]; ok {
		q.sort = clause
	}
	return q
}

func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

func (q *Query) Offset(n int) *Query {
	q.offset = n
	return q
}

// Build renders the query in APICalypse syntax.
func (q *Query) Build() string {
	var b strings.Builder

	if len(q.fields) > 0 {
		fmt.Fprintf(&b, "fields %s; ", strings.Join(q.fields, ","))
	}
	if q.search != "" {
		fmt.Fprintf(&b, "search %q; ", strings.ReplaceAll(q.search, `"`, ""))
	}
	if len(q.where) > 0 {
		fmt.Fprintf(&b, "where %s; ", strings.Join(q.where, " & "))
	}
	if q.sort != "" && q.search == "" {
		fmt.Fprintf(&b, "sort %s; ", q.sort)
	}
	if q.limit > 0 {
		fmt.Fprintf(&b, "limit %d; ", q.limit)
	}
	if q.offset > 0 {
		fmt.Fprintf(&b, "offset %d; ", q.offset)
	}

	return strings.TrimSpace(b.String())
}
