// internal/recommend/predicate.go
package recommend

import (
	"fmt"
	"strings"

	"hooshungry/internal/models"
)

// FetchLimit hard-bounds the candidate fetch regardless of which optional
// filters are active, to bound scoring cost.
const FetchLimit = 200

// clause is one independent filter expression. Each clause owns its bound
// arguments; expr carries one %d verb per argument and the builder assigns
// placeholder numbers at assembly time, so adding or removing a clause
// never renumbers another clause's binding.
type clause struct {
	name string
	expr string
	args []interface{}
}

// Predicate is an ordered set of filter clauses consumable by the
// candidate store without further string manipulation.
type Predicate struct {
	clauses []clause
}

// Add appends a named clause with its bound arguments.
func (p *Predicate) Add(name, expr string, args ...interface{}) {
	p.clauses = append(p.clauses, clause{name: name, expr: expr, args: args})
}

// Names returns the clause names in composition order.
func (p *Predicate) Names() []string {
	names := make([]string, len(p.clauses))
	for i, c := range p.clauses {
		names[i] = c.name
	}
	return names
}

// Where renders the clauses into a WHERE body with sequential positional
// placeholders and returns the matching argument list.
func (p *Predicate) Where() (string, []interface{}) {
	var b strings.Builder
	args := make([]interface{}, 0, len(p.clauses))
	next := 1

	for i, c := range p.clauses {
		if i > 0 {
			b.WriteString(" AND ")
		}
		if len(c.args) == 0 {
			b.WriteString(c.expr)
			continue
		}
		nums := make([]interface{}, len(c.args))
		for j := range c.args {
			nums[j] = next
			next++
		}
		b.WriteString(fmt.Sprintf(c.expr, nums...))
		args = append(args, c.args...)
	}

	return b.String(), args
}

// ComposePredicate builds the candidate filter for one preference request.
// The hall-id clause is always present; the optional clauses compose in
// any subset.
func ComposePredicate(hallID int64, prefs models.ResolvedPreferences) *Predicate {
	p := &Predicate{}
	p.Add("hall", "hall_id = $%d", hallID)

	if prefs.VeganOnly {
		p.Add("vegan", "vegan = TRUE")
	}
	if prefs.VegetarianOnly {
		p.Add("vegetarian", "vegetarian = TRUE")
	}
	if prefs.MaxCalories != nil {
		p.Add("calories", "(calories IS NULL OR calories <= $%d)", *prefs.MaxCalories)
	}
	if prefs.Query != "" {
		p.Add("name", "name ILIKE $%d", "%"+prefs.Query+"%")
	}

	return p
}
