// Package roster holds the fixed placeholder people and pipeline statuses
// shared by the dashboard generators.
package roster

// Person is a placeholder candidate and the position they applied for.
type Person struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

// People is the fixed candidate roster.
var People = []Person{
	{Name: "Alex Johnson", Position: "Software Engineer"},
	{Name: "Taylor Swift", Position: "Data Scientist"},
	{Name: "Jordan Smith", Position: "Product Manager"},
	{Name: "Casey Wilson", Position: "UX Designer"},
	{Name: "Riley Cooper", Position: "DevOps Engineer"},
	{Name: "Jamie Lee", Position: "ML Engineer"},
	{Name: "Morgan Taylor", Position: "Frontend Developer"},
	{Name: "Quinn Evans", Position: "Backend Developer"},
}

// Statuses is the full recruitment status list, terminal states included.
var Statuses = []string{
	"Sourced",
	"Applied",
	"Phone Screen",
	"Technical Interview",
	"Final Interview",
	"Offer Extended",
	"Hired",
	"Rejected",
}

// Positions returns the roster positions in roster order.
func Positions() []string {
	out := make([]string, 0, len(People))
	for _, p := range People {
		out = append(out, p.Position)
	}
	return out
}
