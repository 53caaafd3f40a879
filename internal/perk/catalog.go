package perk

// Catalog is an ordered collection of summaries with name and ability lookups.
// It is not safe for concurrent use.
type Catalog struct {
	dedupe bool
	perks  []Summary
	byName map[string]int
}

// NewCatalog returns an empty Catalog. When dedupe is true, Add drops any
// summary whose name is already present.
func NewCatalog(dedupe bool) *Catalog {
	return &Catalog{dedupe: dedupe, byName: make(map[string]int)}
}

// Add appends s and reports whether it was stored.
//
// Postcondition: insertion order is preserved; ByName returns the first
// summary added under a given name.
func (c *Catalog) Add(s Summary) bool {
	_, seen := c.byName[s.Name]
	if seen && c.dedupe {
		return false
	}
	if !seen {
		c.byName[s.Name] = len(c.perks)
	}
	c.perks = append(c.perks, s)
	return true
}

// All returns the stored summaries in insertion order.
func (c *Catalog) All() []Summary {
	out := make([]Summary, len(c.perks))
	copy(out, c.perks)
	return out
}

// Len returns the number of stored summaries.
func (c *Catalog) Len() int { return len(c.perks) }

// ByName returns the first summary stored under name.
func (c *Catalog) ByName(name string) (Summary, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Summary{}, false
	}
	return c.perks[i], true
}

// ByAbility returns every stored summary whose ability equals ability, in
// insertion order.
func (c *Catalog) ByAbility(ability string) []Summary {
	var out []Summary
	for _, s := range c.perks {
		if s.Ability == ability {
			out = append(out, s)
		}
	}
	return out
}
