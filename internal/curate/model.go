package curate

// Part is a curated, independently playable unit of a work. Score is
// relative to the work's most popular part (100 = most popular); Deezer
// holds the representative track IDs, all exclusively claimed by this part's
// work once deduplication has run.
type Part struct {
	Name   string  `json:"name"`
	Deezer []int64 `json:"deezer"`
	Score  float64 `json:"score"`
}

// Work is a curated root work. Score is the absolute Work Significance
// Score; Type is the resolved output category. Parts is sorted by
// descending score for presentation only.
type Work struct {
	GID       string  `json:"gid"`
	Composer  string  `json:"composer"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	BeginYear *int    `json:"begin_year"`
	EndYear   *int    `json:"end_year"`
	Score     float64 `json:"score"`
	Parts     []Part  `json:"parts"`
}

// Composer is a composer present in the final catalog.
type Composer struct {
	GID       string `json:"gid"`
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
}

// Catalog is the final output container: composers sorted by name, works
// grouped by category and sorted by descending score.
type Catalog struct {
	Composers []Composer         `json:"composers"`
	Works     map[string][]*Work `json:"works"`
}

// AllWorks returns every work in the catalog across categories. Iteration
// follows Grouped order when built through the pipeline; on a bare Catalog
// the map order is unspecified and callers must sort.
func (c *Catalog) AllWorks() []*Work {
	var all []*Work
	for _, works := range c.Works {
		all = append(all, works...)
	}
	return all
}

// Grouped is the deterministic intermediate grouping of works by category.
// Order records categories by first appearance so every later stage,
// dedup's first-occurrence claims in particular, sees works in a stable
// sequence.
type Grouped struct {
	Order      []string
	ByCategory map[string][]*Work
}

// NewGrouped returns an empty grouping.
func NewGrouped() *Grouped {
	return &Grouped{ByCategory: make(map[string][]*Work)}
}

// Add appends a work to its category bucket, registering the category on
// first use.
func (g *Grouped) Add(work *Work) {
	if _, ok := g.ByCategory[work.Type]; !ok {
		g.Order = append(g.Order, work.Type)
	}
	g.ByCategory[work.Type] = append(g.ByCategory[work.Type], work)
}

// Walk visits every work in grouping order.
func (g *Grouped) Walk(visit func(category string, work *Work)) {
	for _, category := range g.Order {
		for _, work := range g.ByCategory[category] {
			visit(category, work)
		}
	}
}

// Replace swaps a category's work list, dropping the category from the
// grouping when the replacement is empty.
func (g *Grouped) Replace(category string, works []*Work) {
	if len(works) == 0 {
		delete(g.ByCategory, category)
		order := g.Order[:0]
		for _, c := range g.Order {
			if c != category {
				order = append(order, c)
			}
		}
		g.Order = order
		return
	}
	g.ByCategory[category] = works
}
