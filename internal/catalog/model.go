package catalog

// UnknownType is the genre-type assigned to a root work that declares none.
const UnknownType = "Unknown"

// Recording is a single recording attached to a work node. DeezerID is the
// external track identifier; zero means the extraction found none.
type Recording struct {
	GID      string
	Name     string
	ISRC     string
	Label    string
	DeezerID int64
}

// Work is a node in a work tree. A work owns its subtree exclusively; the
// Total* fields are derived once by AnnotateCounts and cover the whole
// subtree.
type Work struct {
	GID       string
	Name      string
	Type      string
	BeginYear *int
	EndYear   *int

	Recordings []Recording
	Subworks   []*Work

	TotalRecordings int
	TotalSubworks   int
}

// Composer owns an ordered sequence of root work trees.
type Composer struct {
	GID       string
	Name      string
	BirthYear *int
	DeathYear *int
	Works     []*Work
}
