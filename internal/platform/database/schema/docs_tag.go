package schema

// TagTable represents the 'docs.tag' table
type TagTable struct {
	Table     string
	Bare      string
	ID        string
	UserID    string
	Name      string
	Color     string
	CreatedAt string
	UpdatedAt string
}

// DocsTag is the schema definition for docs.tag
var DocsTag = TagTable{
	Table:     "docs.tag",
	Bare:      "tag",
	ID:        "id",
	UserID:    "userid",
	Name:      "name",
	Color:     "color",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
