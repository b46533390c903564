package schema

// DocumentTable represents the 'docs.document' table
type DocumentTable struct {
	Table     string
	Bare      string
	ID        string
	UserID    string
	Title     string
	CreatedAt string
	DeletedAt string
}

// DocsDocument is the schema definition for docs.document
var DocsDocument = DocumentTable{
	Table:     "docs.document",
	Bare:      "document",
	ID:        "id",
	UserID:    "userid",
	Title:     "title",
	CreatedAt: "createdat",
	DeletedAt: "deletedat",
}
