package schema

// DocumentTagTable represents the 'docs.documenttag' join table
type DocumentTagTable struct {
	Table      string
	Bare       string
	DocumentID string
	TagID      string
}

// DocsDocumentTag is the schema definition for docs.documenttag
var DocsDocumentTag = DocumentTagTable{
	Table:      "docs.documenttag",
	Bare:       "documenttag",
	DocumentID: "documentid",
	TagID:      "tagid",
}
