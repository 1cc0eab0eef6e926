package model

// Protocol represents a published procedural document in the `protocols`
// table.  The ID is chosen by the admin and acts as the primary key:
// re-submitting the same ID replaces the document in full.  No version
// history is kept.
type Protocol struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Version   string `json:"version"`
	Date      string `json:"date"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
