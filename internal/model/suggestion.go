package model

// Suggestion represents a row in the `suggestions` table.  Priority is a
// free string defaulting to "NORMALE".
type Suggestion struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Anonymous   bool   `json:"anonymous"`
	Auteur      string `json:"auteur"`
	Domaine     string `json:"domaine"`
	Titre       string `json:"titre"`
	Description string `json:"description"`
	Priorite    string `json:"priorite"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}
