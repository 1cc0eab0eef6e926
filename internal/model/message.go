package model

// Read statuses shared by messages and suggestions.  The transition is
// one-way: NON_LU -> LU.
const (
	StatusNonLu = "NON_LU"
	StatusLu    = "LU"
)

// Message represents a row in the `messages` table.
type Message struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Expediteur   string `json:"expediteur"`
	Destinataire string `json:"destinataire"`
	Nature       string `json:"nature"`
	Sujet        string `json:"sujet"`
	Message      string `json:"message"`
	Urgent       bool   `json:"urgent"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}
