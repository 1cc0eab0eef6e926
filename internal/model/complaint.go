package model

// Complaint statuses.  Any of the four values may be set from any other;
// there is no transition graph.
const (
	StatusEnAttente = "EN_ATTENTE"
	StatusEnCours   = "EN_COURS"
	StatusResolu    = "RESOLU"
	StatusClasse    = "CLASSE"
)

// ValidComplaintStatus reports whether s is one of the four recognized
// complaint statuses.
func ValidComplaintStatus(s string) bool {
	switch s {
	case StatusEnAttente, StatusEnCours, StatusResolu, StatusClasse:
		return true
	}
	return false
}

// Complaint represents a row in the `plaintes` table.  The JSON field names
// match the column names the frontend already consumes.
//
// Fields:
//  ID          – generated identifier prefixed "CE".
//  Date        – RFC 3339 submission timestamp.
//  Anonymous   – whether the complainant asked to stay anonymous.
//  Plaignant   – complainant name, "ANONYME" when anonymous or absent.
//  Grade       – optional grade/role of the complainant.
//  Personne    – person the complaint is about (required).
//  Categorie   – complaint category (required).
//  Gravite     – severity level (required).
//  DateFaits   – optional date of the incident.
//  Description – free text, at least 20 characters.
//  Demandes    – optional requested outcomes.
//  Status      – lifecycle status, starts at EN_ATTENTE.
//  CreatedAt   – RFC 3339 creation timestamp.
type Complaint struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Anonymous   bool   `json:"anonymous"`
	Plaignant   string `json:"plaignant"`
	Grade       string `json:"grade"`
	Personne    string `json:"personne"`
	Categorie   string `json:"categorie"`
	Gravite     string `json:"gravite"`
	DateFaits   string `json:"date_faits"`
	Description string `json:"description"`
	Demandes    string `json:"demandes"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}
