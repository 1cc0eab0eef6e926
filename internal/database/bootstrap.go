package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/comite-ethique/backend/internal/model"
	"github.com/comite-ethique/backend/internal/utils"
)

// DefaultAdminUsername and DefaultAdminPassword seed the very first account
// when the admins table is empty.  The startup log nags until the password
// is changed through the admin panel.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "comite2026"
	defaultAdminName     = "Administrateur"
)

const schema = `
CREATE TABLE IF NOT EXISTS admins (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  username   TEXT    NOT NULL UNIQUE,
  password   TEXT    NOT NULL,
  name       TEXT    NOT NULL,
  created_at TEXT    NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS plaintes (
  id          TEXT    PRIMARY KEY,
  date        TEXT    NOT NULL,
  anonymous   INTEGER NOT NULL DEFAULT 0,
  plaignant   TEXT,
  grade       TEXT,
  personne    TEXT    NOT NULL,
  categorie   TEXT    NOT NULL,
  gravite     TEXT    NOT NULL,
  date_faits  TEXT,
  description TEXT    NOT NULL,
  demandes    TEXT,
  status      TEXT    NOT NULL DEFAULT 'EN_ATTENTE',
  created_at  TEXT    NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS messages (
  id           TEXT PRIMARY KEY,
  date         TEXT NOT NULL,
  expediteur   TEXT,
  destinataire TEXT NOT NULL,
  nature       TEXT NOT NULL,
  sujet        TEXT NOT NULL,
  message      TEXT NOT NULL,
  urgent       INTEGER DEFAULT 0,
  status       TEXT NOT NULL DEFAULT 'NON_LU',
  created_at   TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS suggestions (
  id          TEXT PRIMARY KEY,
  date        TEXT NOT NULL,
  anonymous   INTEGER DEFAULT 0,
  auteur      TEXT,
  domaine     TEXT NOT NULL,
  titre       TEXT NOT NULL,
  description TEXT NOT NULL,
  priorite    TEXT NOT NULL DEFAULT 'NORMALE',
  status      TEXT NOT NULL DEFAULT 'NON_LU',
  created_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS protocols (
  id         TEXT PRIMARY KEY,
  title      TEXT NOT NULL,
  category   TEXT NOT NULL,
  version    TEXT NOT NULL DEFAULT 'v1.0',
  date       TEXT NOT NULL,
  content    TEXT NOT NULL,
  created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS site_content (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
  id             INTEGER PRIMARY KEY AUTOINCREMENT,
  token_hash     TEXT      NOT NULL UNIQUE,
  admin_id       INTEGER   NOT NULL,
  admin_username TEXT      NOT NULL,
  admin_name     TEXT      NOT NULL,
  expires_at     TIMESTAMP NOT NULL,
  created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Bootstrap creates the schema and inserts the default data the application
// expects on an empty database: one admin account, five protocol documents
// and the site description.  Every step is idempotent and never overwrites
// rows that already exist.
func Bootstrap(ctx context.Context, db *sql.DB, bcryptCost int) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return err
	}
	if err := seedAdmin(ctx, db, bcryptCost); err != nil {
		return err
	}
	if err := seedProtocols(ctx, db); err != nil {
		return err
	}
	return seedContent(ctx, db)
}

func seedAdmin(ctx context.Context, db *sql.DB, cost int) error {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM admins").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := utils.HashPassword(DefaultAdminPassword, cost)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		"INSERT INTO admins (username, password, name) VALUES (?,?,?)",
		DefaultAdminUsername, hash, defaultAdminName)
	if err != nil {
		return err
	}
	log.Printf("[init] compte admin créé : %s / %s", DefaultAdminUsername, DefaultAdminPassword)
	log.Printf("[init] changez ce mot de passe via le panneau admin !")
	return nil
}

func seedProtocols(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM protocols").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, p := range defaultProtocols {
		_, err := db.ExecContext(ctx,
			"INSERT OR IGNORE INTO protocols (id,title,category,version,date,content) VALUES (?,?,?,?,?,?)",
			p.ID, p.Title, p.Category, p.Version, p.Date, p.Content)
		if err != nil {
			return err
		}
	}
	log.Printf("[init] protocoles par défaut créés")
	return nil
}

func seedContent(ctx context.Context, db *sql.DB) error {
	var key string
	err := db.QueryRowContext(ctx,
		"SELECT key FROM site_content WHERE key = 'description'").Scan(&key)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}
	_, err = db.ExecContext(ctx,
		"INSERT INTO site_content (key, value) VALUES ('description', ?)",
		defaultDescription)
	return err
}

const defaultDescription = "Le Comité d'Éthique est l'instance indépendante chargée de veiller au respect des principes éthiques, déontologiques et réglementaires au sein de l'organisation. Fondé comme organe délibératif supérieur, il représente la conscience institutionnelle de la structure et garantit l'intégrité de toutes ses opérations.\n\nLe Comité exerce une autorité consultative et disciplinaire sur l'ensemble des membres, protocoles et décisions susceptibles d'affecter le cadre éthique de l'organisation."

var defaultProtocols = []model.Protocol{
	{
		ID: "CE-2026-01", Title: "Code de Conduite Général", Category: "ÉTHIQUE", Version: "v3.2", Date: "2026-01-10",
		Content: "PROTOCOLE CE-2026-01 — CODE DE CONDUITE GÉNÉRAL\n\nARTICLE 1 — PRINCIPES FONDAMENTAUX\nTout membre s'engage à respecter les principes d'intégrité, d'impartialité et de professionnalisme.\n\nARTICLE 2 — OBLIGATIONS\n2.1 Respecter la hiérarchie et les procédures établies\n2.2 Traiter toutes les parties avec équité\n2.3 Signaler tout conflit d'intérêt potentiel\n2.4 Maintenir la confidentialité des informations sensibles\n\nARTICLE 3 — SANCTIONS\nTout manquement est passible de sanctions disciplinaires pouvant aller jusqu'à l'exclusion.",
	},
	{
		ID: "CE-2026-02", Title: "Traitement des Plaintes", Category: "PROCÉDURE", Version: "v2.1", Date: "2026-01-15",
		Content: "PROTOCOLE CE-2026-02 — TRAITEMENT DES PLAINTES\n\nÉTAPE 1 : RÉCEPTION — Accusé de réception sous 48h ouvrées.\nÉTAPE 2 : INSTRUCTION — Rapporteur nommé. Délai d'instruction : 30 jours.\nÉTAPE 3 : DÉLIBÉRATION — Examen en séance plénière. Vote à la majorité simple.\nÉTAPE 4 : DÉCISION — Notification aux parties. Possibilité d'appel sous 15 jours.",
	},
	{
		ID: "CE-2026-03", Title: "Sécurité des Données", Category: "SÉCURITÉ", Version: "v1.5", Date: "2026-01-20",
		Content: "PROTOCOLE CE-2026-03 — SÉCURITÉ DES DONNÉES\n\nCLASSIFICATION\n- NIVEAU 0 : Public\n- NIVEAU 1 : Usage interne\n- NIVEAU 2 : Confidentiel\n- NIVEAU 3 : Secret\n\nAccès niveaux 2+ : habilitation explicite requise du Président.",
	},
	{
		ID: "CE-2026-04", Title: "Protocole d'Urgence Éthique", Category: "URGENCE", Version: "v1.0", Date: "2026-02-15",
		Content: "PROTOCOLE CE-2026-04 — URGENCE ÉTHIQUE\n\nActivation : Signalement immédiat au Président.\nConvocation extraordinaire sous 24h.\nMesures conservatoires immédiates si nécessaire.\nRapport préliminaire sous 72h.",
	},
	{
		ID: "CE-2025-08", Title: "Gestion des Conflits d'Intérêt", Category: "ÉTHIQUE", Version: "v2.0", Date: "2025-11-03",
		Content: "PROTOCOLE CE-2025-08 — CONFLITS D'INTÉRÊT\n\nTout membre doit déclarer tout conflit d'intérêt avant toute délibération.\nLe membre concerné se retire de la délibération.\nLe Comité statue sur la suite à donner.",
	},
}
