package handler_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdminRoutes_RequireSession walks every admin route without a cookie
// and expects 401 with no side effect.
func TestAdminRoutes_RequireSession(t *testing.T) {
	s := newTestServer(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/admin/plaintes"},
		{http.MethodPatch, "/api/admin/plaintes/CE-XXX"},
		{http.MethodGet, "/api/admin/messages"},
		{http.MethodPatch, "/api/admin/messages/MSG-XXX"},
		{http.MethodGet, "/api/admin/suggestions"},
		{http.MethodPatch, "/api/admin/suggestions/SUG-XXX"},
		{http.MethodPost, "/api/admin/protocols"},
		{http.MethodDelete, "/api/admin/protocols/CE-2026-01"},
		{http.MethodPut, "/api/admin/content"},
		{http.MethodGet, "/api/admin/accounts"},
		{http.MethodPost, "/api/admin/accounts"},
		{http.MethodDelete, "/api/admin/accounts/1"},
	}
	for _, r := range routes {
		rec := s.request(r.method, r.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", r.method, r.path)
	}

	// The guarded delete above must not have removed the seeded protocol.
	rec := s.request(http.MethodGet, "/api/protocols?q=CE-2026-01", "", "")
	var items []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 1)
}

func TestUpdateComplaintStatus_ValidatesValue(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	rec := s.request(http.MethodPost, "/api/plaintes",
		`{"personne":"X","categorie":"Y","gravite":"HAUTE","description":"`+strings.Repeat("A", 25)+`"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	id := decode(t, rec)["id"].(string)

	// Unknown status values are rejected and leave the row unchanged.
	rec = s.request(http.MethodPatch, "/api/admin/plaintes/"+id, `{"status":"ARCHIVE"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Statut invalide")

	var items []map[string]any
	listRec := s.request(http.MethodGet, "/api/admin/plaintes", "", cookie)
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "EN_ATTENTE", items[0]["status"])

	// Each of the four recognized values is reachable from any other.
	for _, status := range []string{"EN_COURS", "RESOLU", "CLASSE", "EN_ATTENTE"} {
		rec = s.request(http.MethodPatch, "/api/admin/plaintes/"+id, `{"status":"`+status+`"}`, cookie)
		require.Equal(t, http.StatusOK, rec.Code, status)
	}
}

func TestMarkMessageRead_OneWay(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	rec := s.request(http.MethodPost, "/api/messages",
		`{"destinataire":"Comité","nature":"ALERTE","sujet":"S","message":"M","urgent":true}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	id := decode(t, rec)["id"].(string)

	rec = s.request(http.MethodPatch, "/api/admin/messages/"+id, "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]any
	listRec := s.request(http.MethodGet, "/api/admin/messages", "", cookie)
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "LU", items[0]["status"])
	assert.Equal(t, true, items[0]["urgent"])
}

func TestUpsertProtocol_ReplacesExisting(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	rec := s.request(http.MethodPost, "/api/admin/protocols",
		`{"id":"CE-2026-01","title":"Titre remplacé","category":"PROCÉDURE","content":"Nouveau texte."}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	listRec := s.request(http.MethodGet, "/api/protocols?q=CE-2026-01", "", "")
	var items []map[string]any
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Titre remplacé", items[0]["title"])
	assert.Equal(t, "PROCÉDURE", items[0]["category"])
	assert.Equal(t, "v1.0", items[0]["version"], "version defaults when omitted")
	assert.Equal(t, "Nouveau texte.", items[0]["content"])
}

func TestDeleteProtocol_Idempotent(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	for i := 0; i < 2; i++ {
		rec := s.request(http.MethodDelete, "/api/admin/protocols/CE-2025-08", "", cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	stats := decode(t, s.request(http.MethodGet, "/api/stats", "", ""))
	assert.Equal(t, float64(4), stats["protocols"])
}

func TestUpsertContent_Validation(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	// Missing value is invalid, empty-string value is not.
	rec := s.request(http.MethodPut, "/api/admin/content", `{"key":"horaires"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodPut, "/api/admin/content", `{"key":"horaires","value":""}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.request(http.MethodPut, "/api/admin/content", `{"key":"horaires","value":"Lundi 9h-17h"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, s.request(http.MethodGet, "/api/content", "", ""))
	assert.Equal(t, "Lundi 9h-17h", body["horaires"])
}

func TestCreateAccount_Validation(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	rec := s.request(http.MethodPost, "/api/admin/accounts",
		`{"username":"greffier","password":"short"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodPost, "/api/admin/accounts",
		`{"username":"greffier","password":"motdepasse"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// Duplicate usernames conflict.
	rec = s.request(http.MethodPost, "/api/admin/accounts",
		`{"username":"greffier","password":"autrepasse"}`, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "existe déjà")

	// The listing shows the new account, name defaulted to the username,
	// and never a password hash.
	var items []map[string]any
	listRec := s.request(http.MethodGet, "/api/admin/accounts", "", cookie)
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "greffier", items[1]["username"])
	assert.Equal(t, "greffier", items[1]["name"])
	assert.NotContains(t, listRec.Body.String(), "$2a$")
}

func TestDeleteAccount_SelfProtection(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	// The seeded admin is both the caller and the last account.
	rec := s.request(http.MethodDelete, "/api/admin/accounts/1", "", cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "votre propre compte")

	// A second account can be removed.
	rec = s.request(http.MethodPost, "/api/admin/accounts",
		`{"username":"greffier","password":"motdepasse","name":"Greffier"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.request(http.MethodDelete, "/api/admin/accounts/2", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Back to one account: deleting any account is forbidden again.
	rec = s.request(http.MethodDelete, "/api/admin/accounts/1", "", cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteAccount_LastAccountProtected(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)

	rec := s.request(http.MethodPost, "/api/admin/accounts",
		`{"username":"greffier","password":"motdepasse"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// Caller (id 1) deletes the other account, then stands alone.
	rec = s.request(http.MethodDelete, "/api/admin/accounts/2", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// With a single account left, no delete goes through.
	rec = s.request(http.MethodDelete, "/api/admin/accounts/999", "", cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "dernier compte")
}
