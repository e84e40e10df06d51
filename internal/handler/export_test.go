package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	r := newTestRouter(t)
	admin := registerUser(t, r, "admin", "admin")
	createUnit(t, r, admin, "Plant A")

	w := doJSON(t, r, http.MethodPost, "/api/entries", admin, penEntry("Plant A"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/entries/export/csv", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	body := w.Body.String()
	// UTF-8 BOM, then the header row
	assert.True(t, strings.HasPrefix(body, "\xef\xbb\xbf"))
	assert.Contains(t, body, "Type,Company,Unit,Date,Reference,Items,Total")
	assert.Contains(t, body, "Quotation,Acme Traders,Plant A,05-08-2025,Q-1001,Pen box x10 @5,50.00")
}

func TestExportXLSX(t *testing.T) {
	r := newTestRouter(t)
	admin := registerUser(t, r, "admin", "admin")
	createUnit(t, r, admin, "Plant A")

	w := doJSON(t, r, http.MethodPost, "/api/entries", admin, penEntry("Plant A"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/entries/export/xlsx", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	// xlsx files are zip archives
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
}

func TestExport_RequiresToken(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/entries/export/csv", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
