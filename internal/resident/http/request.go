package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/aussiebroadwan/iresident/pkg/httpx"
)

// parsePage reads offset (or its alias skip) and limit. Absent values take
// the defaults; malformed or negative values are rejected.
func parsePage(r *http.Request) (domain.Page, error) {
	page := domain.DefaultPage()

	offset, ok, err := httpx.QueryInt(r, "offset", "skip")
	if err != nil {
		return page, err
	}
	if ok {
		page.Offset = offset
	}

	limit, ok, err := httpx.QueryInt(r, "limit")
	if err != nil {
		return page, err
	}
	if ok {
		page.Limit = limit
	}

	if !page.Valid() {
		return page, errors.New("offset and limit must be non-negative")
	}
	return page, nil
}

// pathID writes a 400 and reports false when {id} is not an integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return 0, false
	}
	return id, true
}

// decodeBody writes a 400 and reports false when the body is not a single
// JSON object of the expected shape.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		writeBadRequest(w, "Invalid JSON in request body: "+err.Error())
		return false
	}
	return true
}
