package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 1 << 20

// DecodeJSON strictly decodes a single JSON value from the request body.
// Unknown fields, trailing data and oversized bodies are errors.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON value")
	}
	return nil
}

// QueryInt reads the first present query parameter among names as an int.
// ok is false when none of them is present.
func QueryInt(r *http.Request, names ...string) (n int, ok bool, err error) {
	q := r.URL.Query()
	for _, name := range names {
		if !q.Has(name) {
			continue
		}
		n, err = strconv.Atoi(q.Get(name))
		if err != nil {
			return 0, true, fmt.Errorf("%s must be an integer", name)
		}
		return n, true, nil
	}
	return 0, false, nil
}

// PathInt64 parses the named path wildcard as an int64.
func PathInt64(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return id, nil
}
