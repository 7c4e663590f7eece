package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request format")

// decodeJSON reads a single JSON value into dst. An empty body leaves dst
// untouched; anything after the value is rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errInvalidBody
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errInvalidBody
	}
	return nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, validator.ValidationErrors{{Field: "id", Message: "id must be a positive integer"}}
	}
	return id, nil
}

// queryParams reads optional query parameters and collects parse errors.
type queryParams struct {
	r    *http.Request
	errs validator.ValidationErrors
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{r: r}
}

func (q *queryParams) String(key string) *string {
	v := q.r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}

func (q *queryParams) Int64(key string) *int64 {
	raw := q.r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		q.errs.Add(key, key+" must be an integer")
		return nil
	}
	return &v
}

func (q *queryParams) Int(key string) *int {
	v := q.Int64(key)
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func (q *queryParams) Bool(key string) bool {
	raw := q.r.URL.Query().Get(key)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		q.errs.Add(key, key+" must be true or false")
		return false
	}
	return v
}

func (q *queryParams) Err() error {
	return q.errs.Err()
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
