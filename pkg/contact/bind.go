package contact

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/dmitrymomot/formguard/pkg/form"
)

// DefaultMaxBodyBytes bounds a submission body.
const DefaultMaxBodyBytes int64 = 64 << 10

// bindValues reads a form-urlencoded, multipart or JSON body. JSON values
// that are not strings become empty strings.
func bindValues(w http.ResponseWriter, r *http.Request, limit int64) (form.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	switch mediaType {
	case "application/json":
		return bindJSON(r.Body)
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		return r.PostForm, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(limit); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		return r.PostForm, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

func bindJSON(body io.Reader) (form.Values, error) {
	var raw map[string]any
	dec := json.NewDecoder(body)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrInvalidBody)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidBody)
	}

	values := make(form.Map, len(raw))
	for k, v := range raw {
		s, _ := v.(string)
		values[k] = s
	}
	return values, nil
}
