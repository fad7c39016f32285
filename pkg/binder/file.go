package binder

import (
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"reflect"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (10MB);
// larger parts spill to temporary files.
const DefaultMaxMemory = 10 << 20

var fileHeaderType = reflect.TypeOf((*multipart.FileHeader)(nil))

// File binds multipart uploads to *multipart.FileHeader fields tagged
// `file:"name"`. Requests that are not multipart are not applicable.
func File() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/form-data" {
			return ErrNotApplicable
		}

		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return fmt.Errorf("%w: %v", ErrParseMultipart, err)
		}
		if r.MultipartForm == nil {
			return nil
		}

		rv, err := structValue(v)
		if err != nil {
			return err
		}
		rt := rv.Type()
		for i := range rv.NumField() {
			field := rv.Field(i)
			sf := rt.Field(i)
			if !field.CanSet() || sf.Type != fileHeaderType {
				continue
			}
			name, skip := parseFieldTag(sf, "file")
			if skip {
				continue
			}
			if files := r.MultipartForm.File[name]; len(files) > 0 {
				field.Set(reflect.ValueOf(files[0]))
			}
		}
		return nil
	}
}
