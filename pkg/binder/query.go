package binder

import (
	"net/http"
)

// Query binds URL query parameters to fields tagged `query:"name"`.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrParseQuery)
	}
}

// Path binds route parameters to fields tagged `path:"name"` using extractor,
// for example chi.URLParam.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return ErrNotApplicable
		}
		lookup := func(name string) []string {
			if value := extractor(r, name); value != "" {
				return []string{value}
			}
			return nil
		}
		return bindWith(v, "path", lookup, ErrParsePath)
	}
}
