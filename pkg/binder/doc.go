// Package binder decodes HTTP request data into typed request structs.
//
// Every binder has the signature func(*http.Request, any) error and reads
// only its own source:
//
//   - JSON() decodes the body strictly (unknown fields are rejected)
//   - Query() fills fields tagged `query:"name"`
//   - Path(extractor) fills fields tagged `path:"name"`; with chi pass chi.URLParam
//   - File() fills *multipart.FileHeader fields tagged `file:"name"`
//
// Binders that find nothing to do return ErrNotApplicable, which
// callers skip.
package binder
