package handler

import "net/http"

// trackingWriter remembers whether the status line has been sent.
type trackingWriter struct {
	http.ResponseWriter
	written bool
}

func (w *trackingWriter) WriteHeader(code int) {
	w.written = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *trackingWriter) Write(b []byte) (int, error) {
	w.written = true
	return w.ResponseWriter.Write(b)
}

func (w *trackingWriter) Written() bool {
	return w.written
}

func (w *trackingWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func track(w http.ResponseWriter) *trackingWriter {
	if tw, ok := w.(*trackingWriter); ok {
		return tw
	}
	return &trackingWriter{ResponseWriter: w}
}

// Committed reports whether a response has already been started on w.
// Writers not created by this package report false.
func Committed(w http.ResponseWriter) bool {
	tw, ok := w.(interface{ Written() bool })
	return ok && tw.Written()
}
