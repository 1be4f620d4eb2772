// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// compressionMinSize is the smallest body worth compressing.
const compressionMinSize = 1024

// gzipWriterPool pools gzip writers to reduce allocations
var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		return gzip.NewWriter(io.Discard)
	},
}

// gzipResponseWriter buffers the start of a response until it knows whether
// the body reaches compressionMinSize, then commits to gzip or plain output.
type gzipResponseWriter struct {
	http.ResponseWriter
	status  int
	buf     []byte
	gz      *gzip.Writer
	decided bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if w.decided {
		if w.gz != nil {
			return w.gz.Write(b)
		}
		return w.ResponseWriter.Write(b)
	}

	w.buf = append(w.buf, b...)
	if len(w.buf) < compressionMinSize {
		return len(b), nil
	}

	if err := w.startGzip(); err != nil {
		return 0, err
	}
	return len(b), nil
}

func (w *gzipResponseWriter) startGzip() error {
	w.decided = true

	h := w.ResponseWriter.Header()
	h.Set("Content-Encoding", "gzip")
	h.Del("Content-Length") // Length will be different after compression
	h.Add("Vary", "Accept-Encoding")
	w.ResponseWriter.WriteHeader(w.statusOrOK())

	w.gz = gzipWriterPool.Get().(*gzip.Writer)
	w.gz.Reset(w.ResponseWriter)
	_, err := w.gz.Write(w.buf)
	w.buf = nil
	return err
}

// finish flushes a response that never reached the size threshold, or
// closes the gzip stream.
func (w *gzipResponseWriter) finish() {
	if !w.decided {
		w.decided = true
		w.ResponseWriter.WriteHeader(w.statusOrOK())
		if len(w.buf) > 0 {
			_, _ = w.ResponseWriter.Write(w.buf)
		}
		return
	}
	if w.gz != nil {
		_ = w.gz.Close() // best-effort, response already committed
		gzipWriterPool.Put(w.gz)
		w.gz = nil
	}
}

func (w *gzipResponseWriter) statusOrOK() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Compression middleware adds gzip compression to responses.
// Only responses of at least 1KB are compressed; smaller ones pass through
// unchanged.
func Compression(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next(w, r)
			return
		}

		gzw := &gzipResponseWriter{ResponseWriter: w}
		defer gzw.finish()
		next(gzw, r)
	}
}
