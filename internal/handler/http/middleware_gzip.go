// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/voucher-sync/internal/app"
)

var compressResponses = middleware.Compress(gzip.DefaultCompression, "application/json", "text/plain")

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip accepts gzip request bodies and compresses JSON and text
// responses for clients that send Accept-Encoding: gzip.
func withGZip(next http.Handler) http.Handler {
	return gunzipRequest(compressResponses(next))
}

func gunzipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr := gzipReaderPool.Get().(*gzip.Reader)
		if err := zr.Reset(r.Body); err != nil {
			gzipReaderPool.Put(zr)
			http.Error(w, app.MsgInvalidGzipData, http.StatusBadRequest)
			return
		}
		defer func() {
			zr.Close()
			gzipReaderPool.Put(zr)
		}()

		r.Body = gzipBody{Reader: zr, orig: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

// gzipBody closes the underlying request body; the pooled reader is
// released by gunzipRequest once the handler returns.
type gzipBody struct {
	*gzip.Reader
	orig io.Closer
}

func (b gzipBody) Close() error {
	return b.orig.Close()
}
