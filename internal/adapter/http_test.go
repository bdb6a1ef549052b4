// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/acgs-launcher/internal/config"
	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/models"
)

func newTestDownloader(t *testing.T, serverURL string) CoreDownloader {
	t.Helper()
	d, err := NewHTTPCoreDownloader(config.LauncherAdapter{
		CoreURL:        serverURL + "/cmcl.jar",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return d
}

func recordProgress() (*[]models.DownloadProgress, ProgressFunc) {
	var got []models.DownloadProgress
	return &got, func(p models.DownloadProgress) { got = append(got, p) }
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPCoreDownloader_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "cmcl.jar", "ftp://example.com/cmcl.jar", "https://"} {
		_, err := NewHTTPCoreDownloader(config.LauncherAdapter{CoreURL: raw}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidAddress, raw)
	}
}

// ── Download ────────────────────────────────────────────────────────────────

func TestDownload_Success(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), 3*chunkSize+100)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cmcl.jar", r.URL.Path)
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "core", "cmcl.jar")
	progress, onProgress := recordProgress()

	got, err := newTestDownloader(t, srv.URL).Download(context.Background(), dest, onProgress)
	require.NoError(t, err)
	assert.Equal(t, dest, got)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	require.NotEmpty(t, *progress)
	first, last := (*progress)[0], (*progress)[len(*progress)-1]
	assert.Equal(t, int64(0), first.DownloadedBytes)
	assert.Equal(t, int64(len(payload)), last.DownloadedBytes)
	require.NotNil(t, last.TotalBytes)
	assert.Equal(t, int64(len(payload)), *last.TotalBytes)
	assert.InDelta(t, 100, last.Percentage, 0.001)

	for i := 1; i < len(*progress); i++ {
		assert.GreaterOrEqual(t, (*progress)[i].DownloadedBytes, (*progress)[i-1].DownloadedBytes)
	}

	entries, err := os.ReadDir(filepath.Dir(dest))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be renamed away")
}

func TestDownload_UnknownLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("part-1"))
		w.(http.Flusher).Flush()
		_, _ = w.Write([]byte("part-2"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "cmcl.jar")
	progress, onProgress := recordProgress()

	_, err := newTestDownloader(t, srv.URL).Download(context.Background(), dest, onProgress)
	require.NoError(t, err)

	for _, p := range *progress {
		assert.Nil(t, p.TotalBytes)
		assert.Zero(t, p.Percentage)
	}
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "part-1part-2", string(data))
}

func TestDownload_HTTPErrors(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusNotFound, wantErr: ErrNotFound},
		{status: http.StatusForbidden, wantErr: ErrForbidden},
		{status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{status: http.StatusTeapot, wantErr: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			dest := filepath.Join(t.TempDir(), "cmcl.jar")
			_, err := newTestDownloader(t, srv.URL).Download(context.Background(), dest, nil)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoFileExists(t, dest)
		})
	}
}

func TestDownload_KeepsExistingFileOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "cmcl.jar")
	require.NoError(t, os.WriteFile(dest, []byte("old core"), 0o644))

	_, err := newTestDownloader(t, srv.URL).Download(context.Background(), dest, nil)
	require.Error(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "old core", string(data))
}

func TestDownload_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1000")
		_, _ = w.Write([]byte("partial"))
		w.(http.Flusher).Flush()
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	dest := filepath.Join(t.TempDir(), "cmcl.jar")

	_, err := newTestDownloader(t, srv.URL).Download(ctx, dest, func(p models.DownloadProgress) {
		if p.DownloadedBytes > 0 {
			cancel()
		}
	})

	require.Error(t, err)
	assert.NoFileExists(t, dest)
	entries, err := os.ReadDir(filepath.Dir(dest))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDownload_TruncatedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, buf, err := hj.Hijack()
		require.NoError(t, err)
		_, _ = buf.WriteString("HTTP/1.1 200 OK\r\nContent-Length: 100\r\n\r\nshort")
		_ = buf.Flush()
		_ = conn.Close()
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "cmcl.jar")
	_, err := newTestDownloader(t, srv.URL).Download(context.Background(), dest, nil)

	require.Error(t, err)
	assert.NoFileExists(t, dest)
}
