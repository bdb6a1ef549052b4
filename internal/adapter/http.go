// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/acgs-launcher/internal/config"
	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/internal/utils"
	"github.com/MKhiriev/acgs-launcher/models"
)

const chunkSize = 32 * 1024

type httpCoreDownloader struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewHTTPCoreDownloader constructs an HTTP implementation of [CoreDownloader]
// that fetches adapterCfg.CoreURL. The request timeout covers the whole
// transfer, body included.
//
// Returns an error if adapterCfg.CoreURL is not an absolute http(s) url.
func NewHTTPCoreDownloader(adapterCfg config.LauncherAdapter, log *logger.Logger) (CoreDownloader, error) {
	coreURL, err := normalizeURL(adapterCfg.CoreURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(adapterCfg.RequestTimeout)

	return &httpCoreDownloader{
		client: client,
		url:    coreURL,
		logger: log.WithComponent("downloader"),
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", errors.New("address must include an http(s) scheme and host")
	}

	return u.String(), nil
}

// Download implements [CoreDownloader]. The body is written to a temporary
// file next to dest and renamed into place once fully received.
func (h *httpCoreDownloader) Download(ctx context.Context, dest string, onProgress ProgressFunc) (string, error) {
	if onProgress == nil {
		onProgress = func(models.DownloadProgress) {}
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(h.url)
	if err != nil {
		h.logger.Err(err).Str("func", "httpCoreDownloader.Download").Str("url", h.url).Msg("core request failed")
		return "", fmt.Errorf("download request: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "httpCoreDownloader.Download").Str("url", h.url).Msg("core request rejected")
		return "", err
	}

	var total *int64
	if length := resp.RawResponse.ContentLength; length >= 0 {
		total = &length
	}

	if err = os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create core directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+"-*.part")
	if err != nil {
		return "", fmt.Errorf("create temporary core file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	onProgress(models.NewDownloadProgress(0, total))
	written, err := copyWithProgress(ctx, tmp, body, total, onProgress)
	if err != nil {
		h.logger.Err(err).Str("func", "httpCoreDownloader.Download").Int64("written", written).Msg("core transfer interrupted")
		return "", fmt.Errorf("download body: %w", err)
	}
	if total != nil && written != *total {
		return "", fmt.Errorf("download body: %w", io.ErrUnexpectedEOF)
	}

	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close temporary core file: %w", err)
	}
	if err = os.Rename(tmpName, dest); err != nil {
		return "", fmt.Errorf("move core into place: %w", err)
	}
	committed = true

	h.logger.Info().Str("func", "httpCoreDownloader.Download").Str("dest", dest).Int64("bytes", written).Msg("core downloaded")
	return dest, nil
}

func copyWithProgress(ctx context.Context, dst io.Writer, src io.Reader, total *int64, onProgress ProgressFunc) (int64, error) {
	buf := make([]byte, chunkSize)
	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			if _, err := dst.Write(buf[:n]); err != nil {
				return written, err
			}
			written += int64(n)
			onProgress(models.NewDownloadProgress(written, total))
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}
