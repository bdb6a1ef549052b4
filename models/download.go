// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DownloadProgress is a snapshot of an in-flight core download.
type DownloadProgress struct {
	DownloadedBytes int64 `json:"downloaded"`
	// TotalBytes is nil when the server did not announce a content length.
	TotalBytes *int64  `json:"total,omitempty"`
	Percentage float64 `json:"percentage"`
}

// Done reports whether the snapshot represents a finished transfer.
func (p DownloadProgress) Done() bool {
	return p.Percentage >= 100
}

// NewDownloadProgress computes the percentage for the given byte counts.
// The percentage stays 0 while the total is unknown.
func NewDownloadProgress(downloaded int64, total *int64) DownloadProgress {
	p := DownloadProgress{DownloadedBytes: downloaded, TotalBytes: total}
	if total != nil && *total > 0 {
		p.Percentage = float64(downloaded) / float64(*total) * 100
		if p.Percentage > 100 {
			p.Percentage = 100
		}
	}
	return p
}

// CoreStatus describes the core artifact on disk.
type CoreStatus struct {
	Exists bool   `json:"exists"`
	Path   string `json:"path,omitempty"`
	Size   int64  `json:"size,omitempty"`
}
