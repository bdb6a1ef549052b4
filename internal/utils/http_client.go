// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every launcher HTTP request.
const UserAgent = "acgs-launcher"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetDoNotParseResponse(true).Get(url)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with the launcher user agent set.
// Each call returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	client := resty.New().SetHeader("User-Agent", UserAgent)
	return &HTTPClient{Client: client}
}
