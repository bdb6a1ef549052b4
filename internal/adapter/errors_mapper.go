// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts non-2xx responses into package sentinels.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	text := http.StatusText(code)
	switch code {
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, text)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, text)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, text)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, text)
	default:
		return fmt.Errorf("%w: http %d %s", ErrUnexpectedStatus, code, text)
	}
}
