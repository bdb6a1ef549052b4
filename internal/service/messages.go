// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/acgs-launcher/internal/app"
)

var userMessages = []struct {
	err error
	msg string
}{
	{ErrEnvironmentUnmet, app.MsgJavaRequired},
	{ErrDirectoryCreateFailed, app.MsgCreateDirectoryFailed},
	{ErrLicenseDeclined, app.MsgLicenseDeclined},
	{ErrFinalizeFailed, app.MsgFinalizeFailed},
	{ErrCoreMissing, app.MsgCoreMissing},
	{ErrUnsupportedServer, app.MsgUnsupportedServer},
	{ErrExternalCommandFailed, app.MsgCommandFailed},
	{ErrAccountNotFound, app.MsgAccountNotFound},
	{ErrMissingCredentials, app.MsgMissingCredentials},
	{ErrInvalidServer, app.MsgInvalidServer},
	{ErrBuiltInServer, app.MsgBuiltInServer},
	{ErrServerNotFound, app.MsgServerNotFound},
	{ErrSavingServers, app.MsgSaveServersFailed},
	{ErrDownloadFailed, app.MsgDownloadFailed},
	{ErrBusy, app.MsgOperationInProgress},
}

// UserMessage converts err into the text shown to the user. Errors wrapped as
// "%w: detail" keep their detail after the user facing message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg + strings.TrimPrefix(err.Error(), m.err.Error())
		}
	}
	return err.Error()
}
