// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides helpers for extracting data from HTTP requests.

It hides the router's parameter extraction and the body decoding rules so that
handlers stay uniform.
*/
package requestutil

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomira-docs/internal/platform/apperr"
	"github.com/taibuivan/yomira-docs/internal/platform/ctxutil"
	"github.com/taibuivan/yomira-docs/internal/platform/validate"
)

/*
DecodeJSON decodes the request body into target.

Returns validate.ErrInvalidJSON if decoding fails.
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
IsForm reports whether the body is application/x-www-form-urlencoded.
*/
func IsForm(request *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(request.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}

/*
FormValues parses a form-encoded body and returns the requested fields.

Absent fields map to "".
*/
func FormValues(request *http.Request, fields ...string) (map[string]string, error) {
	if err := request.ParseForm(); err != nil {
		return nil, validate.ErrInvalidForm
	}

	values := make(map[string]string, len(fields))
	for _, field := range fields {
		values[field] = request.PostForm.Get(field)
	}
	return values, nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
RequiredUserID returns the user ID of the authenticated caller.

Returns apperr.Forbidden when the request carries no principal.
*/
func RequiredUserID(request *http.Request) (string, error) {
	principal := ctxutil.GetPrincipal(request.Context())
	if principal == nil {
		return "", apperr.Forbidden("Authentication required")
	}
	return principal.UserID, nil
}
