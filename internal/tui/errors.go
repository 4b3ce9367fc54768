// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/service"
)

// ErrUserQuit is returned by [TUI.Run] when the user pressed ctrl+c.
var ErrUserQuit = errors.New("user quit the program")

// humanizeError turns client errors into the line shown to the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrServerUnavailable):
		return "Network is down or the server is unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return "The server did not answer in time"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Sign in as administrator first"
	case errors.Is(err, service.ErrSectionNotLoaded):
		return "Server copy not loaded yet, press r to reload before saving"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}

// isCancelled reports whether err only says the screen was left.
func isCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}
