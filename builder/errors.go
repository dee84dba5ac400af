// SPDX-License-Identifier: MIT
// Package: divelim/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, never by stringifying sentinels.

package builder

import "errors"

// ErrNilModel indicates a nil *standings.Model was supplied.
var ErrNilModel = errors.New("builder: nil standings model")

// ErrUnknownCompetitor indicates the tested competitor is not in the model.
// The returned error also matches standings.ErrNotFound.
var ErrUnknownCompetitor = errors.New("builder: unknown competitor")

// ErrConstructFailed indicates a nil Constructor was passed to BuildNetwork.
var ErrConstructFailed = errors.New("builder: construction failed")
