//go:build windows

package main

import "github.com/pkg/errors"

// setRawIO is unsupported on Windows; grounded on cmd/retro/term_windows.go.
func setRawIO() (func(), error) {
	return nil, errors.New("raw IO not supported")
}
