// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler   = errors.New("waste-tracker API has no HTTP handler to serve")
	errNoListenAddress = errors.New("waste-tracker API has no listen address")
)
