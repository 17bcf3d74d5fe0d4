// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoListenAddress means SERVER_HTTP_ADDRESS was left empty.
	errNoListenAddress = errors.New("server http address is empty")
	errNoVaultRouter   = errors.New("vault api router is not built")
)
