// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrPayloadTooLarge is reported when a request body exceeds the configured
// limit.
var ErrPayloadTooLarge = errors.New("payload too large")
