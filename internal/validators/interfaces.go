// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks admin and mobile input before services seal and
// store it. Validation runs on plaintext; the envelope codec never sees an
// invalid value.
//
// A Validator accepts the input and, optionally, the names of the fields to
// check. Without field names every rule for the input type applies; services
// pass names when only part of a request is mandatory, such as a scan whose
// quantity may be omitted.
package validators

import "context"

// Validator validates scanner, product, manufacturer and scan input.
type Validator interface {
	// Validate checks value, restricted to fields when any are given.
	Validate(ctx context.Context, value any, fields ...string) error
}
