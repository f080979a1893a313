// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package geocode resolves scan coordinates to human-readable locations.
//
// Lookups go through a [Resolver], which answers from a TTL [Cache] when it
// can and otherwise queues the request. Queued requests are processed in
// small batches, one batch at a time, so that a page listing hundreds of
// scan events never fires hundreds of concurrent requests at the upstream
// service. Failures are never surfaced to callers: they resolve to
// [UnknownLocation], which is cached for a short time.
package geocode

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// UnknownLocation is returned for every coordinate that could not be
// resolved.
const UnknownLocation = "Unknown Location"

// keyPrecision is the number of decimal digits kept in a cache key (~0.11m).
const keyPrecision = 6

// ErrInvalidCoordinates is returned by [CacheKey] for values that are not
// finite decimal numbers within the latitude or longitude range.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

type point struct {
	lat, lon string
}

func (p point) key() string {
	return p.lat + "," + p.lon
}

func newPoint(lat, lon string) (point, error) {
	la, err := normalize(lat, 90)
	if err != nil {
		return point{}, err
	}
	lo, err := normalize(lon, 180)
	if err != nil {
		return point{}, err
	}

	return point{lat: la, lon: lo}, nil
}

func normalize(raw string, limit float64) (string, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > limit {
		return "", ErrInvalidCoordinates
	}

	rounded := strconv.FormatFloat(v, 'f', keyPrecision, 64)
	// -0.0000001 rounds to "-0.000000"; fold it into the positive zero key
	if strings.Trim(rounded, "-0.") == "" {
		rounded = strconv.FormatFloat(0, 'f', keyPrecision, 64)
	}

	return rounded, nil
}

// CacheKey returns the cache key of a coordinate pair: both values rounded
// to six decimal places and joined with a comma. Coordinates that differ only
// beyond the sixth decimal share a key.
func CacheKey(lat, lon string) (string, error) {
	p, err := newPoint(lat, lon)
	if err != nil {
		return "", err
	}

	return p.key(), nil
}
