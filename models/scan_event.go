// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// ScanEventRecord is one recorded scan as stored in the "scan_events" table.
// Latitude, Longitude and Location hold serialized envelopes.
//
// Scanner, Product and Manufacturer are filled by list queries that join the
// referenced rows; only the columns needed for display are loaded.
type ScanEventRecord struct {
	ID             string
	ScannerID      string
	ProductID      *string
	ManufacturerID *string
	Latitude       string
	Longitude      string
	Location       *string
	Quantity       int
	ScannedAt      time.Time

	Scanner      *ScannerRecord
	Product      *ProductRecord
	Manufacturer *ManufacturerRecord
}

// TableName returns the name of the database table associated with the
// scan event model.
func (ScanEventRecord) TableName() string {
	return "scan_events"
}

// ScanEvent is the decoded view of a [ScanEventRecord].
type ScanEvent struct {
	ID             string    `json:"id"`
	ScannerID      string    `json:"scanner_id"`
	ProductID      *string   `json:"product_id,omitempty"`
	ManufacturerID *string   `json:"manufacturer_id,omitempty"`
	Latitude       string    `json:"latitude"`
	Longitude      string    `json:"longitude"`
	Location       *string   `json:"location,omitempty"`
	Quantity       int       `json:"quantity"`
	ScannedAt      time.Time `json:"scanned_at"`

	Scanner      *ScannerSummary      `json:"scanner,omitempty"`
	Product      *ProductSummary      `json:"product,omitempty"`
	Manufacturer *ManufacturerSummary `json:"manufacturer,omitempty"`

	TamperedFields []string `json:"tampered_fields,omitempty"`
}

// ScannerSummary is the part of a scanner shown next to its scan events.
type ScannerSummary struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// ProductSummary is the part of a product shown next to a scan event.
type ProductSummary struct {
	ID           string      `json:"id"`
	Name         *string     `json:"name,omitempty"`
	Barcode      string      `json:"barcode"`
	Manufacturer string      `json:"manufacturer"`
	Type         ProductType `json:"type"`
}

// ManufacturerSummary is the part of a manufacturer shown next to a scan
// event that matched by barcode prefix.
type ManufacturerSummary struct {
	ID      string  `json:"id"`
	Name    *string `json:"name,omitempty"`
	Barcode string  `json:"barcode"`
}

// ScanEventFilter narrows scan event queries. Zero fields do not filter.
// The time range is half-open: From <= scanned_at < To.
type ScanEventFilter struct {
	ScannerID string
	From      *time.Time
	To        *time.Time

	Limit  uint64
	Offset uint64
}

// ScanRequest is the body of a mobile scan submission. Coordinates are
// accepted both as JSON numbers and as numeric strings.
type ScanRequest struct {
	Code     string      `json:"code"`
	Lat      json.Number `json:"lat"`
	Lng      json.Number `json:"lng"`
	Quantity int         `json:"qty"`
}

// ScanHistory is one page of a scanner's own scan events.
type ScanHistory struct {
	Rows  []ScanEvent `json:"rows"`
	Total int         `json:"total"`
}

// ScannerStatsRecord is the per-scanner aggregate computed by the database.
type ScannerStatsRecord struct {
	ScannerID     string
	Firstname     string
	Lastname      string
	ScanCount     int
	TotalQuantity int
}

// ScannerStats is the decoded view of a [ScannerStatsRecord].
type ScannerStats struct {
	ScannerID     string `json:"scanner_id"`
	Firstname     string `json:"firstname"`
	Lastname      string `json:"lastname"`
	ScanCount     int    `json:"scan_count"`
	TotalQuantity int    `json:"total_quantity"`
}

// Report is the admin report for a date range.
type Report struct {
	StartDate string         `json:"start_date,omitempty"`
	EndDate   string         `json:"end_date,omitempty"`
	Events    []ScanEvent    `json:"events"`
	Stats     []ScannerStats `json:"stats"`
}
