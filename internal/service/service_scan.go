// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/envelope"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/models"
)

const (
	defaultHistoryTake = 10
	maxHistoryTake     = 100
)

type scanService struct {
	productRepository      store.ProductRepository
	manufacturerRepository store.ManufacturerRepository
	scanEventRepository    store.ScanEventRepository

	codec *envelope.Codec
	ids   IDGenerator
	now   func() time.Time

	logger *logger.Logger
}

func NewScanService(productRepository store.ProductRepository, manufacturerRepository store.ManufacturerRepository,
	scanEventRepository store.ScanEventRepository, codec *envelope.Codec, ids IDGenerator, logger *logger.Logger) ScanService {
	return &scanService{
		productRepository:      productRepository,
		manufacturerRepository: manufacturerRepository,
		scanEventRepository:    scanEventRepository,
		codec:                  codec,
		ids:                    ids,
		now:                    nowUTC,
		logger:                 logger,
	}
}

// RecordScan stores one scan of request.Code by the scanner.
//
// The code is matched against product barcodes first. Without a product
// match the manufacturer whose barcode is the longest prefix of the code is
// recorded instead. A code matching neither is ErrUnknownBarcode. A zero
// quantity counts as one item.
func (s *scanService) RecordScan(ctx context.Context, scannerID string, request models.ScanRequest) (models.ScanEvent, error) {
	log := logger.FromContext(ctx)

	record := models.ScanEventRecord{
		ID:        s.ids.Generate(),
		ScannerID: scannerID,
		Latitude:  s.codec.Seal(strings.TrimSpace(request.Lat.String())),
		Longitude: s.codec.Seal(strings.TrimSpace(request.Lng.String())),
		Quantity:  max(request.Quantity, 1),
		ScannedAt: s.now(),
	}

	product, err := s.findProduct(ctx, request.Code)
	switch {
	case err == nil:
		record.ProductID = &product.ID
		record.Product = &product
	case errors.Is(err, store.ErrNotFound):
		manufacturer, found, matchErr := s.matchManufacturer(ctx, request.Code)
		if matchErr != nil {
			return models.ScanEvent{}, matchErr
		}
		if !found {
			log.Info().Str("code", request.Code).Msg("scanned code matches no product or manufacturer")
			return models.ScanEvent{}, ErrUnknownBarcode
		}
		record.ManufacturerID = &manufacturer.ID
		record.Manufacturer = &manufacturer
	default:
		return models.ScanEvent{}, fmt.Errorf("product search by barcode failed: %w", err)
	}

	if err = s.scanEventRepository.Create(ctx, record); err != nil {
		log.Err(err).Str("scanner_id", scannerID).Msg("scan event creation ended with error")
		return models.ScanEvent{}, fmt.Errorf("scan event creation ended with error: %w", err)
	}

	event := decodeScanEvent(s.codec, record)
	event.TamperedFields = nil
	return event, nil
}

// History returns one page of the scanner's own scans, newest first, and
// the total number of scans. take defaults to 10 and is capped at 100.
func (s *scanService) History(ctx context.Context, scannerID string, skip, take int) (models.ScanHistory, error) {
	if take <= 0 {
		take = defaultHistoryTake
	}
	take = min(take, maxHistoryTake)
	skip = max(skip, 0)

	filter := models.ScanEventFilter{
		ScannerID: scannerID,
		Limit:     uint64(take),
		Offset:    uint64(skip),
	}

	records, err := s.scanEventRepository.List(ctx, filter)
	if err != nil {
		return models.ScanHistory{}, fmt.Errorf("error listing scan events: %w", err)
	}

	total, err := s.scanEventRepository.Count(ctx, models.ScanEventFilter{ScannerID: scannerID})
	if err != nil {
		return models.ScanHistory{}, fmt.Errorf("error counting scan events: %w", err)
	}

	rows := make([]models.ScanEvent, 0, len(records))
	for _, record := range records {
		event := decodeScanEvent(s.codec, record)
		event.TamperedFields = nil
		rows = append(rows, event)
	}

	return models.ScanHistory{Rows: rows, Total: total}, nil
}

func (s *scanService) findProduct(ctx context.Context, code string) (models.ProductRecord, error) {
	if s.codec.Deterministic() {
		return s.productRepository.FindByBarcode(ctx, s.codec.Seal(code))
	}

	records, err := s.productRepository.List(ctx)
	if err != nil {
		return models.ProductRecord{}, err
	}
	for _, record := range records {
		if barcode, openErr := s.codec.Open(record.Barcode); openErr == nil && barcode == code {
			return record, nil
		}
	}

	return models.ProductRecord{}, store.ErrNotFound
}

// matchManufacturer picks the manufacturer with the longest barcode that
// prefixes code. Manufacturers with an edited barcode never match.
func (s *scanService) matchManufacturer(ctx context.Context, code string) (models.ManufacturerRecord, bool, error) {
	records, err := s.manufacturerRepository.List(ctx)
	if err != nil {
		return models.ManufacturerRecord{}, false, fmt.Errorf("error listing manufacturers: %w", err)
	}

	var (
		best    models.ManufacturerRecord
		bestLen int
	)
	for _, record := range records {
		prefix, openErr := s.codec.Open(record.Barcode)
		if openErr != nil {
			continue
		}
		if len(prefix) > bestLen && strings.HasPrefix(code, prefix) {
			best, bestLen = record, len(prefix)
		}
	}

	return best, bestLen > 0, nil
}
