package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/envelope"
	"github.com/MKhiriev/go-waste-tracker/internal/geocode"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/models"
	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

// enrichLimit bounds the goroutines waiting on the resolver at once; the
// resolver itself bounds the lookups in flight.
const enrichLimit = 32

var csvHeader = []string{
	"scanned_at", "scanner", "product", "barcode", "manufacturer", "type",
	"quantity", "latitude", "longitude", "location",
}

type reportService struct {
	scanEventRepository store.ScanEventRepository
	codec               *envelope.Codec
	resolver            LocationResolver

	logger *logger.Logger
}

func NewReportService(scanEventRepository store.ScanEventRepository, codec *envelope.Codec,
	resolver LocationResolver, logger *logger.Logger) ReportService {
	return &reportService{
		scanEventRepository: scanEventRepository,
		codec:               codec,
		resolver:            resolver,
		logger:              logger,
	}
}

// ScanEvents lists the events scanned between startDate and endDate, both
// inclusive. With withLocation set, events without a stored location are
// resolved and the resolved location is persisted.
func (s *reportService) ScanEvents(ctx context.Context, startDate, endDate string, withLocation bool) ([]models.ScanEvent, error) {
	filter, err := dateFilter(startDate, endDate)
	if err != nil {
		return nil, err
	}

	events, err := s.events(ctx, filter)
	if err != nil {
		return nil, err
	}

	if withLocation {
		if err = s.enrich(ctx, events); err != nil {
			return nil, err
		}
	}

	return events, nil
}

func (s *reportService) Report(ctx context.Context, startDate, endDate string) (models.Report, error) {
	filter, err := dateFilter(startDate, endDate)
	if err != nil {
		return models.Report{}, err
	}

	events, err := s.events(ctx, filter)
	if err != nil {
		return models.Report{}, err
	}

	records, err := s.scanEventRepository.Stats(ctx, filter)
	if err != nil {
		return models.Report{}, fmt.Errorf("error computing scanner stats: %w", err)
	}

	stats := make([]models.ScannerStats, 0, len(records))
	for _, record := range records {
		stats = append(stats, models.ScannerStats{
			ScannerID:     record.ScannerID,
			Firstname:     s.codec.DecodeString(record.Firstname),
			Lastname:      s.codec.DecodeString(record.Lastname),
			ScanCount:     record.ScanCount,
			TotalQuantity: record.TotalQuantity,
		})
	}

	return models.Report{
		StartDate: startDate,
		EndDate:   endDate,
		Events:    events,
		Stats:     stats,
	}, nil
}

// ExportCSV writes the events of the date range as CSV, one row per event.
func (s *reportService) ExportCSV(ctx context.Context, w io.Writer, startDate, endDate string) error {
	filter, err := dateFilter(startDate, endDate)
	if err != nil {
		return err
	}

	events, err := s.events(ctx, filter)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err = cw.Write(csvHeader); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}
	for _, event := range events {
		if err = cw.Write(csvRow(event)); err != nil {
			return fmt.Errorf("error writing csv row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func (s *reportService) events(ctx context.Context, filter models.ScanEventFilter) ([]models.ScanEvent, error) {
	records, err := s.scanEventRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing scan events: %w", err)
	}

	events := make([]models.ScanEvent, 0, len(records))
	for _, record := range records {
		event := decodeScanEvent(s.codec, record)
		event.TamperedFields = nil
		events = append(events, event)
	}

	return events, nil
}

// enrich resolves the location of every event that has none. Events with
// edited coordinates are skipped. A failed save is logged and the resolved
// location is still returned.
func (s *reportService) enrich(ctx context.Context, events []models.ScanEvent) error {
	log := logger.FromContext(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichLimit)

	for i := range events {
		event := &events[i]
		if event.Location != nil || event.Latitude == envelope.EditedData || event.Longitude == envelope.EditedData {
			continue
		}

		g.Go(func() error {
			location := s.resolver.Resolve(gctx, event.Latitude, event.Longitude)
			if location == geocode.UnknownLocation {
				return gctx.Err()
			}

			event.Location = &location
			if err := s.scanEventRepository.SetLocation(gctx, event.ID, s.codec.Seal(location)); err != nil {
				log.Err(err).Str("id", event.ID).Msg("error saving resolved location")
			}
			return nil
		})
	}

	return g.Wait()
}

// dateFilter turns "YYYY-MM-DD" bounds into the half-open UTC range
// [start 00:00, end+1 00:00).
func dateFilter(startDate, endDate string) (models.ScanEventFilter, error) {
	var filter models.ScanEventFilter

	if startDate = strings.TrimSpace(startDate); startDate != "" {
		from, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return filter, fmt.Errorf("%w: %q", ErrInvalidDate, startDate)
		}
		filter.From = &from
	}

	if endDate = strings.TrimSpace(endDate); endDate != "" {
		end, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return filter, fmt.Errorf("%w: %q", ErrInvalidDate, endDate)
		}
		to := end.AddDate(0, 0, 1)
		filter.To = &to
	}

	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return filter, ErrInvalidDateRange
	}

	return filter, nil
}

func csvRow(event models.ScanEvent) []string {
	var scanner, product, barcode, manufacturer, productType, location string

	if event.Scanner != nil {
		scanner = strings.TrimSpace(event.Scanner.Firstname + " " + event.Scanner.Lastname)
	}
	switch {
	case event.Product != nil:
		product = deref(event.Product.Name)
		barcode = event.Product.Barcode
		manufacturer = event.Product.Manufacturer
		productType = string(event.Product.Type)
	case event.Manufacturer != nil:
		barcode = event.Manufacturer.Barcode
		manufacturer = deref(event.Manufacturer.Name)
	}
	location = deref(event.Location)

	return []string{
		event.ScannedAt.UTC().Format(time.RFC3339),
		scanner,
		product,
		barcode,
		manufacturer,
		productType,
		strconv.Itoa(event.Quantity),
		event.Latitude,
		event.Longitude,
		location,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
