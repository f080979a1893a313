package service

import (
	"github.com/MKhiriev/go-waste-tracker/internal/envelope"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// The decode helpers turn stored records into their views. Every protected
// field goes through an envelope.Reader, so a tampered column reads as
// envelope.EditedData and its name lands in TamperedFields.

func decodeScanner(codec *envelope.Codec, rec models.ScannerRecord) models.Scanner {
	r := codec.NewReader()

	scanner := models.Scanner{
		ID:         rec.ID,
		Image:      rec.Image,
		Username:   r.String("username", rec.Username),
		Firstname:  r.String("firstname", rec.Firstname),
		Lastname:   r.String("lastname", rec.Lastname),
		Address:    r.String("address", rec.Address),
		Gender:     r.String("gender", rec.Gender),
		Birthdate:  r.String("birthdate", rec.Birthdate),
		Barangay:   r.Optional("barangay", rec.Barangay),
		Purok:      r.Optional("purok", rec.Purok),
		VerifiedAt: rec.VerifiedAt,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
	scanner.TamperedFields = r.Tampered()

	return scanner
}

func decodeProduct(codec *envelope.Codec, rec models.ProductRecord) models.Product {
	r := codec.NewReader()

	product := models.Product{
		ID:           rec.ID,
		Image:        rec.Image,
		Name:         r.Optional("name", rec.Name),
		Barcode:      r.String("barcode", rec.Barcode),
		Manufacturer: r.String("manufacturer", rec.Manufacturer),
		Description:  r.Optional("description", rec.Description),
		Type:         rec.Type,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
	product.TamperedFields = r.Tampered()

	return product
}

func decodeManufacturer(codec *envelope.Codec, rec models.ManufacturerRecord) models.Manufacturer {
	r := codec.NewReader()

	manufacturer := models.Manufacturer{
		ID:        rec.ID,
		Name:      r.Optional("name", rec.Name),
		Barcode:   r.String("barcode", rec.Barcode),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	manufacturer.TamperedFields = r.Tampered()

	return manufacturer
}

// decodeScanEvent decodes an event together with the joined scanner,
// product and manufacturer columns. Tampered joined fields are reported with
// a "scanner.", "product." or "manufacturer." prefix.
func decodeScanEvent(codec *envelope.Codec, rec models.ScanEventRecord) models.ScanEvent {
	r := codec.NewReader()

	event := models.ScanEvent{
		ID:             rec.ID,
		ScannerID:      rec.ScannerID,
		ProductID:      rec.ProductID,
		ManufacturerID: rec.ManufacturerID,
		Latitude:       r.String("latitude", rec.Latitude),
		Longitude:      r.String("longitude", rec.Longitude),
		Location:       r.Optional("location", rec.Location),
		Quantity:       rec.Quantity,
		ScannedAt:      rec.ScannedAt,
	}

	if s := rec.Scanner; s != nil {
		event.Scanner = &models.ScannerSummary{
			ID:        rec.ScannerID,
			Firstname: r.String("scanner.firstname", s.Firstname),
			Lastname:  r.String("scanner.lastname", s.Lastname),
		}
	}
	if p := rec.Product; p != nil && rec.ProductID != nil {
		event.Product = &models.ProductSummary{
			ID:           *rec.ProductID,
			Name:         r.Optional("product.name", p.Name),
			Barcode:      r.String("product.barcode", p.Barcode),
			Manufacturer: r.String("product.manufacturer", p.Manufacturer),
			Type:         p.Type,
		}
	}
	if m := rec.Manufacturer; m != nil && rec.ManufacturerID != nil {
		event.Manufacturer = &models.ManufacturerSummary{
			ID:      *rec.ManufacturerID,
			Name:    r.Optional("manufacturer.name", m.Name),
			Barcode: r.String("manufacturer.barcode", m.Barcode),
		}
	}
	event.TamperedFields = r.Tampered()

	return event
}
