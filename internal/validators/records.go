// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/go-waste-tracker/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldFirstname    = "firstname"
	FieldLastname     = "lastname"
	FieldAddress      = "address"
	FieldGender       = "gender"
	FieldBirthdate    = "birthdate"
	FieldBarcode      = "barcode"
	FieldManufacturer = "manufacturer"
	FieldType         = "type"
	FieldCode         = "code"
	FieldLat          = "lat"
	FieldLng          = "lng"
	FieldQuantity     = "qty"
)

// ScannerUpdateFields validates a scanner update, where an empty password
// keeps the stored one.
var ScannerUpdateFields = []string{
	FieldUsername, FieldFirstname, FieldLastname, FieldAddress, FieldGender, FieldBirthdate,
}

const birthdateLayout = "2006-01-02"

// RecordValidator checks the request bodies of the admin CRUD endpoints,
// the login endpoints and the mobile scan endpoint.
type RecordValidator struct{}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ScannerInput:
		return v.validateScanner(value, fields...)
	case *models.ScannerInput:
		return v.validateScanner(*value, fields...)

	case models.ProductInput:
		return v.validateProduct(value, fields...)
	case *models.ProductInput:
		return v.validateProduct(*value, fields...)

	case models.ManufacturerInput:
		return v.validateManufacturer(value, fields...)
	case *models.ManufacturerInput:
		return v.validateManufacturer(*value, fields...)

	case models.ScanRequest:
		return v.validateScanRequest(value, fields...)
	case *models.ScanRequest:
		return v.validateScanRequest(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateScanner(s models.ScannerInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldFirstname, FieldLastname, FieldAddress, FieldGender, FieldBirthdate}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(s.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if s.Password == "" {
				return ErrEmptyPassword
			}
		case FieldFirstname:
			if blank(s.Firstname) {
				return ErrEmptyFirstname
			}
		case FieldLastname:
			if blank(s.Lastname) {
				return ErrEmptyLastname
			}
		case FieldAddress:
			if blank(s.Address) {
				return ErrEmptyAddress
			}
		case FieldGender:
			if blank(s.Gender) {
				return ErrEmptyGender
			}
		case FieldBirthdate:
			if _, err := time.Parse(birthdateLayout, s.Birthdate); err != nil {
				return ErrInvalidBirthdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateProduct(p models.ProductInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBarcode, FieldManufacturer, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldBarcode:
			if !validBarcode(p.Barcode) {
				return ErrInvalidBarcode
			}
		case FieldManufacturer:
			if blank(p.Manufacturer) {
				return ErrEmptyManufacturer
			}
		case FieldType:
			if !p.Type.Valid() {
				return ErrInvalidType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateManufacturer(m models.ManufacturerInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBarcode}
	}

	for _, f := range fields {
		switch f {
		case FieldBarcode:
			if !validBarcode(m.Barcode) {
				return ErrInvalidBarcode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateScanRequest(r models.ScanRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCode, FieldLat, FieldLng, FieldQuantity}
	}

	for _, f := range fields {
		switch f {
		case FieldCode:
			if !validBarcode(r.Code) {
				return ErrEmptyCode
			}
		case FieldLat:
			if !inRange(r.Lat.String(), 90) {
				return ErrInvalidLatitude
			}
		case FieldLng:
			if !inRange(r.Lng.String(), 180) {
				return ErrInvalidLongitude
			}
		case FieldQuantity:
			if r.Quantity <= 0 {
				return ErrInvalidQuantity
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(c.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validBarcode(code string) bool {
	return code != "" && strings.IndexFunc(code, unicode.IsSpace) < 0
}

func inRange(value string, limit float64) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return false
	}
	return f >= -limit && f <= limit
}
