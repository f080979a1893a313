package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScanner() models.ScannerInput {
	return models.ScannerInput{
		Username:  "juan",
		Password:  "secret",
		Firstname: "Juan",
		Lastname:  "Dela Cruz",
		Address:   "Purok 3, Barangay 62",
		Gender:    "male",
		Birthdate: "1990-04-12",
	}
}

func TestNewRecordValidator(t *testing.T) {
	require.NotNil(t, NewRecordValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	scanner := validScanner()
	product := models.ProductInput{Barcode: "4800016644788", Manufacturer: "Universal Robina", Type: models.ProductTypeLocal}
	manufacturer := models.ManufacturerInput{Barcode: "480001"}
	scan := models.ScanRequest{Code: "4800016644788", Lat: "11.244", Lng: "125.004", Quantity: 1}
	creds := models.Credentials{Username: "admin", Password: "pw"}

	for _, obj := range []any{scanner, &scanner, product, &product, manufacturer, &manufacturer, scan, &scan, creds, &creds} {
		assert.NoError(t, v.Validate(ctx, obj))
	}

	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, nil), ErrUnsupportedType)
}

func TestValidate_Scanner(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *models.ScannerInput)
		fields  []string
		wantErr error
	}{
		{name: "blank username", mutate: func(s *models.ScannerInput) { s.Username = "  " }, wantErr: ErrEmptyUsername},
		{name: "missing password", mutate: func(s *models.ScannerInput) { s.Password = "" }, wantErr: ErrEmptyPassword},
		{name: "missing firstname", mutate: func(s *models.ScannerInput) { s.Firstname = "" }, wantErr: ErrEmptyFirstname},
		{name: "missing lastname", mutate: func(s *models.ScannerInput) { s.Lastname = "" }, wantErr: ErrEmptyLastname},
		{name: "missing address", mutate: func(s *models.ScannerInput) { s.Address = "" }, wantErr: ErrEmptyAddress},
		{name: "missing gender", mutate: func(s *models.ScannerInput) { s.Gender = "" }, wantErr: ErrEmptyGender},
		{name: "bad birthdate", mutate: func(s *models.ScannerInput) { s.Birthdate = "12/04/1990" }, wantErr: ErrInvalidBirthdate},
		{name: "update without password", mutate: func(s *models.ScannerInput) { s.Password = "" }, fields: ScannerUpdateFields},
		{name: "unknown field", mutate: func(s *models.ScannerInput) {}, fields: []string{"email"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validScanner()
			tt.mutate(&s)

			err := NewRecordValidator().Validate(context.Background(), s, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Product(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ProductInput{Barcode: "", Manufacturer: "x", Type: models.ProductTypeLocal}), ErrInvalidBarcode)
	assert.ErrorIs(t, v.Validate(ctx, models.ProductInput{Barcode: "480 001", Manufacturer: "x", Type: models.ProductTypeLocal}), ErrInvalidBarcode)
	assert.ErrorIs(t, v.Validate(ctx, models.ProductInput{Barcode: "480001", Manufacturer: " ", Type: models.ProductTypeLocal}), ErrEmptyManufacturer)
	assert.ErrorIs(t, v.Validate(ctx, models.ProductInput{Barcode: "480001", Manufacturer: "x", Type: "IMPORTED"}), ErrInvalidType)
	assert.ErrorIs(t, v.Validate(ctx, models.ManufacturerInput{Barcode: "\t"}), ErrInvalidBarcode)
}

func TestValidate_ScanRequest(t *testing.T) {
	valid := func() models.ScanRequest {
		return models.ScanRequest{Code: "4800016644788", Lat: "11.2443", Lng: "125.0039", Quantity: 2}
	}

	tests := []struct {
		name    string
		mutate  func(r *models.ScanRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.ScanRequest) {}},
		{name: "zero coordinates are valid", mutate: func(r *models.ScanRequest) { r.Lat, r.Lng = "0", "0" }},
		{name: "missing code", mutate: func(r *models.ScanRequest) { r.Code = "" }, wantErr: ErrEmptyCode},
		{name: "missing lat", mutate: func(r *models.ScanRequest) { r.Lat = "" }, wantErr: ErrInvalidLatitude},
		{name: "lat out of range", mutate: func(r *models.ScanRequest) { r.Lat = "90.5" }, wantErr: ErrInvalidLatitude},
		{name: "lng not a number", mutate: func(r *models.ScanRequest) { r.Lng = "east" }, wantErr: ErrInvalidLongitude},
		{name: "lng out of range", mutate: func(r *models.ScanRequest) { r.Lng = "-181" }, wantErr: ErrInvalidLongitude},
		{name: "zero quantity", mutate: func(r *models.ScanRequest) { r.Quantity = 0 }, wantErr: ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(&r)

			err := NewRecordValidator().Validate(context.Background(), r)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ScanRequestFromJSON(t *testing.T) {
	var numbers, stringsReq models.ScanRequest
	require.NoError(t, json.Unmarshal([]byte(`{"code":"480001","lat":11.24,"lng":125.0,"qty":1}`), &numbers))
	require.NoError(t, json.Unmarshal([]byte(`{"code":"480001","lat":"11.24","lng":"125.0","qty":1}`), &stringsReq))

	v := NewRecordValidator()
	assert.NoError(t, v.Validate(context.Background(), numbers))
	assert.NoError(t, v.Validate(context.Background(), stringsReq))
}

func TestValidate_Credentials(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Password: "pw"}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Username: "admin"}), ErrEmptyPassword)
}
