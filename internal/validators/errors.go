package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyFirstname    = errors.New("firstname is required")
	ErrEmptyLastname     = errors.New("lastname is required")
	ErrEmptyAddress      = errors.New("address is required")
	ErrEmptyGender       = errors.New("gender is required")
	ErrInvalidBirthdate  = errors.New("birthdate must be a YYYY-MM-DD date")
	ErrInvalidBarcode    = errors.New("barcode must be non-empty and contain no whitespace")
	ErrEmptyManufacturer = errors.New("manufacturer is required")
	ErrInvalidType       = errors.New("product type must be INTERNATIONAL or LOCAL")
	ErrEmptyCode         = errors.New("code is required")
	ErrInvalidLatitude   = errors.New("lat must be a number between -90 and 90")
	ErrInvalidLongitude  = errors.New("lng must be a number between -180 and 180")
	ErrInvalidQuantity   = errors.New("qty must be a positive integer")
)
