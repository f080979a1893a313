package models

import "time"

// ManufacturerRecord is a manufacturer as stored in the "manufacturers"
// table. Name and Barcode hold serialized envelopes.
type ManufacturerRecord struct {
	ID      string
	Name    *string
	Barcode string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the name of the database table associated with the
// manufacturer model.
func (ManufacturerRecord) TableName() string {
	return "manufacturers"
}

// Manufacturer is the decoded view of a [ManufacturerRecord].
type Manufacturer struct {
	ID   string  `json:"id"`
	Name *string `json:"name,omitempty"`
	// Barcode is the company prefix shared by the manufacturer's products.
	Barcode string `json:"barcode"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TamperedFields []string `json:"tampered_fields,omitempty"`
}

// ManufacturerInput is the body of manufacturer create and update requests.
type ManufacturerInput struct {
	Name    *string `json:"name,omitempty"`
	Barcode string  `json:"barcode"`
}
