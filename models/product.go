package models

import "time"

// ProductType tells whether a product is an international or a local brand.
type ProductType string

const (
	ProductTypeInternational ProductType = "INTERNATIONAL"
	ProductTypeLocal         ProductType = "LOCAL"
)

// Valid reports whether t is a known product type.
func (t ProductType) Valid() bool {
	return t == ProductTypeInternational || t == ProductTypeLocal
}

// ProductRecord is a product as stored in the "products" table. Name,
// Barcode, Manufacturer and Description hold serialized envelopes; Type is
// stored as is.
type ProductRecord struct {
	ID           string
	Image        *string
	Name         *string
	Barcode      string
	Manufacturer string
	Description  *string
	Type         ProductType

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the name of the database table associated with the
// product model.
func (ProductRecord) TableName() string {
	return "products"
}

// Product is the decoded view of a [ProductRecord].
type Product struct {
	ID           string      `json:"id"`
	Image        *string     `json:"image,omitempty"`
	Name         *string     `json:"name,omitempty"`
	Barcode      string      `json:"barcode"`
	Manufacturer string      `json:"manufacturer"`
	Description  *string     `json:"description,omitempty"`
	Type         ProductType `json:"type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TamperedFields []string `json:"tampered_fields,omitempty"`
}

// ProductInput is the body of product create and update requests.
type ProductInput struct {
	Image        *string     `json:"image,omitempty"`
	Name         *string     `json:"name,omitempty"`
	Barcode      string      `json:"barcode"`
	Manufacturer string      `json:"manufacturer"`
	Description  *string     `json:"description,omitempty"`
	Type         ProductType `json:"type"`
}
