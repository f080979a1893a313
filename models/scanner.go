package models

import "time"

// ScannerRecord is a field worker account as stored in the "scanners" table.
// Every string field except ID and Image holds a serialized envelope.
type ScannerRecord struct {
	ID        string
	Image     *string
	Username  string
	Password  string
	Firstname string
	Lastname  string
	Address   string
	Gender    string
	Birthdate string
	Barangay  *string
	Purok     *string

	VerifiedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName returns the name of the database table associated with the
// scanner model.
func (ScannerRecord) TableName() string {
	return "scanners"
}

// Scanner is the decoded view of a [ScannerRecord]. The password is never
// part of it.
type Scanner struct {
	ID        string  `json:"id"`
	Image     *string `json:"image,omitempty"`
	Username  string  `json:"username"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Address   string  `json:"address"`
	Gender    string  `json:"gender"`
	Birthdate string  `json:"birthdate"`
	Barangay  *string `json:"barangay,omitempty"`
	Purok     *string `json:"purok,omitempty"`

	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// TamperedFields lists the fields that failed envelope validation and
	// read as "Edited Data".
	TamperedFields []string `json:"tampered_fields,omitempty"`
}

// ScannerInput is the body of scanner create and update requests.
//
// On update an empty Password keeps the stored one.
type ScannerInput struct {
	Image     *string `json:"image,omitempty"`
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Address   string  `json:"address"`
	Gender    string  `json:"gender"`
	Birthdate string  `json:"birthdate"`
	Barangay  *string `json:"barangay,omitempty"`
	Purok     *string `json:"purok,omitempty"`
	Verified  bool    `json:"verified"`
}
