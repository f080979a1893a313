package models

// ErrorResponse is the JSON body of every failed API request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LocationResponse is the body of the reverse-geocode endpoint. It uses the
// attribute name of Nominatim responses so that the same client can read
// both.
type LocationResponse struct {
	DisplayName string `json:"display_name"`
}

// VersionResponse is the body of the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}
