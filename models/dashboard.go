package models

// DashboardCounts are the headline numbers of the admin dashboard.
type DashboardCounts struct {
	Scanners              int `json:"scanners"`
	VerifiedScanners      int `json:"verified_scanners"`
	Products              int `json:"products"`
	InternationalProducts int `json:"international_products"`
	LocalProducts         int `json:"local_products"`
	Manufacturers         int `json:"manufacturers"`
	Scans                 int `json:"scans"`
	ScansToday            int `json:"scans_today"`
}
