// Package entity defines the domain entities for the astronomy feature.
package entity

// Location identifies the coordinates an astronomy reading was taken for.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Astronomy holds one sun/moon reading for a location at a point in time.
// The shape mirrors the upstream provider's astronomy payload; times are
// provider-local strings ("HH:MM") and are passed through untouched.
type Astronomy struct {
	Location             Location `json:"location"`
	Date                 string   `json:"date"`
	CurrentTime          string   `json:"current_time"`
	Sunrise              string   `json:"sunrise"`
	Sunset               string   `json:"sunset"`
	SunStatus            string   `json:"sun_status"`
	SolarNoon            string   `json:"solar_noon"`
	DayLength            string   `json:"day_length"`
	SunAltitude          float64  `json:"sun_altitude"`
	SunAzimuth           float64  `json:"sun_azimuth"`
	Moonrise             string   `json:"moonrise"`
	Moonset              string   `json:"moonset"`
	MoonStatus           string   `json:"moon_status"`
	MoonAltitude         float64  `json:"moon_altitude"`
	MoonAzimuth          float64  `json:"moon_azimuth"`
	MoonDistance         float64  `json:"moon_distance"`
	MoonParallacticAngle float64  `json:"moon_parallactic_angle"`
}
