// Package dto defines data transfer objects for the ipgeolocation.io API responses.
package dto

// AstronomyResponse represents the JSON response from the ipgeolocation
// astronomy endpoint. Error responses carry only the message field.
type AstronomyResponse struct {
	Message  string `json:"message,omitempty"`
	Location struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
	Date                 string  `json:"date"`
	CurrentTime          string  `json:"current_time"`
	Sunrise              string  `json:"sunrise"`
	Sunset               string  `json:"sunset"`
	SunStatus            string  `json:"sun_status"`
	SolarNoon            string  `json:"solar_noon"`
	DayLength            string  `json:"day_length"`
	SunAltitude          float64 `json:"sun_altitude"`
	SunAzimuth           float64 `json:"sun_azimuth"`
	Moonrise             string  `json:"moonrise"`
	Moonset              string  `json:"moonset"`
	MoonStatus           string  `json:"moon_status"`
	MoonAltitude         float64 `json:"moon_altitude"`
	MoonAzimuth          float64 `json:"moon_azimuth"`
	MoonDistance         float64 `json:"moon_distance"`
	MoonParallacticAngle float64 `json:"moon_parallactic_angle"`
}
