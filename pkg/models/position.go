package models

// PlanetPosition is the response of the external ephemeris service for a
// single body. The backend treats it as opaque data: no astronomical
// computation happens on this side of the wire.
type PlanetPosition struct {
	JulianDay      float64 `json:"jd"`
	Name           string  `json:"name"`
	Longitude      float64 `json:"lon"`
	Latitude       float64 `json:"lat"`
	Distance       float64 `json:"dist"`
	SpeedLongitude float64 `json:"speed_lon"`
}
