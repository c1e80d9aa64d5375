package domain

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is a resolved autosuggest result. Places are ephemeral: they are
// never persisted and uniqueness only holds within a single search call.
type Place struct {
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
}

type PlacesResult struct {
	Places []Place `json:"places"`
}

// RouteDetails is the travel summary between two named places.
type RouteDetails struct {
	DistanceKm   float64  `json:"distance"`
	Instructions []string `json:"instructions"`
}
