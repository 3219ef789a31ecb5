package domain

import "encoding/json"

// Data sources reported in Meta.Source
const (
	SourceCache = "cache"
	SourceLive  = "live"
)

// WeatherResponse is the normalized payload served by GET /api/weather.
// Optional scalars are pointers so an absent value stays distinguishable from zero.
type WeatherResponse struct {
	Meta        Meta            `json:"meta"`
	Location    Location        `json:"location"`
	Weather     Conditions      `json:"weather"`
	Wind        Wind            `json:"wind"`
	Sun         Sun             `json:"sun"`
	Advice      *Advice         `json:"advice,omitempty"`
	ProviderRaw json.RawMessage `json:"provider_raw"`
}

// Meta describes where the data came from
type Meta struct {
	Source   string `json:"source"`
	Provider string `json:"provider,omitempty"`
}

// Location identifies the resolved city
type Location struct {
	City        string      `json:"city"`
	Country     *string     `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

// Coordinates of the resolved city
type Coordinates struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// Conditions holds current weather readings. Temperatures are in °C.
type Conditions struct {
	Temperature *float64 `json:"temperature"`
	FeelsLike   *float64 `json:"feels_like"`
	Description string   `json:"description"`
	Icon        *string  `json:"icon"`
	Humidity    *float64 `json:"humidity"`
	Pressure    *float64 `json:"pressure"`
	Cloudiness  *float64 `json:"cloudiness"`
}

// Wind speed is in m/s, direction in degrees
type Wind struct {
	Speed *float64 `json:"speed"`
	Deg   *float64 `json:"deg"`
}

// Sun carries preformatted sunrise/sunset strings
type Sun struct {
	SunriseUTC *string `json:"sunrise_utc"`
	SunsetUTC  *string `json:"sunset_utc"`
}

// Advice is the travel advice derived from current conditions
type Advice struct {
	Summary           string   `json:"summary"`
	Precautions       []string `json:"precautions"`
	AvoidPlaces       []string `json:"avoid_places"`
	RecommendedPlaces []string `json:"recommended_places"`
	Activities        []string `json:"activities"`
}

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Error string `json:"error"`
}
