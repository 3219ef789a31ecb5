package web

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/climateassistant/backend/internal/domain"
	"github.com/climateassistant/backend/pkg/utils"
)

// Placeholder is shown for any absent reading
const Placeholder = "–"

// NoItems is the single entry of an empty advice list
const NoItems = "No specific items."

const unknownCity = "Unknown city"

// Render maps a weather response onto v and reveals the result panel.
// The advice block is only touched when the response carries advice.
func Render(v *View, data *domain.WeatherResponse) {
	loc := data.Location
	w := data.Weather

	v.CityName.Content = orDefault(loc.City, unknownCity)

	v.Country.Content = ""
	if loc.Country != nil && *loc.Country != "" {
		v.Country.Content = "Country: " + *loc.Country
	}

	v.Coords.Content = ""
	if lat, lon := loc.Coordinates.Lat, loc.Coordinates.Lon; lat != nil && lon != nil {
		v.Coords.Content = "Lat: " + utils.FormatNumber(*lat) + ", Lon: " + utils.FormatNumber(*lon)
	}

	v.Temp.Content = ""
	if w.Temperature != nil {
		v.Temp.Content = FormatCelsius(*w.Temperature)
	}
	v.FeelsLike.Content = ""
	if w.FeelsLike != nil {
		v.FeelsLike.Content = "Feels like " + FormatCelsius(*w.FeelsLike)
	}
	v.Description.Content = w.Description

	if w.Icon != nil && *w.Icon != "" {
		v.Icon = Image{Src: NormalizeIconURL(*w.Icon), Visible: true}
	} else {
		v.Icon.Visible = false
	}

	v.SourceBadge.Content = SourceBadge(data.Meta.Source)

	v.Humidity.Content = withUnit(w.Humidity, " %")
	v.Pressure.Content = withUnit(w.Pressure, " hPa")
	v.Cloudiness.Content = withUnit(w.Cloudiness, " %")
	v.Wind.Content = FormatWind(data.Wind)

	v.Sunrise.Content = Placeholder
	if s := data.Sun.SunriseUTC; s != nil && *s != "" {
		v.Sunrise.Content = *s
	}
	v.Sunset.Content = Placeholder
	if s := data.Sun.SunsetUTC; s != nil && *s != "" {
		v.Sunset.Content = *s
	}

	v.RawJSON.Content = PrettyJSON(data.ProviderRaw)

	if a := data.Advice; a != nil {
		v.AdviceSummary.Content = a.Summary
		FillList(&v.Precautions, a.Precautions)
		FillList(&v.Avoid, a.AvoidPlaces)
		FillList(&v.Recommend, MergeRecommendations(a))
	}

	v.Result.Hidden = false
}

// FillList replaces every entry of l. An empty or absent source yields the
// single NoItems placeholder, otherwise one entry per item in source order.
func FillList(l *List, items []string) {
	if len(items) == 0 {
		l.Items = []string{NoItems}
		return
	}
	l.Items = make([]string, len(items))
	copy(l.Items, items)
}

// MergeRecommendations concatenates recommended places and activities
func MergeRecommendations(a *domain.Advice) []string {
	out := make([]string, 0, len(a.RecommendedPlaces)+len(a.Activities))
	out = append(out, a.RecommendedPlaces...)
	return append(out, a.Activities...)
}

// NormalizeIconURL gives protocol-relative URLs an https scheme
func NormalizeIconURL(icon string) string {
	if strings.HasPrefix(icon, "//") {
		return "https:" + icon
	}
	return icon
}

// SourceBadge labels where the data came from
func SourceBadge(source string) string {
	if source == domain.SourceCache {
		return "From cache"
	}
	return "Live data"
}

// FormatCelsius prints a temperature with exactly one decimal
func FormatCelsius(t float64) string {
	return utils.FormatFixed(t, 1) + " °C"
}

// FormatWind joins speed and direction, whichever are present
func FormatWind(w domain.Wind) string {
	var parts []string
	if w.Speed != nil {
		parts = append(parts, utils.FormatNumber(*w.Speed)+" m/s")
	}
	if w.Deg != nil {
		parts = append(parts, utils.FormatNumber(*w.Deg)+"°")
	}
	if len(parts) == 0 {
		return Placeholder
	}
	return strings.Join(parts, " ")
}

// PrettyJSON indents raw with two spaces. Invalid JSON is returned as is.
func PrettyJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

func withUnit(v *float64, unit string) string {
	if v == nil {
		return Placeholder
	}
	return utils.FormatNumber(*v) + unit
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
