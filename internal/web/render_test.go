package web

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/climateassistant/backend/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func fullResponse() *domain.WeatherResponse {
	return &domain.WeatherResponse{
		Meta: domain.Meta{Source: domain.SourceLive},
		Location: domain.Location{
			City:    "Lisbon",
			Country: ptr("Portugal"),
			Coordinates: domain.Coordinates{
				Lat: ptr(38.72),
				Lon: ptr(-9.14),
			},
		},
		Weather: domain.Conditions{
			Temperature: ptr(21.0),
			FeelsLike:   ptr(20.46),
			Description: "Sunny",
			Icon:        ptr("//cdn.weatherapi.com/weather/64x64/day/113.png"),
			Humidity:    ptr(60.0),
			Pressure:    ptr(1012.5),
			Cloudiness:  ptr(0.0),
		},
		Wind: domain.Wind{Speed: ptr(3.2), Deg: ptr(270.0)},
		Sun:  domain.Sun{SunriseUTC: ptr("06:12"), SunsetUTC: ptr("19:48")},
		Advice: &domain.Advice{
			Summary:           "Weather is pleasant for outdoor plans.",
			Precautions:       []string{"Drink water."},
			AvoidPlaces:       nil,
			RecommendedPlaces: []string{"Beach"},
			Activities:        []string{"Hiking"},
		},
		ProviderRaw: json.RawMessage(`{"location":{"name":"Lisbon"}}`),
	}
}

func TestRenderFullResponse(t *testing.T) {
	v := NewView()
	Render(v, fullResponse())

	checks := []struct {
		name string
		got  string
		want string
	}{
		{"city", v.CityName.Content, "Lisbon"},
		{"country", v.Country.Content, "Country: Portugal"},
		{"coords", v.Coords.Content, "Lat: 38.72, Lon: -9.14"},
		{"temp", v.Temp.Content, "21.0 °C"},
		{"feels like", v.FeelsLike.Content, "Feels like 20.5 °C"},
		{"description", v.Description.Content, "Sunny"},
		{"icon", v.Icon.Src, "https://cdn.weatherapi.com/weather/64x64/day/113.png"},
		{"badge", v.SourceBadge.Content, "Live data"},
		{"humidity", v.Humidity.Content, "60 %"},
		{"pressure", v.Pressure.Content, "1012.5 hPa"},
		{"cloudiness", v.Cloudiness.Content, "0 %"},
		{"wind", v.Wind.Content, "3.2 m/s 270°"},
		{"sunrise", v.Sunrise.Content, "06:12"},
		{"sunset", v.Sunset.Content, "19:48"},
		{"raw", v.RawJSON.Content, "{\n  \"location\": {\n    \"name\": \"Lisbon\"\n  }\n}"},
		{"summary", v.AdviceSummary.Content, "Weather is pleasant for outdoor plans."},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: expected %q, got %q", c.name, c.want, c.got)
		}
	}

	if !v.Icon.Visible {
		t.Error("expected icon to be visible")
	}
	if v.Result.Hidden {
		t.Error("expected result panel to be revealed")
	}
	if !reflect.DeepEqual(v.Avoid.Items, []string{NoItems}) {
		t.Errorf("expected placeholder avoid list, got %v", v.Avoid.Items)
	}
	if !reflect.DeepEqual(v.Recommend.Items, []string{"Beach", "Hiking"}) {
		t.Errorf("expected merged recommend list, got %v", v.Recommend.Items)
	}
}

func TestRenderAbsentFields(t *testing.T) {
	v := NewView()
	Render(v, &domain.WeatherResponse{Meta: domain.Meta{Source: domain.SourceLive}})

	if v.CityName.Content != "Unknown city" {
		t.Errorf("expected city fallback, got %q", v.CityName.Content)
	}
	for name, got := range map[string]string{
		"country":    v.Country.Content,
		"coords":     v.Coords.Content,
		"temp":       v.Temp.Content,
		"feels like": v.FeelsLike.Content,
		"raw":        v.RawJSON.Content,
	} {
		if got != "" {
			t.Errorf("%s: expected empty, got %q", name, got)
		}
	}
	for name, got := range map[string]string{
		"humidity":   v.Humidity.Content,
		"pressure":   v.Pressure.Content,
		"cloudiness": v.Cloudiness.Content,
		"wind":       v.Wind.Content,
		"sunrise":    v.Sunrise.Content,
		"sunset":     v.Sunset.Content,
	} {
		if got != Placeholder {
			t.Errorf("%s: expected placeholder, got %q", name, got)
		}
	}
	if v.Icon.Visible {
		t.Error("expected icon to be hidden")
	}
}

func TestRenderNullTemperatureIsEmpty(t *testing.T) {
	v := NewView()
	v.Temp.Content = "stale"

	var data domain.WeatherResponse
	if err := json.Unmarshal([]byte(`{"meta":{"source":"live"},"weather":{"temperature":null}}`), &data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Render(v, &data)

	if v.Temp.Content != "" {
		t.Errorf("expected empty temperature, got %q", v.Temp.Content)
	}
}

func TestRenderCoordinatesNeedBoth(t *testing.T) {
	data := fullResponse()
	data.Location.Coordinates.Lon = nil

	v := NewView()
	Render(v, data)

	if v.Coords.Content != "" {
		t.Errorf("expected empty coords with only lat, got %q", v.Coords.Content)
	}
}

func TestRenderWithoutAdviceKeepsLists(t *testing.T) {
	v := NewView()
	Render(v, fullResponse())

	data := fullResponse()
	data.Advice = nil
	data.Location.City = "Porto"
	Render(v, data)

	if v.CityName.Content != "Porto" {
		t.Errorf("expected Porto, got %q", v.CityName.Content)
	}
	if !reflect.DeepEqual(v.Precautions.Items, []string{"Drink water."}) {
		t.Errorf("expected precautions untouched, got %v", v.Precautions.Items)
	}
}

func TestSourceBadge(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"cache", "From cache"},
		{"live", "Live data"},
		{"", "Live data"},
		{"Cache", "Live data"},
	}
	for _, tt := range tests {
		if got := SourceBadge(tt.source); got != tt.want {
			t.Errorf("SourceBadge(%q): expected %q, got %q", tt.source, tt.want, got)
		}
	}
}

func TestFillList(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  []string
	}{
		{"nil source", nil, []string{NoItems}},
		{"empty source", []string{}, []string{NoItems}},
		{"keeps order and duplicates", []string{"b", "a", "b"}, []string{"b", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := List{Items: []string{"old 1", "old 2"}}
			FillList(&l, tt.items)
			if !reflect.DeepEqual(l.Items, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, l.Items)
			}
		})
	}
}

func TestMergeRecommendations(t *testing.T) {
	tests := []struct {
		name   string
		advice domain.Advice
		want   []string
	}{
		{
			name:   "places then activities",
			advice: domain.Advice{RecommendedPlaces: []string{"Beach"}, Activities: []string{"Hiking"}},
			want:   []string{"Beach", "Hiking"},
		},
		{
			name:   "missing places",
			advice: domain.Advice{Activities: []string{"Hiking"}},
			want:   []string{"Hiking"},
		},
		{
			name:   "both missing",
			advice: domain.Advice{},
			want:   []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeRecommendations(&tt.advice)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNormalizeIconURL(t *testing.T) {
	if got := NormalizeIconURL("//cdn.example.com/icon.png"); got != "https://cdn.example.com/icon.png" {
		t.Errorf("unexpected protocol-relative normalization: %q", got)
	}
	if got := NormalizeIconURL("http://cdn.example.com/icon.png"); got != "http://cdn.example.com/icon.png" {
		t.Errorf("expected absolute URL untouched, got %q", got)
	}
}

func TestFormatWind(t *testing.T) {
	tests := []struct {
		name string
		wind domain.Wind
		want string
	}{
		{"both", domain.Wind{Speed: ptr(4.0), Deg: ptr(90.0)}, "4 m/s 90°"},
		{"speed only", domain.Wind{Speed: ptr(4.5)}, "4.5 m/s"},
		{"direction only", domain.Wind{Deg: ptr(0.0)}, "0°"},
		{"neither", domain.Wind{}, Placeholder},
	}
	for _, tt := range tests {
		if got := FormatWind(tt.wind); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestPrettyJSONInvalidPassesThrough(t *testing.T) {
	got := PrettyJSON(json.RawMessage("not json"))
	if got != "not json" {
		t.Errorf("expected raw passthrough, got %q", got)
	}
	if !strings.Contains(PrettyJSON(json.RawMessage(`[1,2]`)), "\n  1,") {
		t.Error("expected two-space indentation")
	}
}
