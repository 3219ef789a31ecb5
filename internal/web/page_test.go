package web

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRenderPageInitialState(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPage(&buf, NewView().Clone(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()

	for _, id := range []string{
		"search-form", "city-input", "status", "result", "city-name", "country",
		"coords", "temp", "feels-like", "description", "icon", "source-badge",
		"humidity", "pressure", "cloudiness", "wind", "sunrise", "sunset",
		"raw-json", "advice-summary", "precautions-list", "avoid-list", "recommend-list",
	} {
		if !strings.Contains(html, `id="`+id+`"`) {
			t.Errorf("missing element %q", id)
		}
	}
	if !strings.Contains(html, `class="result hidden"`) {
		t.Error("expected result panel hidden initially")
	}
}

func TestRenderPageAfterSubmit(t *testing.T) {
	f := &fakeFetcher{}
	ctrl := NewController(f)
	if err := ctrl.Submit(context.Background(), "<Lisbon>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := RenderPage(&buf, ctrl.View(), "<Lisbon>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()

	if strings.Contains(html, "<Lisbon>") {
		t.Error("city must be escaped")
	}
	if !strings.Contains(html, "&lt;Lisbon&gt;") {
		t.Error("expected escaped city in page")
	}
	if strings.Contains(html, `class="result hidden"`) {
		t.Error("expected result panel visible")
	}
	if !strings.Contains(html, "<li>Beach</li><li>Hiking</li>") {
		t.Error("expected merged recommend list in order")
	}
	if !strings.Contains(html, `src="https://cdn.weatherapi.com/weather/64x64/day/113.png"`) {
		t.Error("expected normalized icon src")
	}
}
