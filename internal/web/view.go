// Package web implements the city search page: a controller that turns a
// submitted city into a call to GET /api/weather and maps the answer onto a
// view model of display elements.
package web

// StatusKind selects the styling of the status line
type StatusKind string

const (
	StatusNone  StatusKind = ""
	StatusInfo  StatusKind = "info"
	StatusError StatusKind = "error"
)

// Text is a text-only element
type Text struct {
	Content string
}

// Status is the single status line above the result panel
type Status struct {
	Content string
	Kind    StatusKind
}

// Class returns the CSS class list for the status element
func (s Status) Class() string {
	if s.Kind == StatusNone {
		return "status"
	}
	return "status " + string(s.Kind)
}

// Panel is an element that is only ever shown or hidden
type Panel struct {
	Hidden bool
}

// Image is the weather icon element
type Image struct {
	Src     string
	Visible bool
}

// List is an unordered list element
type List struct {
	Items []string
}

// View holds one handle per bound page element. Element IDs are noted per field.
type View struct {
	Status Status // status
	Result Panel  // result

	CityName    Text  // city-name
	Country     Text  // country
	Coords      Text  // coords
	Temp        Text  // temp
	FeelsLike   Text  // feels-like
	Description Text  // description
	Icon        Image // icon
	SourceBadge Text  // source-badge
	Humidity    Text  // humidity
	Pressure    Text  // pressure
	Cloudiness  Text  // cloudiness
	Wind        Text  // wind
	Sunrise     Text  // sunrise
	Sunset      Text  // sunset
	RawJSON     Text  // raw-json

	AdviceSummary Text // advice-summary
	Precautions   List // precautions-list
	Avoid         List // avoid-list
	Recommend     List // recommend-list
}

// NewView returns the initial page state: no status, result panel hidden
func NewView() *View {
	return &View{Result: Panel{Hidden: true}}
}

// SetStatus replaces the status line
func (v *View) SetStatus(msg string, kind StatusKind) {
	v.Status = Status{Content: msg, Kind: kind}
}

// ClearStatus empties the status line
func (v *View) ClearStatus() {
	v.Status = Status{}
}

// Clone returns a deep copy safe to hand to a renderer
func (v *View) Clone() View {
	out := *v
	out.Precautions.Items = cloneItems(v.Precautions.Items)
	out.Avoid.Items = cloneItems(v.Avoid.Items)
	out.Recommend.Items = cloneItems(v.Recommend.Items)
	return out
}

func cloneItems(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
