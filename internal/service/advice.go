package service

import (
	"strings"

	"github.com/climateassistant/backend/internal/domain"
)

// AdviceInput is the subset of normalized weather the advice rules look at.
// WindSpeed is in m/s.
type AdviceInput struct {
	Temperature *float64
	Humidity    *float64
	WindSpeed   *float64
	Description string
}

type weatherFlags struct {
	rainy, stormy, snowy, foggy bool
	hot, veryHot, cold, cool    bool
	pleasant                    bool
	veryWindy                   bool
}

func classify(in AdviceInput) weatherFlags {
	desc := strings.ToLower(in.Description)
	var f weatherFlags

	f.rainy = containsAny(desc, "rain", "drizzle", "shower")
	f.stormy = containsAny(desc, "storm", "thunder")
	f.snowy = strings.Contains(desc, "snow")
	f.foggy = containsAny(desc, "fog", "mist", "haze")

	if t := in.Temperature; t != nil {
		f.hot = *t >= 32
		f.veryHot = *t >= 37
		f.cold = *t <= 10
		f.cool = *t > 10 && *t < 18
		f.pleasant = *t >= 18 && *t <= 30 && !f.rainy && !f.stormy && !f.snowy
	}
	if w := in.WindSpeed; w != nil {
		f.veryWindy = *w >= 12
	}
	return f
}

// BuildAdvice derives precautions, places to avoid, recommended places and
// activities from current conditions. Every list is non-empty.
func BuildAdvice(in AdviceInput) domain.Advice {
	f := classify(in)

	var precautions, avoid, places, activities []string

	// Precautions
	if f.hot {
		precautions = append(precautions,
			"Stay hydrated and carry a water bottle.",
			"Wear light, breathable clothes.",
			"Use sunscreen, sunglasses, and a cap/hat.",
		)
		if f.veryHot {
			precautions = append(precautions, "Avoid going out in peak afternoon hours if possible.")
		}
	}
	if f.cold || f.cool {
		precautions = append(precautions,
			"Wear warm layers when going outside.",
			"Keep head and ears covered if it's windy.",
		)
	}
	if f.rainy || f.snowy {
		precautions = append(precautions,
			"Carry an umbrella or raincoat, and wear waterproof footwear.",
			"Be careful on slippery roads and pavements.",
		)
		if in.Humidity != nil && *in.Humidity > 85 {
			precautions = append(precautions, "Allow extra travel time due to slow traffic.")
		}
	}
	if f.stormy || f.veryWindy {
		precautions = append(precautions,
			"Stay away from large trees and weak structures during strong winds.",
			"Avoid riding two-wheelers in very strong wind if possible.",
		)
	}
	if f.foggy {
		precautions = append(precautions,
			"If driving, keep headlights on low beam.",
			"Maintain safe distance from the vehicle in front.",
		)
	}
	if len(precautions) == 0 {
		precautions = append(precautions, "Weather seems normal. Usual daily precautions are enough.")
	}

	// Places to avoid
	if f.rainy || f.stormy {
		avoid = append(avoid,
			"Open parks and large open fields during heavy rain or storms.",
			"Waterfront areas like beaches during strong winds.",
		)
	}
	if f.veryHot {
		avoid = append(avoid,
			"Open grounds in direct afternoon sun.",
			"Crowded, poorly ventilated markets in peak heat.",
		)
	}
	if f.cold || f.snowy {
		avoid = append(avoid, "Spending long time outside without proper winter wear.")
	}
	if f.foggy {
		avoid = append(avoid, "High-speed highways or hilly roads in very low visibility.")
	}
	if len(avoid) == 0 {
		avoid = append(avoid, "No specific places to avoid due to weather. Follow usual safety tips.")
	}

	// Recommended places and activities
	if f.pleasant {
		places = append(places,
			"City parks and gardens.",
			"Lakeside or riverside promenades.",
			"Outdoor cafes.",
		)
		activities = append(activities,
			"Morning or evening walk/jog.",
			"Cycling in nearby areas.",
			"Picnic with friends or family.",
		)
	}
	if f.hot {
		places = append(places,
			"Malls and indoor shopping centers.",
			"Air-conditioned cafes.",
			"Indoor gyms or sports clubs.",
		)
		activities = append(activities,
			"Swimming in a safe pool.",
			"Light indoor workouts or yoga.",
			"Evening or early-morning walks instead of afternoon outings.",
		)
	}
	if f.cold || f.cool {
		places = append(places,
			"Cozy cafes or bookshops.",
			"Indoor museums or galleries.",
		)
		activities = append(activities,
			"Hot beverages at a nearby café.",
			"Movie night at home or cinema.",
		)
	}
	if f.rainy {
		places = append(places,
			"Malls, cinemas, and indoor gaming zones.",
			"Indoor food courts and coffee shops.",
		)
		activities = append(activities,
			"Watching movies or series.",
			"Indoor hobbies like reading or cooking.",
		)
	}
	if f.stormy || f.veryWindy {
		activities = append(activities,
			"Stay indoors and catch up on reading or online courses.",
			"Light indoor workouts or stretching.",
		)
	}
	if f.snowy {
		activities = append(activities,
			"Short walks to enjoy snow with warm clothing.",
			"Indoor games and warm drinks.",
		)
	}
	if len(places) == 0 {
		places = append(places, "Cafes, libraries, or indoor hangout spots nearby.")
	}
	if len(activities) == 0 {
		activities = append(activities, "Normal daily activities as per your routine.")
	}

	return domain.Advice{
		Summary:           summarize(f),
		Precautions:       precautions,
		AvoidPlaces:       avoid,
		RecommendedPlaces: places,
		Activities:        activities,
	}
}

func summarize(f weatherFlags) string {
	var parts []string
	if f.hot {
		parts = append(parts, "It’s quite hot.")
	}
	if f.cold {
		parts = append(parts, "It’s quite cold.")
	}
	if f.rainy {
		parts = append(parts, "Expect rain.")
	}
	if f.stormy {
		parts = append(parts, "Conditions are stormy or very windy.")
	}
	if f.pleasant {
		parts = append(parts, "Weather is pleasant for outdoor plans.")
	}
	if len(parts) == 0 {
		return "Weather looks normal overall."
	}
	return strings.Join(parts, " ")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
