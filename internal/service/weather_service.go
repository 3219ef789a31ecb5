package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/climateassistant/backend/internal/domain"
	"github.com/climateassistant/backend/pkg/utils"
)

// WeatherService answers city lookups: cache, provider, normalization, advice
type WeatherService struct {
	provider Provider
	cache    *Cache
	repo     LookupRepository

	wgBg sync.WaitGroup // tracks background goroutines for graceful shutdown
}

// NewWeatherService creates a new weather service
func NewWeatherService(provider Provider, cache *Cache, repo LookupRepository) *WeatherService {
	return &WeatherService{
		provider: provider,
		cache:    cache,
		repo:     repo,
	}
}

// WaitBackground blocks until all background save goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *WeatherService) WaitBackground() {
	s.wgBg.Wait()
}

// GetCurrentWeather returns normalized weather and advice for a city
func (s *WeatherService) GetCurrentWeather(ctx context.Context, city string) (domain.WeatherResponse, error) {
	// city may alias a request buffer; the result outlives the request in cache and history
	city = strings.Clone(strings.TrimSpace(city))
	if city == "" {
		return domain.WeatherResponse{}, newError("City name is required.", nil)
	}

	key := CacheKey(city)
	source := domain.SourceCache
	result, ok := s.cache.Get(key)
	if !ok {
		var err error
		result, err = s.provider.Current(ctx, city)
		if err != nil {
			return domain.WeatherResponse{}, err
		}
		s.cache.Set(key, result)
		source = domain.SourceLive
	}

	resp := Normalize(result, source, s.provider.Name())
	advice := BuildAdvice(AdviceInput{
		Temperature: resp.Weather.Temperature,
		Humidity:    resp.Weather.Humidity,
		WindSpeed:   resp.Wind.Speed,
		Description: resp.Weather.Description,
	})
	resp.Advice = &advice

	s.recordLookup(resp)

	return resp, nil
}

// RecentLookups returns the newest persisted lookups
func (s *WeatherService) RecentLookups(ctx context.Context, limit int) ([]domain.Lookup, error) {
	lookups, err := s.repo.RecentLookups(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("weather: failed to load lookups: %w", err)
	}
	return lookups, nil
}

// Health reports storage connectivity
func (s *WeatherService) Health(ctx context.Context) error {
	return s.repo.Health(ctx)
}

// recordLookup persists the lookup asynchronously (tracked for graceful shutdown)
func (s *WeatherService) recordLookup(resp domain.WeatherResponse) {
	lookup := domain.Lookup{
		ID:          uuid.NewString(),
		City:        resp.Location.City,
		Temperature: resp.Weather.Temperature,
		Description: resp.Weather.Description,
		Source:      resp.Meta.Source,
		CreatedAt:   time.Now().UTC(),
	}
	if resp.Location.Country != nil {
		lookup.Country = *resp.Location.Country
	}

	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.SaveLookup(bgCtx, lookup); err != nil {
			log.Printf("Failed to save lookup: %v", err)
		}
	}()
}

// Normalize maps a provider payload onto the public response shape.
// Wind arrives in km/h and is converted to m/s.
func Normalize(result *ProviderResult, source, provider string) domain.WeatherResponse {
	p := result.Payload

	resp := domain.WeatherResponse{
		Meta: domain.Meta{Source: source, Provider: provider},
		Location: domain.Location{
			Country: p.Location.Country,
			Coordinates: domain.Coordinates{
				Lat: p.Location.Lat,
				Lon: p.Location.Lon,
			},
		},
		Weather: domain.Conditions{
			Temperature: p.Current.TempC,
			FeelsLike:   p.Current.FeelsLikeC,
			Description: p.Current.Condition.Text,
			Icon:        p.Current.Condition.Icon,
			Humidity:    p.Current.Humidity,
			Pressure:    p.Current.PressureMB,
			Cloudiness:  p.Current.Cloud,
		},
		Wind: domain.Wind{
			Deg: p.Current.WindDegree,
		},
		// current.json carries no astronomy data
		Sun:         domain.Sun{},
		ProviderRaw: result.Raw,
	}

	if p.Location.Name != nil {
		resp.Location.City = *p.Location.Name
	}
	if kph := p.Current.WindKPH; kph != nil {
		ms := utils.RoundTo(*kph/3.6, 1)
		resp.Wind.Speed = &ms
	}

	return resp
}
