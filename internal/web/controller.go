package web

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
)

// Controller handles search form submissions for one page session.
// A new submission cancels the one in flight, so the view only ever
// reflects the latest request.
type Controller struct {
	api WeatherFetcher

	mu     sync.Mutex
	view   *View
	seq    uint64
	cancel context.CancelFunc
}

// NewController creates a controller with a fresh view
func NewController(api WeatherFetcher) *Controller {
	return &Controller{
		api:  api,
		view: NewView(),
	}
}

// View returns a snapshot of the current view
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.Clone()
}

// Submit handles one form submission carrying a free-text city.
// The outcome is always reflected in the view. The returned error is one of
// *ValidationError, *APIError, *TransportError or ErrSuperseded.
func (c *Controller) Submit(ctx context.Context, input string) error {
	city := strings.TrimSpace(input)
	if city == "" {
		c.mu.Lock()
		c.view.SetStatus(MsgEmptyCity, StatusError)
		c.mu.Unlock()
		return &ValidationError{Message: MsgEmptyCity}
	}

	reqCtx, seq := c.begin(ctx)
	data, err := c.api.FetchWeather(reqCtx, city)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return ErrSuperseded
	}
	c.cancel()
	c.cancel = nil

	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			c.view.SetStatus(apiErr.Message, StatusError)
			return err
		}
		log.Printf("web: weather lookup for %q failed: %v", city, err)
		c.view.SetStatus(MsgNetworkError, StatusError)
		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			err = &TransportError{Err: err}
		}
		return err
	}

	c.view.ClearStatus()
	Render(c.view, data)
	return nil
}

// begin supersedes any in-flight submission and puts the view in loading state
func (c *Controller) begin(ctx context.Context) (context.Context, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	reqCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.view.ClearStatus()
	c.view.SetStatus(MsgLoading, StatusInfo)
	c.view.Result.Hidden = true

	return reqCtx, c.seq
}
