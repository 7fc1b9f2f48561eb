package timezone

import (
	"errors"
	"fmt"
	"sync"

	"globex/internal/geo"

	"github.com/ringsaturn/tzf"
)

var (
	// ErrNoTimezone is returned for points no timezone polygon covers.
	ErrNoTimezone = errors.New("no timezone for coordinates")

	// ErrInvalidCoordinates is returned for points off the globe.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// Service resolves IANA timezone names for marker positions
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the process-wide timezone service. The tzf finder
// keeps its polygon data in memory, so it is built at most once.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns a name like "Asia/Kolkata" for the given point.
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	if !geo.ValidCoordinates(latitude, longitude) {
		return "", fmt.Errorf("%w: lat=%f, lon=%f", ErrInvalidCoordinates, latitude, longitude)
	}

	s.mu.RLock()
	name := s.finder.GetTimezoneName(longitude, latitude)
	s.mu.RUnlock()

	if name == "" {
		return "", fmt.Errorf("%w: lat=%f, lon=%f", ErrNoTimezone, latitude, longitude)
	}
	return name, nil
}
