package timezone

import (
	"errors"
	"testing"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	// Country and sub-region centroids from the region catalog.
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{name: "us centroid", latitude: 38, longitude: -97, want: "America/Chicago"},
		{name: "gujarat", latitude: 22.3, longitude: 70.8, want: "Asia/Kolkata"},
		{name: "gb centroid", latitude: 54, longitude: -2, want: "Europe/London"},
		{name: "tokyo", latitude: 35.6762, longitude: 139.6503, want: "Asia/Tokyo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_GetTimezone_InvalidCoordinates(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	if _, err := svc.GetTimezone(95, 0); !errors.Is(err, ErrInvalidCoordinates) {
		t.Errorf("GetTimezone(95, 0) error = %v, want ErrInvalidCoordinates", err)
	}
}

func TestNewService_Singleton(t *testing.T) {
	a, err := NewService()
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	b, err := NewService()
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	if a != b {
		t.Error("NewService should return the same instance")
	}
}
