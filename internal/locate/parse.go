package locate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"globex/internal/geo"
	"globex/internal/types"
)

// ErrNoCoordinates is returned when a reply lacks a usable latitude/longitude.
var ErrNoCoordinates = errors.New("reply contains no usable coordinates")

var numberPattern = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)

// ParseReply extracts a Location from a reply made of "Key: value" lines,
// for example:
//
//	Location: New Delhi, India
//	Latitude: 28.6139
//	Longitude: 77.2090
//	Reasoning: ...
//
// Keys are matched case-insensitively and markdown emphasis is ignored.
// Hemisphere suffixes (S, W) negate unsigned values.
func ParseReply(reply string) (Location, error) {
	var (
		loc      Location
		lat, lon float64
		haveLat  bool
		haveLon  bool
		latErr   error
		lonErr   error
	)

	for _, line := range strings.Split(reply, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.Trim(strings.TrimSpace(key), "*_#- "))
		value = strings.TrimSpace(strings.Trim(strings.TrimSpace(value), "*_"))

		switch key {
		case "location":
			loc.Name = value
		case "latitude", "lat":
			lat, latErr = parseDegrees(value, "S")
			haveLat = latErr == nil
		case "longitude", "lon", "lng":
			lon, lonErr = parseDegrees(value, "W")
			haveLon = lonErr == nil
		case "reasoning":
			loc.Reasoning = value
		}
	}

	if !haveLat || !haveLon {
		return Location{}, fmt.Errorf("%w: latitude: %v, longitude: %v", ErrNoCoordinates, latErr, lonErr)
	}
	if !geo.ValidCoordinates(lat, lon) {
		return Location{}, fmt.Errorf("%w: (%v, %v) out of range", ErrNoCoordinates, lat, lon)
	}

	loc.Point = types.NewGeoPoint(lat, lon)
	return loc, nil
}

// parseDegrees reads the first number in value. An unsigned number followed
// by the negative hemisphere letter is negated.
func parseDegrees(value, negativeHemisphere string) (float64, error) {
	idx := numberPattern.FindStringIndex(value)
	if idx == nil {
		return 0, fmt.Errorf("no number in %q", value)
	}
	raw := value[idx[0]:idx[1]]
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", raw, err)
	}

	rest := strings.ToUpper(value[idx[1]:])
	rest = strings.TrimLeft(rest, "°º ")
	signed := strings.HasPrefix(raw, "-") || strings.HasPrefix(raw, "+")
	if !signed && strings.HasPrefix(rest, negativeHemisphere) {
		v = -v
	}
	return v, nil
}
