package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const mapboxBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// MapboxGeocoder resolves coordinates against the Mapbox places API.
type MapboxGeocoder struct {
	accessToken string
	httpClient  *http.Client
}

func NewMapboxGeocoder(accessToken string) *MapboxGeocoder {
	return &MapboxGeocoder{
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type mapboxResponse struct {
	Features []struct {
		PlaceName string `json:"place_name"`
		Context   []struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		} `json:"context"`
	} `json:"features"`
}

func (g *MapboxGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (*Place, error) {
	endpoint := fmt.Sprintf("%s/%f,%f.json?access_token=%s&types=address", mapboxBaseURL, lon, lat, url.QueryEscape(g.accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mapbox geocoding returned status %d", resp.StatusCode)
	}

	var body mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	if len(body.Features) == 0 {
		return &Place{}, nil
	}

	feature := body.Features[0]
	place := &Place{Address: feature.PlaceName}

	for _, c := range feature.Context {
		switch {
		case strings.HasPrefix(c.ID, "place"):
			place.City = c.Text
		case strings.HasPrefix(c.ID, "region"):
			place.Region = c.Text
		case strings.HasPrefix(c.ID, "country"):
			place.Country = c.Text
		case strings.HasPrefix(c.ID, "postcode"):
			place.PostalCode = c.Text
		}
	}

	return place, nil
}
