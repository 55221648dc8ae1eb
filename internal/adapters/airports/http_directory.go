package airports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
)

// HTTPDirectory implements AirportDirectory against an external
// airport-directory HTTP API.
//
// It coordinates request construction, retry/backoff on transient failures,
// and a per-request in-process result cache keyed by rounded coordinates.
// The directory is safe for concurrent use.
type HTTPDirectory struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewHTTPDirectory(baseURL, apiKey string) (*HTTPDirectory, error) {
	if baseURL == "" {
		return nil, errors.New("airport directory base URL is empty")
	}

	return &HTTPDirectory{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
	}, nil
}

type airportResponse struct {
	Airports []struct {
		Code string  `json:"iata_code"`
		Name string  `json:"name"`
		Lat  float64 `json:"latitude"`
		Lng  float64 `json:"longitude"`
		Tier int     `json:"tier"`
	} `json:"airports"`
}

// Nearby returns airports within radiusKm of center.
func (d *HTTPDirectory) Nearby(ctx context.Context, center domain.Coordinates, radiusKm float64) (_ []domain.Airport, err error) {
	defer obs.Time(ctx, "airports.directory.Nearby")(&err)

	endpoint := d.baseURL + "/airports/nearby"

	makeReq := func() (*http.Request, error) {
		req, err := d.newRequest(ctx, http.MethodGet, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("lat", fmt.Sprintf("%.6f", center.Lat))
		q.Set("lng", fmt.Sprintf("%.6f", center.Lng))
		q.Set("radius_km", fmt.Sprintf("%.1f", radiusKm))
		req.URL.RawQuery = q.Encode()
		return req, nil
	}

	resp, err := d.doWithRetry(ctx, makeReq)
	if err != nil {
		return nil, fmt.Errorf("airport directory nearby: %w: %w", domain.ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded airportResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("airport directory nearby: decode response: %w", err)
	}

	out := make([]domain.Airport, 0, len(decoded.Airports))
	for _, a := range decoded.Airports {
		if a.Code == "" {
			continue
		}
		out = append(out, domain.Airport{
			Code:     a.Code,
			Name:     a.Name,
			Location: domain.Coordinates{Lat: a.Lat, Lng: a.Lng},
			Tier:     a.Tier,
		})
	}

	return out, nil
}
