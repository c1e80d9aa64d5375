package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ghoomlo/cab-booking/internal/domain"
)

// Suggestion is a single autosuggest hit. Only the formatted address is
// carried; coordinates come from a follow-up geocode call.
type Suggestion struct {
	FormattedAddress string
}

// RouteSummary is the provider's answer for a two-point route.
type RouteSummary struct {
	DistanceKm   float64
	Instructions []string
}

// Client talks to the maps provider's REST endpoints: autosuggest, geocode
// and route. Every call carries an explicit timeout.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	region     string
}

func NewClient(baseURL, apiKey, region string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		region:     region,
	}
}

type autosuggestResponse struct {
	ResourceSets []struct {
		Resources []struct {
			Value []struct {
				Address struct {
					FormattedAddress string `json:"formattedAddress"`
				} `json:"address"`
			} `json:"value"`
		} `json:"resources"`
	} `json:"resourceSets"`
}

// Autosuggest returns up to maxResults place-name completions for the query,
// biased to the configured region and, when given, the caller's location.
func (c *Client) Autosuggest(ctx context.Context, query string, maxResults int, lat, long *float64) ([]Suggestion, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("includeEntityTypes", "Place")
	params.Set("countryFilter", c.region)
	params.Set("key", c.apiKey)
	if lat != nil && long != nil {
		params.Set("userLocation", fmt.Sprintf("%s,%s,5000",
			strconv.FormatFloat(*lat, 'f', -1, 64),
			strconv.FormatFloat(*long, 'f', -1, 64)))
	}

	var parsed autosuggestResponse
	if err := c.get(ctx, "/Autosuggest", params, &parsed); err != nil {
		return nil, fmt.Errorf("autosuggest %q: %w", query, err)
	}

	var suggestions []Suggestion
	for _, set := range parsed.ResourceSets {
		for _, res := range set.Resources {
			for _, v := range res.Value {
				suggestions = append(suggestions, Suggestion{FormattedAddress: v.Address.FormattedAddress})
			}
		}
	}
	return suggestions, nil
}

type locationsResponse struct {
	ResourceSets []struct {
		Resources []struct {
			Point struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"point"`
		} `json:"resources"`
	} `json:"resourceSets"`
}

// Geocode resolves an address to coordinates. It returns (nil, nil) when the
// provider has no match.
func (c *Client) Geocode(ctx context.Context, address string) (*domain.Coordinates, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("maxResults", "1")
	params.Set("key", c.apiKey)

	var parsed locationsResponse
	if err := c.get(ctx, "/Locations", params, &parsed); err != nil {
		return nil, fmt.Errorf("geocode %q: %w", address, err)
	}

	for _, set := range parsed.ResourceSets {
		for _, res := range set.Resources {
			if len(res.Point.Coordinates) >= 2 {
				return &domain.Coordinates{
					Latitude:  res.Point.Coordinates[0],
					Longitude: res.Point.Coordinates[1],
				}, nil
			}
		}
	}
	return nil, nil
}

type routesResponse struct {
	ResourceSets []struct {
		Resources []struct {
			TravelDistance float64 `json:"travelDistance"`
			RouteLegs      []struct {
				ItineraryItems []struct {
					Instruction struct {
						Text string `json:"text"`
					} `json:"instruction"`
				} `json:"itineraryItems"`
			} `json:"routeLegs"`
		} `json:"resources"`
	} `json:"resourceSets"`
}

// Route returns the travel distance and turn-by-turn instruction texts
// between two named places.
func (c *Client) Route(ctx context.Context, origin, destination string) (*RouteSummary, error) {
	params := url.Values{}
	params.Set("wp.0", origin)
	params.Set("wp.1", destination)
	params.Set("key", c.apiKey)

	var parsed routesResponse
	if err := c.get(ctx, "/Routes", params, &parsed); err != nil {
		return nil, fmt.Errorf("route %q -> %q: %w", origin, destination, err)
	}

	for _, set := range parsed.ResourceSets {
		for _, res := range set.Resources {
			summary := &RouteSummary{DistanceKm: res.TravelDistance}
			for _, leg := range res.RouteLegs {
				for _, item := range leg.ItineraryItems {
					summary.Instructions = append(summary.Instructions, item.Instruction.Text)
				}
			}
			return summary, nil
		}
	}
	return nil, fmt.Errorf("route %q -> %q: no route in response", origin, destination)
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
