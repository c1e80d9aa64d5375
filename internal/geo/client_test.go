package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_Autosuggest(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Autosuggest", r.URL.Path)
		q := r.URL.Query()
		gotQuery = map[string]string{
			"query":              q.Get("query"),
			"maxResults":         q.Get("maxResults"),
			"includeEntityTypes": q.Get("includeEntityTypes"),
			"countryFilter":      q.Get("countryFilter"),
			"key":                q.Get("key"),
			"userLocation":       q.Get("userLocation"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"resourceSets": [{
				"resources": [{
					"value": [
						{"address": {"formattedAddress": "Connaught Place, New Delhi"}},
						{"address": {"formattedAddress": "Connaught Circus, New Delhi"}}
					]
				}]
			}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "IN")
	lat, long := 28.6139, 77.209
	suggestions, err := client.Autosuggest(context.Background(), "connaught", 5, &lat, &long)

	assert.NoError(t, err)
	assert.Len(t, suggestions, 2)
	assert.Equal(t, "Connaught Place, New Delhi", suggestions[0].FormattedAddress)
	assert.Equal(t, "Connaught Circus, New Delhi", suggestions[1].FormattedAddress)

	assert.Equal(t, "connaught", gotQuery["query"])
	assert.Equal(t, "5", gotQuery["maxResults"])
	assert.Equal(t, "Place", gotQuery["includeEntityTypes"])
	assert.Equal(t, "IN", gotQuery["countryFilter"])
	assert.Equal(t, "test-key", gotQuery["key"])
	assert.Equal(t, "28.6139,77.209,5000", gotQuery["userLocation"])
}

func TestClient_AutosuggestWithoutUserLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("userLocation"))
		w.Write([]byte(`{"resourceSets": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "IN")
	suggestions, err := client.Autosuggest(context.Background(), "connaught", 5, nil, nil)

	assert.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestClient_Geocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Locations", r.URL.Path)
		assert.Equal(t, "India Gate, New Delhi", r.URL.Query().Get("q"))
		w.Write([]byte(`{
			"resourceSets": [{
				"resources": [{"point": {"coordinates": [28.612912, 77.22951]}}]
			}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "IN")
	coords, err := client.Geocode(context.Background(), "India Gate, New Delhi")

	assert.NoError(t, err)
	assert.NotNil(t, coords)
	assert.Equal(t, 28.612912, coords.Latitude)
	assert.Equal(t, 77.22951, coords.Longitude)
}

func TestClient_GeocodeNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resourceSets": [{"resources": []}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "IN")
	coords, err := client.Geocode(context.Background(), "nowhere at all")

	assert.NoError(t, err)
	assert.Nil(t, coords)
}

func TestClient_Route(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Routes", r.URL.Path)
		assert.Equal(t, "Delhi", r.URL.Query().Get("wp.0"))
		assert.Equal(t, "Agra", r.URL.Query().Get("wp.1"))
		w.Write([]byte(`{
			"resourceSets": [{
				"resources": [{
					"travelDistance": 233.4,
					"routeLegs": [{
						"itineraryItems": [
							{"instruction": {"text": "Head south on Ring Road"}},
							{"instruction": {"text": "Take the Yamuna Expressway"}}
						]
					}]
				}]
			}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "IN")
	summary, err := client.Route(context.Background(), "Delhi", "Agra")

	assert.NoError(t, err)
	assert.Equal(t, 233.4, summary.DistanceKm)
	assert.Equal(t, []string{"Head south on Ring Road", "Take the Yamuna Expressway"}, summary.Instructions)
}

func TestClient_RouteEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resourceSets": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "IN")
	_, err := client.Route(context.Background(), "Delhi", "Agra")

	assert.Error(t, err)
}

func TestClient_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid key", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key", "IN")
	_, err := client.Autosuggest(context.Background(), "connaught", 5, nil, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
