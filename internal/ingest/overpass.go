// internal/ingest/overpass.go
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

// Hall is one dining location fetched from the geographic data source.
type Hall struct {
	OSMID        string
	Name         string
	Lat          float64
	Lon          float64
	Cuisine      *string
	OpeningHours *string
}

// OverpassClient fetches dining locations from an Overpass API endpoint.
type OverpassClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewOverpassClient(baseURL string, timeout time.Duration) *OverpassClient {
	return &OverpassClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

// FetchHalls queries restaurants, fast food, and cafes inside the bbox
// ("south,west,north,east") and returns them de-duped by element id.
func (c *OverpassClient) FetchHalls(ctx context.Context, bbox string) ([]Hall, error) {
	query := fmt.Sprintf(`
[out:json][timeout:25];
(
  node["amenity"~"restaurant|fast_food|cafe"](%s);
  way["amenity"~"restaurant|fast_food|cafe"](%s);
  relation["amenity"~"restaurant|fast_food|cafe"](%s);
);
out center tags;
`, bbox, bbox, bbox)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("build overpass request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass request: unexpected status %d", resp.StatusCode)
	}

	var decoded overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}

	var halls []Hall
	for _, el := range decoded.Elements {
		switch el.Type {
		case "node":
			halls = append(halls, hallFromElement(el, fmt.Sprintf("node:%d", el.ID), el.Lat, el.Lon))
		case "way", "relation":
			// Ways and relations only carry a usable position when the
			// endpoint returned their center.
			if el.Center != nil {
				halls = append(halls, hallFromElement(el, fmt.Sprintf("obj:%d", el.ID), el.Center.Lat, el.Center.Lon))
			}
		}
	}

	sort.Slice(halls, func(i, j int) bool { return halls[i].OSMID < halls[j].OSMID })
	deduped := halls[:0]
	for i, h := range halls {
		if i == 0 || h.OSMID != halls[i-1].OSMID {
			deduped = append(deduped, h)
		}
	}

	return deduped, nil
}

func hallFromElement(el overpassElement, osmID string, lat, lon float64) Hall {
	hall := Hall{
		OSMID: osmID,
		Name:  fmt.Sprintf("OSM Place %d", el.ID),
		Lat:   lat,
		Lon:   lon,
	}

	if name, ok := el.Tags["name"]; ok && name != "" {
		hall.Name = name
	}
	if cuisine, ok := el.Tags["cuisine"]; ok && cuisine != "" {
		hall.Cuisine = &cuisine
	}
	if oh, ok := el.Tags["opening_hours"]; ok && oh != "" {
		hall.OpeningHours = &oh
	}

	return hall
}
