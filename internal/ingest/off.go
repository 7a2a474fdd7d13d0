// internal/ingest/off.go
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/openfoodfacts/openfoodfacts-go"
)

// ItemFacts is the enriched product data for one menu item. Everything
// beyond the name is best-effort.
type ItemFacts struct {
	Name       string
	Brand      *string
	Calories   *int
	Allergens  []string
	Vegan      *bool
	Vegetarian *bool
}

// Enricher looks up product data from OpenFoodFacts: a text search for the
// top hit, plus a per-barcode product fetch when the search hit lacks
// ingredient analysis tags.
type Enricher struct {
	searchURL  string
	httpClient *http.Client
	products   openfoodfacts.Client
}

func NewEnricher(searchURL string, timeout time.Duration) *Enricher {
	return &Enricher{
		searchURL: searchURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		products: openfoodfacts.NewClient("world", "", ""),
	}
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

type offProduct struct {
	Code                    string        `json:"code"`
	ProductName             string        `json:"product_name"`
	Brands                  string        `json:"brands"`
	Nutriments              offNutriments `json:"nutriments"`
	Allergens               string        `json:"allergens"`
	IngredientsAnalysisTags []string      `json:"ingredients_analysis_tags"`
}

type offNutriments struct {
	EnergyKcal100G *float64 `json:"energy-kcal_100g"`
}

// Search returns facts for the top product matching term, or nil when the
// catalog has no hit.
func (e *Enricher) Search(ctx context.Context, term string) (*ItemFacts, error) {
	params := url.Values{}
	params.Set("search_terms", term)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build product search request: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("product search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product search: unexpected status %d", resp.StatusCode)
	}

	var decoded offSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode product search response: %w", err)
	}
	if len(decoded.Products) == 0 {
		return nil, nil
	}
	p := decoded.Products[0]

	facts := &ItemFacts{Name: term}
	if p.ProductName != "" {
		facts.Name = p.ProductName
	}
	if p.Brands != "" {
		brand := p.Brands
		facts.Brand = &brand
	}
	if p.Nutriments.EnergyKcal100G != nil {
		kcal := int(math.Round(*p.Nutriments.EnergyKcal100G))
		facts.Calories = &kcal
	}
	if p.Allergens != "" {
		for _, a := range strings.Split(p.Allergens, ",") {
			if a = strings.TrimSpace(a); a != "" {
				facts.Allergens = append(facts.Allergens, a)
			}
		}
	}

	// Diet flags come only from the analysis tags; ingredient identifiers
	// never carry en:vegan / en:vegetarian. Without analysis tags the
	// flags stay unknown rather than defaulting to false.
	if len(p.IngredientsAnalysisTags) > 0 {
		// "en:non-vegan" also contains the word vegan, so match whole tags.
		vegan := hasTag(p.IngredientsAnalysisTags, "en:vegan")
		vegetarian := hasTag(p.IngredientsAnalysisTags, "en:vegetarian")
		facts.Vegan = &vegan
		facts.Vegetarian = &vegetarian
	}

	if facts.Name == term && p.Code != "" {
		// Search results often ship without a product name; the full
		// product record usually has one.
		if product, err := e.products.Product(p.Code); err == nil && product.ProductName != "" {
			facts.Name = product.ProductName
		}
	}

	return facts, nil
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
