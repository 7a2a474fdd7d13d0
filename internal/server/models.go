// internal/server/models.go
package server

import "hooshungry/internal/models"

// RecommendRequest is the JSON body for the recommendations endpoint. An
// empty body is a valid request with all defaults.
type RecommendRequest struct {
	Preferences models.Preferences `json:"preferences"`
	Limit       *int               `json:"limit,omitempty"`
}

// RecommendResponse carries the ranked items for one hall.
type RecommendResponse struct {
	HallID int64                   `json:"hallId"`
	Count  int                     `json:"count"`
	Items  []models.ScoredMenuItem `json:"items"`
}

// HallsResponse carries the hall listing.
type HallsResponse struct {
	Count int                 `json:"count"`
	Halls []models.DiningHall `json:"halls"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}
