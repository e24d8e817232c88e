package models

import "time"

// RecommendationStatus tags the outcome of a recommendation call.
type RecommendationStatus string

const (
	// StatusItems means the generator returned at least one valid title.
	StatusItems RecommendationStatus = "items"
	// StatusEmpty means the generator answered with a valid, empty list.
	StatusEmpty RecommendationStatus = "empty"
	// StatusUnavailable means no usable answer was obtained.
	StatusUnavailable RecommendationStatus = "unavailable"
)

// UnavailableReason explains a StatusUnavailable result.
type UnavailableReason string

const (
	ReasonNone              UnavailableReason = ""
	ReasonCredentialMissing UnavailableReason = "credential_missing"
	ReasonTransport         UnavailableReason = "transport"
	ReasonDecode            UnavailableReason = "decode"
	ReasonCircuitOpen       UnavailableReason = "circuit_open"
)

// RecommendationKind distinguishes the two gateway operations.
type RecommendationKind string

const (
	KindQuery    RecommendationKind = "query"
	KindCategory RecommendationKind = "category"
)

// Recommendations is the tagged result of a recommendation call.
// Titles is never nil and is empty unless Status is StatusItems.
type Recommendations struct {
	Status RecommendationStatus `json:"status"`
	Reason UnavailableReason    `json:"reason,omitempty"`
	Titles []Title              `json:"titles"`
}

// Unavailable builds a failed result.
func Unavailable(reason UnavailableReason) Recommendations {
	return Recommendations{Status: StatusUnavailable, Reason: reason, Titles: []Title{}}
}

// Found builds a successful result, tagging an empty list as StatusEmpty.
func Found(titles []Title) Recommendations {
	if len(titles) == 0 {
		return Recommendations{Status: StatusEmpty, Titles: []Title{}}
	}
	return Recommendations{Status: StatusItems, Titles: titles}
}

// List returns the titles, empty for any non-items outcome.
func (r Recommendations) List() []Title {
	if r.Status != StatusItems || r.Titles == nil {
		return []Title{}
	}
	return r.Titles
}

// RecommendationSearchRequest is the request body for a free-text search.
type RecommendationSearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// RecommendationResponse is the response shape for gateway calls.
type RecommendationResponse struct {
	Status RecommendationStatus `json:"status"`
	Reason UnavailableReason    `json:"reason,omitempty"`
	Titles []TitleView          `json:"titles"`
}

// NewRecommendationResponse maps a gateway result to its response shape.
func NewRecommendationResponse(r Recommendations) RecommendationResponse {
	return RecommendationResponse{
		Status: r.Status,
		Reason: r.Reason,
		Titles: NewTitleViews(r.List()),
	}
}

// RecommendationLogEntry records the outcome of one gateway call.
type RecommendationLogEntry struct {
	CallID     string               `json:"call_id"`
	Kind       RecommendationKind   `json:"kind"`
	Input      string               `json:"input"`
	Status     RecommendationStatus `json:"status"`
	Reason     UnavailableReason    `json:"reason,omitempty"`
	ItemCount  int                  `json:"item_count"`
	DurationMS int64                `json:"duration_ms"`
	CreatedAt  time.Time            `json:"created_at"`
}
