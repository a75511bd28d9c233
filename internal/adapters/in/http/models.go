package http

import "time"

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created carries the server-generated identifier of a newly created resource.
type Created struct {
	ID string `json:"id"`
}

// NewClient is the request body for registering a sender client.
type NewClient struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// NewParcel is the request body for registering a parcel.
type NewParcel struct {
	ClientID         string  `json:"clientId"`
	Tracking         string  `json:"tracking"`
	RecipientName    string  `json:"recipientName"`
	RecipientPhone   string  `json:"recipientPhone"`
	RecipientAddress string  `json:"recipientAddress"`
	WeightGrams      float64 `json:"weightGrams"`
	HeightCm         float64 `json:"heightCm"`
}

// ParcelWeight is the request body for a weight correction.
type ParcelWeight struct {
	WeightGrams float64 `json:"weightGrams"`
}

// DepotParcel is one row of the depot inventory listing.
type DepotParcel struct {
	ID          string  `json:"id"`
	ClientName  string  `json:"clientName"`
	Tracking    string  `json:"tracking"`
	WeightGrams float64 `json:"weightGrams"`
	Size        string  `json:"size"`
}

// NewManifest is the request body for opening a dispatch manifest.
type NewManifest struct {
	Number string `json:"number"`
}

// ParcelAssignment is the request body for assigning a single parcel.
type ParcelAssignment struct {
	ParcelID string `json:"parcelId"`
}

// ParcelBatchAssignment is the request body for the all-or-nothing batch assignment.
type ParcelBatchAssignment struct {
	ParcelIDs []string `json:"parcelIds"`
}

// ManifestItem is one line item in a manifest summary.
type ManifestItem struct {
	LineItemID        string  `json:"lineItemId"`
	ParcelID          string  `json:"parcelId"`
	Tracking          string  `json:"tracking"`
	Position          int     `json:"position"`
	WeightGrams       float64 `json:"weightGrams"`
	State             string  `json:"state"`
	FailureReasonCode string  `json:"failureReasonCode,omitempty"`
}

// ManifestSummary is the manifest detail response.
type ManifestSummary struct {
	ID               string         `json:"id"`
	Number           string         `json:"number"`
	CreatedAt        time.Time      `json:"createdAt"`
	TotalWeightGrams float64        `json:"totalWeightGrams"`
	Items            []ManifestItem `json:"items"`
}

// DistributionResult reports how many parcels left depot custody.
type DistributionResult struct {
	TransitionedParcels int `json:"transitionedParcels"`
}

// NewFailureReason is the request body for adding a catalog entry. Active
// defaults to true when omitted.
type NewFailureReason struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

// FailureReason is one catalog entry.
type FailureReason struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// FailureReasonAssignment is the request body for recording a delivery failure.
type FailureReasonAssignment struct {
	ReasonID string `json:"reasonId"`
}
