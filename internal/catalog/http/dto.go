package http

import (
	"github.com/nekogravitycat/court-booking-web/internal/catalog"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/locale"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/request"
)

// ListVenuesRequest defines query parameters for listing venues.
type ListVenuesRequest struct {
	request.ListParams
	Query string `form:"q" binding:"omitempty,max=100"`
	Sport string `form:"sport"`
}

type VenueResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Sport          string   `json:"sport"`
	Facilities     []string `json:"facilities"`
	PriceFrom      int64    `json:"priceFrom"`
	PriceFromLabel string   `json:"priceFromLabel"`
	Image          string   `json:"image"`
	ThumbnailURL   string   `json:"thumbnailUrl"`
}

func NewVenueResponse(v *catalog.Venue) VenueResponse {
	facilities := v.Facilities
	if facilities == nil {
		facilities = []string{}
	}
	return VenueResponse{
		ID:             v.ID,
		Name:           v.Name,
		Sport:          string(v.Sport),
		Facilities:     facilities,
		PriceFrom:      v.PriceFrom,
		PriceFromLabel: locale.FormatRupiah(v.PriceFrom) + "/jam",
		Image:          v.Image,
		ThumbnailURL:   "/v1/venues/" + v.ID + "/thumbnail",
	}
}

type SportResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
