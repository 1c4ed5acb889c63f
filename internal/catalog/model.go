package catalog

import (
	"net/http"
	"strings"

	"github.com/nekogravitycat/court-booking-web/internal/pkg/apperror"
)

var (
	ErrVenueNotFound = apperror.New(http.StatusNotFound, "venue not found")
	ErrInvalidSport  = apperror.New(http.StatusBadRequest, "invalid sport")
)

type Sport string

const (
	SportFutsal    Sport = "Futsal"
	SportBasket    Sport = "Basket"
	SportVoli      Sport = "Voli"
	SportBadminton Sport = "Badminton"
)

// AllSports is the display order of sport categories.
var AllSports = []Sport{SportFutsal, SportVoli, SportBasket, SportBadminton}

// ParseSport accepts a sport name in any letter case. The empty string and
// "all" mean no sport filter and yield ("", nil).
func ParseSport(s string) (Sport, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return "", nil
	}
	for _, sp := range AllSports {
		if strings.EqualFold(s, string(sp)) {
			return sp, nil
		}
	}
	return "", ErrInvalidSport
}

// Venue is a bookable court. Venues are immutable once the catalog is loaded.
type Venue struct {
	ID         string
	Name       string
	Sport      Sport
	Facilities []string
	PriceFrom  int64 // whole Rupiah per hour
	Image      string
}

// Filter narrows a catalog listing.
type Filter struct {
	Query    string // case-insensitive substring of the venue name
	Sport    Sport  // empty means any sport
	Page     int
	PageSize int
}

func (f Filter) matches(v *Venue) bool {
	if f.Sport != "" && v.Sport != f.Sport {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	return q == "" || strings.Contains(strings.ToLower(v.Name), q)
}
