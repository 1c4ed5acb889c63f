package catalog

const (
	imageFutsal = "https://images.unsplash.com/photo-1712325485668-6b6830ba814e?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"
	imageVoli   = "https://images.unsplash.com/photo-1693517235862-a1b8c3323efb?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"
	imageBasket = "https://images.unsplash.com/photo-1559369064-c4d65141e408?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"
)

var (
	facilitiesSynthetic = []string{"Kamera CCTV", "Shower", "Ruang Ganti", "Toilet"}
	facilitiesCement    = []string{"Kamera CCTV", "Toilet", "Parkir Luas"}
	facilitiesIndoor    = []string{"AC", "Shower", "Ruang Ganti", "Toilet", "Kamera CCTV"}
	facilitiesOutdoor   = []string{"Pencahayaan Malam", "Toilet", "Parkir Luas"}
)

// DefaultVenues is the built-in venue table, used when no database source is
// configured. Order is the catalog display order.
func DefaultVenues() []Venue {
	return []Venue{
		{ID: "futsal-sintetis-1", Name: "Lapangan Futsal Sintetis A", Sport: SportFutsal, Facilities: facilitiesSynthetic, PriceFrom: 150000, Image: imageFutsal},
		{ID: "futsal-sintetis-2", Name: "Lapangan Futsal Sintetis B", Sport: SportFutsal, Facilities: facilitiesSynthetic, PriceFrom: 150000, Image: imageFutsal},
		{ID: "futsal-sintetis-3", Name: "Lapangan Futsal Sintetis C", Sport: SportFutsal, Facilities: facilitiesSynthetic, PriceFrom: 150000, Image: imageFutsal},
		{ID: "futsal-semen-1", Name: "Lapangan Futsal Semen A", Sport: SportFutsal, Facilities: facilitiesCement, PriceFrom: 120000, Image: imageFutsal},
		{ID: "futsal-semen-2", Name: "Lapangan Futsal Semen B", Sport: SportFutsal, Facilities: facilitiesCement, PriceFrom: 120000, Image: imageFutsal},
		{ID: "futsal-semen-3", Name: "Lapangan Futsal Semen C", Sport: SportFutsal, Facilities: facilitiesCement, PriceFrom: 120000, Image: imageFutsal},
		{ID: "voli-indoor-1", Name: "Lapangan Voli Indoor A", Sport: SportVoli, Facilities: facilitiesIndoor, PriceFrom: 180000, Image: imageVoli},
		{ID: "voli-indoor-2", Name: "Lapangan Voli Indoor B", Sport: SportVoli, Facilities: facilitiesIndoor, PriceFrom: 180000, Image: imageVoli},
		{ID: "voli-indoor-3", Name: "Lapangan Voli Indoor C", Sport: SportVoli, Facilities: facilitiesIndoor, PriceFrom: 180000, Image: imageVoli},
		{ID: "voli-outdoor-1", Name: "Lapangan Voli Outdoor A", Sport: SportVoli, Facilities: facilitiesOutdoor, PriceFrom: 120000, Image: imageVoli},
		{ID: "voli-outdoor-2", Name: "Lapangan Voli Outdoor B", Sport: SportVoli, Facilities: facilitiesOutdoor, PriceFrom: 120000, Image: imageVoli},
		{ID: "basket-indoor-1", Name: "Lapangan Basket Indoor A", Sport: SportBasket, Facilities: facilitiesIndoor, PriceFrom: 200000, Image: imageBasket},
		{ID: "basket-indoor-2", Name: "Lapangan Basket Indoor B", Sport: SportBasket, Facilities: facilitiesIndoor, PriceFrom: 200000, Image: imageBasket},
		{ID: "basket-indoor-3", Name: "Lapangan Basket Indoor C", Sport: SportBasket, Facilities: facilitiesIndoor, PriceFrom: 200000, Image: imageBasket},
		{ID: "basket-indoor-4", Name: "Lapangan Basket Indoor D", Sport: SportBasket, Facilities: facilitiesIndoor, PriceFrom: 200000, Image: imageBasket},
	}
}
