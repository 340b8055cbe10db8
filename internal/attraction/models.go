package attraction

import (
	"github.com/Ultro163/city-guide/internal/category"
	"github.com/Ultro163/city-guide/internal/city"
)

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Details is an attraction with every reference resolved, without the derived rating.
type Details struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Category category.Category `json:"category"`
	Location Location          `json:"location"`
	City     city.City         `json:"city"`
}

// Attraction is the read model. Rating is recomputed from reviews on every read.
type Attraction struct {
	Details
	Rating float64 `json:"rating"`
}

type NewAttraction struct {
	Name       string    `json:"name"`
	CategoryID int64     `json:"category_id"`
	CityID     int64     `json:"city_id"`
	Location   *Location `json:"location"`
}

type LocationPatch struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type Patch struct {
	Name       *string        `json:"name"`
	CategoryID *int64         `json:"category_id"`
	CityID     *int64         `json:"city_id"`
	Location   *LocationPatch `json:"location"`
}

// SearchParams are shared by the nearby and in-city searches.
type SearchParams struct {
	UserLat       float64
	UserLon       float64
	CategoryID    *int64
	MinRating     *float64
	Limit         int
	SortBy        string
	SortDirection string
}

type NearbyQuery struct {
	SearchParams
	RadiusKm float64
}

type CityQuery struct {
	SearchParams
	CityID int64
}
