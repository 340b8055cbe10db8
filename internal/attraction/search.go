package attraction

import (
	"slices"
	"strings"

	"github.com/Ultro163/city-guide/internal/rating"
	"github.com/Ultro163/city-guide/internal/shared/apperr"
	"github.com/Ultro163/city-guide/internal/shared/geo"
	"github.com/Ultro163/city-guide/internal/shared/sorting"
)

type SortKey string

const (
	SortByDistance SortKey = "distance"
	SortByRating   SortKey = "rating"
)

func parseSortKey(raw string) (SortKey, error) {
	switch SortKey(strings.ToLower(raw)) {
	case SortByDistance:
		return SortByDistance, nil
	case SortByRating:
		return SortByRating, nil
	}
	return "", apperr.Validation("invalid value for sortBy: %q. Allowed values: 'distance' or 'rating'", raw)
}

// order is a validated sortBy/sortDirection pair.
type order struct {
	key SortKey
	dir sorting.Direction
}

func parseOrder(sortBy, sortDirection string) (order, error) {
	key, err := parseSortKey(sortBy)
	if err != nil {
		return order{}, err
	}
	dir, err := sorting.ParseDirection(sortDirection)
	if err != nil {
		return order{}, err
	}
	return order{key: key, dir: dir}, nil
}

type candidate struct {
	attraction Attraction
	distanceKm float64
	rated      bool
}

func newCandidate(d Details, userLat, userLon float64) candidate {
	return candidate{
		attraction: Attraction{Details: d},
		distanceKm: geo.HaversineKm(userLat, userLon, d.Location.Lat, d.Location.Lon),
	}
}

// score sets the derived rating from the attraction's live review scores.
func (c *candidate) score(scores []*int) {
	c.attraction.Rating = rating.Aggregate(scores)
	c.rated = rating.Rated(scores)
}

type stage func([]candidate) []candidate

func apply(cands []candidate, stages ...stage) []candidate {
	for _, s := range stages {
		cands = s(cands)
	}
	return cands
}

func keep(pred func(candidate) bool) stage {
	return func(cands []candidate) []candidate {
		out := cands[:0]
		for _, c := range cands {
			if pred(c) {
				out = append(out, c)
			}
		}
		return out
	}
}

// withinRadius keeps candidates at most radiusKm away. The boundary is inclusive.
func withinRadius(radiusKm float64) stage {
	return keep(func(c candidate) bool { return c.distanceKm <= radiusKm })
}

func inCategory(categoryID *int64) stage {
	if categoryID == nil {
		return func(cands []candidate) []candidate { return cands }
	}
	id := *categoryID
	return keep(func(c candidate) bool { return c.attraction.Category.ID == id })
}

// ratedAtLeast compares against the computed rating, so unrated attractions count as 0.
func ratedAtLeast(minRating *float64) stage {
	if minRating == nil {
		return func(cands []candidate) []candidate { return cands }
	}
	floor := *minRating
	return keep(func(c candidate) bool { return c.attraction.Rating >= floor })
}

func orderBy(o order) stage {
	return func(cands []candidate) []candidate {
		switch o.key {
		case SortByRating:
			slices.SortStableFunc(cands, func(a, b candidate) int {
				return sorting.NullsOrdered(a.attraction.Rating, a.rated, b.attraction.Rating, b.rated, o.dir)
			})
		default:
			slices.SortStableFunc(cands, func(a, b candidate) int {
				return sorting.Ordered(a.distanceKm, b.distanceKm, o.dir)
			})
		}
		return cands
	}
}

func take(limit int) stage {
	return func(cands []candidate) []candidate {
		if limit <= 0 {
			return cands[:0]
		}
		if len(cands) > limit {
			return cands[:limit]
		}
		return cands
	}
}

func attractionsOf(cands []candidate) []Attraction {
	out := make([]Attraction, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.attraction)
	}
	return out
}
