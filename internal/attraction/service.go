package attraction

import (
	"context"

	"github.com/Ultro163/city-guide/internal/category"
	"github.com/Ultro163/city-guide/internal/city"
	"github.com/Ultro163/city-guide/internal/db"
	"github.com/Ultro163/city-guide/internal/shared/apperr"
	"github.com/Ultro163/city-guide/internal/shared/geo"

	"github.com/jackc/pgx/v5"
)

const (
	table  = "attractions"
	entity = "attraction"
)

const selectDetails = `
		SELECT a.id, a.name, c.id, c.name, ci.id, ci.name, ci.country, a.lat, a.lon
		FROM attractions a
		JOIN categories c ON c.id = a.category_id
		JOIN cities ci ON ci.id = a.city_id
`

type Service struct {
	db         db.Querier
	categories *category.Service
	cities     *city.Service
}

func NewService(db db.Querier, categories *category.Service, cities *city.Service) *Service {
	return &Service{db: db, categories: categories, cities: cities}
}

// Create binds the stored category and city, failing with NotFound when either is missing.
func (s *Service) Create(ctx context.Context, input NewAttraction) (Attraction, error) {
	if input.Location == nil {
		return Attraction{}, apperr.Validation("location required")
	}
	cat, err := s.categories.Get(ctx, input.CategoryID)
	if err != nil {
		return Attraction{}, err
	}
	ci, err := s.cities.Get(ctx, input.CityID)
	if err != nil {
		return Attraction{}, err
	}

	d := Details{Name: input.Name, Category: cat, City: ci, Location: *input.Location}
	row := s.db.QueryRow(ctx, `
		INSERT INTO attractions (name, category_id, city_id, lat, lon)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`, d.Name, cat.ID, ci.ID, d.Location.Lat, d.Location.Lon)
	if err := row.Scan(&d.ID); err != nil {
		return Attraction{}, db.Translate(err, entity, 0)
	}
	return Attraction{Details: d}, nil
}

// Get loads the full graph and computes the current rating.
func (s *Service) Get(ctx context.Context, id int64) (Attraction, error) {
	d, err := s.Details(ctx, id)
	if err != nil {
		return Attraction{}, err
	}
	scores, err := s.loadScores(ctx, []int64{id})
	if err != nil {
		return Attraction{}, err
	}
	c := candidate{attraction: Attraction{Details: d}}
	c.score(scores[id])
	return c.attraction, nil
}

// Details resolves the attraction with its category, city and location.
func (s *Service) Details(ctx context.Context, id int64) (Details, error) {
	d, err := scanDetails(s.db.QueryRow(ctx, selectDetails+`WHERE a.id=$1`, id))
	if err != nil {
		return Details{}, db.Translate(err, entity, id)
	}
	return d, nil
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return db.ExistsByID(ctx, s.db, table, id)
}

func (s *Service) Update(ctx context.Context, id int64, patch Patch) (Attraction, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return Attraction{}, err
	}
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.CategoryID != nil {
		if a.Category, err = s.categories.Get(ctx, *patch.CategoryID); err != nil {
			return Attraction{}, err
		}
	}
	if patch.CityID != nil {
		if a.City, err = s.cities.Get(ctx, *patch.CityID); err != nil {
			return Attraction{}, err
		}
	}
	if patch.Location != nil {
		if patch.Location.Lat != nil {
			a.Location.Lat = *patch.Location.Lat
		}
		if patch.Location.Lon != nil {
			a.Location.Lon = *patch.Location.Lon
		}
	}

	_, err = s.db.Exec(ctx, `
		UPDATE attractions
		SET name=$2, category_id=$3, city_id=$4, lat=$5, lon=$6
		WHERE id=$1
	`, a.ID, a.Name, a.Category.ID, a.City.ID, a.Location.Lat, a.Location.Lon)
	if err != nil {
		return Attraction{}, db.Translate(err, entity, id)
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return db.DeleteByID(ctx, s.db, table, entity, id)
}

// Nearby returns attractions within q.RadiusKm of the user, filtered, ordered and capped.
func (s *Service) Nearby(ctx context.Context, q NearbyQuery) ([]Attraction, error) {
	o, err := parseOrder(q.SortBy, q.SortDirection)
	if err != nil {
		return nil, err
	}
	if q.Limit <= 0 {
		return []Attraction{}, nil
	}

	box := geo.BoundingBox(q.UserLat, q.UserLon, q.RadiusKm)
	cands, err := s.loadCandidates(ctx, q.UserLat, q.UserLon,
		`WHERE a.lat BETWEEN $1 AND $2 AND a.lon BETWEEN $3 AND $4`,
		box.MinLat, box.MaxLat, box.MinLon, box.MaxLon)
	if err != nil {
		return nil, err
	}
	return s.rank(ctx, apply(cands, withinRadius(q.RadiusKm)), q.SearchParams, o)
}

// InCity returns attractions of the city, filtered, ordered and capped.
func (s *Service) InCity(ctx context.Context, q CityQuery) ([]Attraction, error) {
	o, err := parseOrder(q.SortBy, q.SortDirection)
	if err != nil {
		return nil, err
	}
	if q.Limit <= 0 {
		return []Attraction{}, nil
	}

	cands, err := s.loadCandidates(ctx, q.UserLat, q.UserLon, `WHERE a.city_id = $1`, q.CityID)
	if err != nil {
		return nil, err
	}
	return s.rank(ctx, cands, q.SearchParams, o)
}

// rank runs the shared tail of both searches: category, scores, min rating, order, limit.
func (s *Service) rank(ctx context.Context, cands []candidate, p SearchParams, o order) ([]Attraction, error) {
	cands = apply(cands, inCategory(p.CategoryID))
	if len(cands) == 0 {
		return []Attraction{}, nil
	}

	ids := make([]int64, 0, len(cands))
	for _, c := range cands {
		ids = append(ids, c.attraction.ID)
	}
	scores, err := s.loadScores(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range cands {
		cands[i].score(scores[cands[i].attraction.ID])
	}

	cands = apply(cands, ratedAtLeast(p.MinRating), orderBy(o), take(p.Limit))
	return attractionsOf(cands), nil
}

func (s *Service) loadCandidates(ctx context.Context, userLat, userLon float64, where string, args ...any) ([]candidate, error) {
	rows, err := s.db.Query(ctx, selectDetails+where+`
		ORDER BY a.id
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cands []candidate
	for rows.Next() {
		d, err := scanDetails(rows)
		if err != nil {
			return nil, err
		}
		cands = append(cands, newCandidate(d, userLat, userLon))
	}
	return cands, rows.Err()
}

func scanDetails(row pgx.Row) (Details, error) {
	var d Details
	err := row.Scan(&d.ID, &d.Name, &d.Category.ID, &d.Category.Name, &d.City.ID, &d.City.Name, &d.City.Country, &d.Location.Lat, &d.Location.Lon)
	return d, err
}

func (s *Service) loadScores(ctx context.Context, attractionIDs []int64) (map[int64][]*int, error) {
	if len(attractionIDs) == 0 {
		return map[int64][]*int{}, nil
	}
	rows, err := s.db.Query(ctx, `
		SELECT attraction_id, rating
		FROM attraction_reviews WHERE attraction_id = ANY($1)
	`, attractionIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := map[int64][]*int{}
	for rows.Next() {
		var id int64
		var score *int
		if err := rows.Scan(&id, &score); err != nil {
			return nil, err
		}
		scores[id] = append(scores[id], score)
	}
	return scores, rows.Err()
}
