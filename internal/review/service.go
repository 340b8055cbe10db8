package review

import (
	"context"
	"errors"
	"log"
	"slices"

	"github.com/Ultro163/city-guide/internal/attraction"
	"github.com/Ultro163/city-guide/internal/db"
	"github.com/Ultro163/city-guide/internal/shared/apperr"
	"github.com/Ultro163/city-guide/internal/shared/sorting"
	"github.com/Ultro163/city-guide/internal/user"

	"github.com/jackc/pgx/v5"
)

const (
	table  = "attraction_reviews"
	entity = "review"
)

const selectReview = `
		SELECT r.id, r.comment, r.rating, u.id, u.name, u.email, r.attraction_id
		FROM attraction_reviews r
		JOIN users u ON u.id = r.author_id
`

// Publisher receives every successful review mutation for the attraction.
type Publisher interface {
	Publish(ctx context.Context, attractionID int64, eventType string, payload any)
}

type Service struct {
	db          db.Querier
	users       *user.Service
	attractions *attraction.Service
	events      Publisher
}

func NewService(db db.Querier, users *user.Service, attractions *attraction.Service, events Publisher) *Service {
	return &Service{db: db, users: users, attractions: attractions, events: events}
}

// Create stores the author's only review of the attraction. The lookup gives
// a readable rejection; the unique constraint decides concurrent inserts.
func (s *Service) Create(ctx context.Context, input NewReview) (Review, error) {
	exists, err := s.existsFor(ctx, input.AttractionID, input.AuthorID)
	if err != nil {
		return Review{}, err
	}
	if exists {
		log.Printf("rejected duplicate review: author=%d attraction=%d", input.AuthorID, input.AttractionID)
		return Review{}, apperr.Validation("review already exists for user %d and attraction %d", input.AuthorID, input.AttractionID)
	}

	author, err := s.users.Get(ctx, input.AuthorID)
	if err != nil {
		return Review{}, err
	}
	att, err := s.attractions.Details(ctx, input.AttractionID)
	if err != nil {
		return Review{}, err
	}

	r := Review{Comment: input.Comment, Rating: input.Rating, Author: author, Attraction: att}
	row := s.db.QueryRow(ctx, `
		INSERT INTO attraction_reviews (comment, rating, author_id, attraction_id)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`, r.Comment, r.Rating, author.ID, att.ID)
	if err := row.Scan(&r.ID); err != nil {
		err = db.Translate(err, entity, 0)
		if apperr.KindOf(err) == apperr.KindIntegrity {
			log.Printf("concurrent duplicate review: author=%d attraction=%d", author.ID, att.ID)
		}
		return Review{}, err
	}

	s.publish(ctx, att.ID, EventCreated, r)
	return r, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Review, error) {
	r, attractionID, err := scanReview(s.db.QueryRow(ctx, selectReview+`WHERE r.id=$1`, id))
	if err != nil {
		return Review{}, db.Translate(err, entity, id)
	}
	if r.Attraction, err = s.attractions.Details(ctx, attractionID); err != nil {
		return Review{}, err
	}
	return r, nil
}

// Update lets only the author change comment or rating. The attraction binding never changes.
func (s *Service) Update(ctx context.Context, id int64, input UpdateReview) (Review, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return Review{}, err
	}
	if r.Author.ID != input.AuthorID {
		log.Printf("rejected review update: review=%d author=%d actor=%d", id, r.Author.ID, input.AuthorID)
		return Review{}, apperr.AccessDenied("only the author can modify review %d", id)
	}
	if r.Attraction.ID != input.AttractionID {
		log.Printf("rejected review reassignment: review=%d attraction=%d requested=%d", id, r.Attraction.ID, input.AttractionID)
		return Review{}, apperr.Validation("review %d belongs to attraction %d and cannot be moved", id, r.Attraction.ID)
	}

	if input.Comment != nil {
		r.Comment = input.Comment
	}
	if input.Rating != nil {
		r.Rating = input.Rating
	}
	_, err = s.db.Exec(ctx, `UPDATE attraction_reviews SET comment=$2, rating=$3 WHERE id=$1`, r.ID, r.Comment, r.Rating)
	if err != nil {
		return Review{}, db.Translate(err, entity, id)
	}

	s.publish(ctx, r.Attraction.ID, EventUpdated, r)
	return r, nil
}

// Delete removes the review. A non-nil actorID must be the review's author.
func (s *Service) Delete(ctx context.Context, id int64, actorID *int64) error {
	var authorID, attractionID int64
	err := s.db.QueryRow(ctx, `SELECT author_id, attraction_id FROM attraction_reviews WHERE id=$1`, id).Scan(&authorID, &attractionID)
	if err != nil {
		return db.Translate(err, entity, id)
	}
	if actorID != nil && *actorID != authorID {
		log.Printf("rejected review delete: review=%d author=%d actor=%d", id, authorID, *actorID)
		return apperr.AccessDenied("only the author can delete review %d", id)
	}
	if err := db.DeleteByID(ctx, s.db, table, entity, id); err != nil {
		return err
	}

	s.publish(ctx, attractionID, EventDeleted, map[string]int64{"id": id})
	return nil
}

// ForAttraction lists the attraction's reviews by rating. Unrated reviews
// come first ascending and last descending.
func (s *Service) ForAttraction(ctx context.Context, attractionID int64, sortDirection string) ([]Review, error) {
	dir, err := sorting.ParseDirection(sortDirection)
	if err != nil {
		return nil, err
	}
	att, err := s.attractions.Details(ctx, attractionID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, selectReview+`WHERE r.attraction_id=$1
		ORDER BY r.id
	`, attractionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		r, _, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		r.Attraction = att
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(reviews, func(a, b Review) int {
		return sorting.NullsOrdered(score(a.Rating), a.Rating != nil, score(b.Rating), b.Rating != nil, dir)
	})
	return reviews, nil
}

func (s *Service) existsFor(ctx context.Context, attractionID, authorID int64) (bool, error) {
	var id int64
	err := s.db.QueryRow(ctx, `
		SELECT id FROM attraction_reviews WHERE attraction_id=$1 AND author_id=$2
	`, attractionID, authorID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (s *Service) publish(ctx context.Context, attractionID int64, eventType string, payload any) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, attractionID, eventType, payload)
}

func scanReview(row pgx.Row) (Review, int64, error) {
	var r Review
	var attractionID int64
	err := row.Scan(&r.ID, &r.Comment, &r.Rating, &r.Author.ID, &r.Author.Name, &r.Author.Email, &attractionID)
	return r, attractionID, err
}

func score(v *int) float64 {
	if v == nil {
		return 0
	}
	return float64(*v)
}
