package review

import (
	"errors"
	"time"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByProduct(productID int) ([]Review, error) {
	return s.repo.ListByProduct(productID)
}

// Summarize computes the rating widget data for one product. A product
// without reviews gets average 0 and an all-zero distribution, never NaN.
func (s *Service) Summarize(productID int) (Summary, error) {
	reviews, err := s.repo.ListByProduct(productID)
	if err != nil {
		return Summary{}, err
	}

	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	sum := 0
	for _, rev := range reviews {
		sum += rev.Rating
		if rev.Rating >= 1 && rev.Rating <= 5 {
			dist[rev.Rating]++
		}
	}

	summary := Summary{Total: len(reviews), Distribution: dist}
	if len(reviews) > 0 {
		summary.Average = float64(sum) / float64(len(reviews))
	}
	return summary, nil
}

// Add stores a new review. The id is assigned by the repository and
// createdAt is server-assigned.
func (s *Service) Add(rev Review) (Review, error) {
	if rev.Rating < 1 || rev.Rating > 5 {
		return Review{}, ErrInvalidRating
	}
	rev.Helpful = 0
	rev.CreatedAt = time.Now().UTC().Format("2006-01-02")
	return s.repo.Add(rev)
}

// MarkHelpful increments the helpful counter and returns the new value.
// The increment is deliberately not idempotent per user: repeat-click
// guarding stays a client concern, there is no durable per-user tracking.
func (s *Service) MarkHelpful(reviewID int) (int, error) {
	if reviewID <= 0 {
		return 0, ErrNotFound
	}
	return s.repo.IncrementHelpful(reviewID)
}
