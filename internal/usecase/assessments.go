package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"careercortex/internal/domain"

	"github.com/google/uuid"
)

var ErrNoQuestions = errors.New("assessment has no questions")

// AssessmentInput is a finished quiz before it is scored.
type AssessmentInput struct {
	Category       string
	Questions      []domain.QuestionResult
	ImprovementTip string
}

// SaveAssessment scores a quiz and stores it. A question counts as correct
// when the user's answer matches the expected one, ignoring surrounding
// whitespace.
func (s *Service) SaveAssessment(ctx context.Context, userID uuid.UUID, in AssessmentInput) (*domain.Assessment, error) {
	if len(in.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	questions := make([]domain.QuestionResult, len(in.Questions))
	correct := 0
	for i, q := range in.Questions {
		q.IsCorrect = strings.TrimSpace(q.UserAnswer) == strings.TrimSpace(q.Answer)
		if q.IsCorrect {
			correct++
		}
		questions[i] = q
	}
	a := &domain.Assessment{
		ID:             uuid.New(),
		UserID:         userID,
		Category:       strings.TrimSpace(in.Category),
		QuizScore:      float64(correct) / float64(len(questions)) * 100,
		Questions:      questions,
		ImprovementTip: strings.TrimSpace(in.ImprovementTip),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.assessments.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListAssessments(ctx context.Context, userID uuid.UUID) ([]domain.Assessment, error) {
	return s.assessments.ListByUser(ctx, userID)
}

func (s *Service) AssessmentStats(ctx context.Context, userID uuid.UUID) (domain.AssessmentStats, error) {
	list, err := s.assessments.ListByUser(ctx, userID)
	if err != nil {
		return domain.AssessmentStats{}, err
	}
	return ComputeStats(list), nil
}

// ComputeStats averages quiz scores, counts questions and builds the score
// trend. The input order does not matter.
func ComputeStats(list []domain.Assessment) domain.AssessmentStats {
	stats := domain.AssessmentStats{Count: len(list), Trend: make([]domain.TrendPoint, 0, len(list))}
	if len(list) == 0 {
		return stats
	}
	sorted := slices.Clone(list)
	slices.SortStableFunc(sorted, func(a, b domain.Assessment) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	var sum float64
	for i, a := range sorted {
		sum += a.QuizScore
		stats.TotalQuestions += len(a.Questions)
		stats.Trend = append(stats.Trend, domain.TrendPoint{
			Name:  fmt.Sprintf("Quiz %d", i+1),
			Date:  a.CreatedAt.Format("Jan 02"),
			Score: a.QuizScore,
		})
	}
	stats.AverageScore = sum / float64(len(sorted))
	latest := sorted[len(sorted)-1]
	stats.Latest = &latest
	return stats
}
