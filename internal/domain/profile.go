package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the onboarding answers a user gives about their career.
type Profile struct {
	UserID      uuid.UUID `json:"user_id"`
	Industry    string    `json:"industry"`
	SubIndustry string    `json:"sub_industry"`
	Bio         string    `json:"bio"`
	Experience  *int      `json:"experience"`
	Skills      []string  `json:"skills"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsEmpty reports whether the user never onboarded or cleared their data.
func (p Profile) IsEmpty() bool {
	return p.Industry == "" && p.Bio == "" && p.Experience == nil && len(p.Skills) == 0
}

type QuestionResult struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	UserAnswer  string `json:"user_answer"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation,omitempty"`
}

// Assessment is one completed practice quiz. QuizScore is a percentage.
type Assessment struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"user_id"`
	Category       string           `json:"category"`
	QuizScore      float64          `json:"quiz_score"`
	Questions      []QuestionResult `json:"questions"`
	ImprovementTip string           `json:"improvement_tip,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

type TrendPoint struct {
	Name  string  `json:"name"`
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// AssessmentStats summarises a user's assessments. Trend is ordered oldest
// first.
type AssessmentStats struct {
	Count          int          `json:"count"`
	AverageScore   float64      `json:"average_score"`
	TotalQuestions int          `json:"total_questions"`
	Latest         *Assessment  `json:"latest"`
	Trend          []TrendPoint `json:"trend"`
}
