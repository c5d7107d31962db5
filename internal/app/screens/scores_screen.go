package screens

import (
	"context"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/services"
)

// ScoresScreen manages the score list of one assessment. Rows exist from
// seeding, so the screen only edits values; students enrolled after the
// assessment was created can be added individually.
type ScoresScreen struct {
	service      services.ScoreService
	assessmentID int64

	scores     []models.ScoreWithStudent
	search     string
	selectedID int64
}

// NewScoresScreen creates a scores screen controller bound to one assessment
func NewScoresScreen(service services.ScoreService, assessmentID int64) *ScoresScreen {
	return &ScoresScreen{service: service, assessmentID: assessmentID}
}

// Load replaces the in-memory list wholesale from storage.
func (s *ScoresScreen) Load(ctx context.Context) error {
	scores, err := s.service.GetScoresByAssessment(ctx, s.assessmentID)
	if err != nil {
		return err
	}
	s.scores = scores
	return nil
}

// Filtered returns the scores whose student name matches the search string.
func (s *ScoresScreen) Filtered() []models.ScoreWithStudent {
	filtered := make([]models.ScoreWithStudent, 0, len(s.scores))
	for _, score := range s.scores {
		if matchesSearch(s.search, score.StudentName) {
			filtered = append(filtered, score)
		}
	}
	return filtered
}

// SetSearch updates the search string
func (s *ScoresScreen) SetSearch(search string) { s.search = search }

// ToggleSelected selects the row, or clears the selection when the same
// row is tapped again.
func (s *ScoresScreen) ToggleSelected(id int64) {
	if s.selectedID == id {
		s.selectedID = 0
		return
	}
	s.selectedID = id
}

// SelectedID returns the currently selected row id, 0 when none
func (s *ScoresScreen) SelectedID() int64 { return s.selectedID }

// Add records a score row for a student missing from the seeded set, then
// reloads the list.
func (s *ScoresScreen) Add(ctx context.Context, studentID int64, value float64) error {
	score := &models.Score{AssessmentID: s.assessmentID, StudentID: studentID, Score: value}
	if _, err := s.service.CreateScore(ctx, score); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Update sets a score's value then reloads the list
func (s *ScoresScreen) Update(ctx context.Context, id int64, value float64) error {
	if err := s.service.UpdateScore(ctx, id, value); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Delete removes a score row then reloads the list
func (s *ScoresScreen) Delete(ctx context.Context, id int64) error {
	if err := s.service.DeleteScore(ctx, id); err != nil {
		return err
	}
	if s.selectedID == id {
		s.selectedID = 0
	}
	return s.Load(ctx)
}
