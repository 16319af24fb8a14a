package attempt

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/question"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/streak"
	"gorm.io/gorm"
)

var (
	ErrAttemptNotFound  = errors.New("attempt not found")
	ErrNotOwner         = errors.New("attempt belongs to another user")
	ErrAlreadyCompleted = errors.New("attempt already completed")
)

type AttemptService interface {
	Start(ctx context.Context, userID, quizID uuid.UUID) (*StartResponse, error)
	Submit(ctx context.Context, userID, attemptID uuid.UUID, dto SubmitDTO) (*SubmitResponse, error)
	Results(ctx context.Context, userID, attemptID uuid.UUID) (*ResultsResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID, limit int) ([]Attempt, error)
}

type attemptService struct {
	db       *gorm.DB
	repo     AttemptRepository
	quizRepo quiz.QuizRepository
	streaks  streak.StreakService
}

func NewService(db *gorm.DB, repo AttemptRepository, quizRepo quiz.QuizRepository, streaks streak.StreakService) AttemptService {
	return &attemptService{
		db:       db,
		repo:     repo,
		quizRepo: quizRepo,
		streaks:  streaks,
	}
}

func (s *attemptService) Start(ctx context.Context, userID, quizID uuid.UUID) (*StartResponse, error) {
	log := config.WithContext(ctx)

	qz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		return nil, err
	}
	if qz == nil {
		return nil, quiz.ErrQuizNotFound
	}

	a := Attempt{
		UserID:         userID,
		QuizID:         quizID,
		StartTime:      time.Now().UTC(),
		TotalQuestions: len(qz.Questions),
		Status:         StatusInProgress,
	}
	if err := s.repo.Create(&a); err != nil {
		return nil, err
	}

	log.WithField("attempt_id", a.ID.String()).
		WithField("quiz_id", quizID.String()).
		Info("Attempt started")

	return &StartResponse{
		AttemptID:        a.ID,
		QuizID:           quizID,
		StartTime:        a.StartTime,
		TotalQuestions:   a.TotalQuestions,
		TimeLimitMinutes: qz.TimeLimitMinutes,
	}, nil
}

func (s *attemptService) Submit(ctx context.Context, userID, attemptID uuid.UUID, dto SubmitDTO) (*SubmitResponse, error) {
	log := config.WithContext(ctx)

	a, err := s.repo.FindByID(attemptID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAttemptNotFound
	}
	if a.UserID != userID {
		return nil, ErrNotOwner
	}
	if a.Status == StatusCompleted {
		return nil, ErrAlreadyCompleted
	}

	qz, err := s.quizRepo.FindByID(a.QuizID)
	if err != nil {
		return nil, err
	}
	if qz == nil {
		return nil, quiz.ErrQuizNotFound
	}

	graded := grade(quizQuestions(qz), dto.Answers, a.TotalQuestions, qz.TotalMarks, qz.PassingMarks)

	now := time.Now().UTC()
	a.EndTime = &now
	a.Score = graded.score
	a.Percentage = graded.percentage
	a.CorrectAnswers = graded.correct
	a.WrongAnswers = graded.wrong
	a.Unanswered = graded.unanswered
	a.TimeTakenSeconds = int(now.Sub(a.StartTime).Seconds())
	a.Passed = graded.passed
	a.Status = StatusCompleted

	for i := range graded.answers {
		graded.answers[i].AttemptID = a.ID
	}

	// Answers, the attempt mutation and the streak update commit together.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.AddAnswers(graded.answers); err != nil {
			return err
		}
		if err := repo.Update(a); err != nil {
			return err
		}
		return s.streaks.Touch(ctx, tx, userID, graded.passed)
	})
	if err != nil {
		return nil, err
	}

	log.WithField("attempt_id", a.ID.String()).
		WithField("score", graded.score).
		WithField("passed", graded.passed).
		Info("Attempt submitted")

	return &SubmitResponse{
		AttemptID:      a.ID,
		Score:          graded.score,
		TotalMarks:     qz.TotalMarks,
		Percentage:     graded.percentage,
		Passed:         graded.passed,
		CorrectAnswers: graded.correct,
		WrongAnswers:   graded.wrong,
		Unanswered:     graded.unanswered,
		TimeTaken:      a.TimeTakenSeconds,
	}, nil
}

func (s *attemptService) Results(ctx context.Context, userID, attemptID uuid.UUID) (*ResultsResponse, error) {
	a, err := s.repo.FindByID(attemptID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAttemptNotFound
	}
	if a.UserID != userID {
		return nil, ErrNotOwner
	}

	qz, err := s.quizRepo.FindByID(a.QuizID)
	if err != nil {
		return nil, err
	}

	resp := ResultsResponse{
		AttemptID:      a.ID,
		QuizID:         a.QuizID,
		Score:          a.Score,
		Percentage:     a.Percentage,
		Passed:         a.Passed,
		CorrectAnswers: a.CorrectAnswers,
		WrongAnswers:   a.WrongAnswers,
		Unanswered:     a.Unanswered,
		Status:         a.Status,
	}
	if qz != nil {
		resp.QuizTitle = qz.Title
		resp.TotalMarks = qz.TotalMarks
	}

	questions := make(map[uuid.UUID]*question.Question)
	for _, q := range quizQuestions(qz) {
		q := q
		questions[q.ID] = &q
	}

	for _, ans := range a.Answers {
		result := AnswerResult{
			QuestionID:       ans.QuestionID,
			SelectedChoiceID: ans.SelectedChoiceID,
			IsCorrect:        ans.IsCorrect,
			PointsEarned:     ans.PointsEarned,
		}
		if q, ok := questions[ans.QuestionID]; ok {
			result.QuestionText = q.Text
			result.Explanation = q.Explanation
			for i := range q.Choices {
				c := &q.Choices[i]
				if ans.SelectedChoiceID != nil && c.ID == *ans.SelectedChoiceID {
					result.SelectedText = c.Text
				}
				if c.IsCorrect {
					id := c.ID
					result.CorrectChoiceID = &id
					result.CorrectChoiceText = c.Text
				}
			}
		}
		resp.Answers = append(resp.Answers, result)
	}

	return &resp, nil
}

func (s *attemptService) ListMine(ctx context.Context, userID uuid.UUID, limit int) ([]Attempt, error) {
	return s.repo.ListByUser(userID, limit)
}

type gradeResult struct {
	answers    []AttemptAnswer
	score      int
	correct    int
	wrong      int
	unanswered int
	percentage float64
	passed     bool
}

// grade scores submitted answers against the quiz's questions. Answers
// referencing unknown questions, or choices that do not belong to the
// question, are dropped rather than counted wrong. Each question scores at
// most once: repeated answers for a question already scored are discarded,
// so a duplicated correct answer cannot inflate the total.
func grade(questions []question.Question, submitted []AnswerDTO, totalQuestions, totalMarks, passingMarks int) gradeResult {
	byID := make(map[uuid.UUID]*question.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	var result gradeResult
	scored := make(map[uuid.UUID]bool, len(submitted))
	for _, ans := range submitted {
		q, ok := byID[ans.QuestionID]
		if !ok || ans.SelectedChoiceID == nil || scored[ans.QuestionID] {
			continue
		}

		var selected *question.Choice
		for i := range q.Choices {
			if q.Choices[i].ID == *ans.SelectedChoiceID {
				selected = &q.Choices[i]
				break
			}
		}
		if selected == nil {
			continue
		}
		scored[q.ID] = true

		points := 0
		if selected.IsCorrect {
			points = q.Points
			result.correct++
			result.score += points
		} else {
			result.wrong++
		}

		result.answers = append(result.answers, AttemptAnswer{
			QuestionID:       q.ID,
			SelectedChoiceID: ans.SelectedChoiceID,
			IsCorrect:        selected.IsCorrect,
			PointsEarned:     points,
			TimeSpentSeconds: ans.TimeSpentSeconds,
		})
	}

	result.unanswered = totalQuestions - (result.correct + result.wrong)
	if result.unanswered < 0 {
		result.unanswered = 0
	}
	if totalMarks > 0 {
		result.percentage = math.Round(float64(result.score)/float64(totalMarks)*100*100) / 100
	}
	result.passed = result.score >= passingMarks
	return result
}

func quizQuestions(qz *quiz.Quiz) []question.Question {
	if qz == nil {
		return nil
	}
	out := make([]question.Question, 0, len(qz.Questions))
	for _, mapping := range qz.Questions {
		out = append(out, mapping.Question)
	}
	return out
}
