package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/question"
	"github.com/quizforge/quizforge/internal/taxonomy"
	"github.com/quizforge/quizforge/internal/user"
	"gorm.io/gorm"
)

// passingRatePercent fixes the pass bar at 40% of total marks.
const (
	passingRatePercent   = 40
	defaultQuestionCount = 10
	defaultTimeLimit     = 30
	maxQuestionCount     = 50
)

var (
	ErrQuizNotFound = errors.New("quiz not found")
	ErrNotOwner     = errors.New("quiz belongs to another user")
)

type QuizService interface {
	// Generate assembles a quiz from verified bank questions, backfilling
	// the shortfall through AI generation when allowed.
	Generate(ctx context.Context, userID uuid.UUID, dto GenerateQuizDTO) (*PresentedQuiz, error)
	Get(ctx context.Context, id uuid.UUID) (*PresentedQuiz, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]QuizSummary, error)
	ListPublic(ctx context.Context) ([]QuizSummary, error)
	Delete(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID) error
}

type quizService struct {
	db           *gorm.DB
	repo         QuizRepository
	questionRepo question.QuestionRepository
	questions    question.QuestionService
	taxonomy     taxonomy.TaxonomyService
	generator    aiquiz.Service
}

func NewService(db *gorm.DB, repo QuizRepository, qRepo question.QuestionRepository, qService question.QuestionService, tax taxonomy.TaxonomyService, gen aiquiz.Service) QuizService {
	return &quizService{
		db:           db,
		repo:         repo,
		questionRepo: qRepo,
		questions:    qService,
		taxonomy:     tax,
		generator:    gen,
	}
}

func (s *quizService) Generate(ctx context.Context, userID uuid.UUID, dto GenerateQuizDTO) (*PresentedQuiz, error) {
	log := config.WithContext(ctx)

	scopeID := dto.TopicID
	if scopeID == uuid.Nil {
		scopeID = dto.SubcategoryID
	}
	if scopeID == uuid.Nil {
		return nil, errors.New("topic_id or subcategory_id is required")
	}

	topic, err := s.taxonomy.ResolveTopic(ctx, scopeID)
	if err != nil {
		return nil, err
	}

	difficulty := question.ParseDifficulty(dto.Difficulty)
	count := dto.NumQuestions
	if count <= 0 {
		count = defaultQuestionCount
	}
	if count > maxQuestionCount {
		return nil, fmt.Errorf("num_questions cannot exceed %d", maxQuestionCount)
	}

	pool, err := s.questionRepo.FindVerifiedByTopic(topic.ID, difficulty)
	if err != nil {
		return nil, err
	}

	// The LLM round-trip happens before the transaction opens so a slow
	// provider never holds database locks.
	var candidates []aiquiz.Candidate
	var confidence float64
	if shortfall := count - len(pool); shortfall > 0 && dto.UseAI {
		candidates, confidence, err = s.generator.Generate(ctx, aiquiz.GenerateRequest{
			Topic:        topic.Name,
			Count:        shortfall,
			Difficulty:   string(difficulty),
			QuestionType: string(question.TypeMultipleChoice),
		})
		if err != nil {
			log.WithError(err).Error("AI backfill failed")
			return nil, err
		}
	}

	var created *Quiz
	err = s.db.Transaction(func(tx *gorm.DB) error {
		available := pool
		if len(candidates) > 0 {
			stored, err := s.questions.PersistCandidates(ctx, tx, topic.ID, difficulty, question.SourceAIGenerated, candidates, confidence)
			if err != nil {
				return err
			}
			available = append(available, stored...)
		}

		quiz, selected, err := assembleQuiz(userID, topic.Name, difficulty, dto, available, count)
		if err != nil {
			return err
		}
		created = quiz

		repo := s.repo.WithTx(tx)
		if err := repo.Create(created); err != nil {
			return err
		}

		mappings := make([]QuizQuestion, 0, len(selected))
		for i, q := range selected {
			mappings = append(mappings, QuizQuestion{
				QuizID:     created.ID,
				QuestionID: q.ID,
				Order:      i + 1,
			})
		}
		return repo.AddMappings(mappings)
	})
	if err != nil {
		return nil, err
	}

	log.WithField("quiz_id", created.ID.String()).
		WithField("questions", count).
		Info("Quiz assembled")

	full, err := s.repo.FindByID(created.ID)
	if err != nil {
		return nil, err
	}
	return Present(full), nil
}

func (s *quizService) Get(ctx context.Context, id uuid.UUID) (*PresentedQuiz, error) {
	q, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}
	return Present(q), nil
}

func (s *quizService) ListMine(ctx context.Context, userID uuid.UUID) ([]QuizSummary, error) {
	quizzes, err := s.repo.ListByCreator(userID)
	if err != nil {
		return nil, err
	}
	return toSummaries(quizzes), nil
}

func (s *quizService) ListPublic(ctx context.Context) ([]QuizSummary, error) {
	quizzes, err := s.repo.ListPublic()
	if err != nil {
		return nil, err
	}
	return toSummaries(quizzes), nil
}

func (s *quizService) Delete(ctx context.Context, userID uuid.UUID, role string, id uuid.UUID) error {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if q == nil {
		return ErrQuizNotFound
	}
	if q.CreatedBy != userID && role != user.RoleAdmin {
		return ErrNotOwner
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}
	log.WithField("quiz_id", id.String()).Info("Quiz deleted")
	return nil
}

// assembleQuiz samples the question set and computes the marks for a new
// quiz. It fails with InsufficientQuestionsError when the pool is smaller
// than the requested count.
func assembleQuiz(userID uuid.UUID, topicName string, difficulty question.Difficulty, dto GenerateQuizDTO, available []question.Question, count int) (*Quiz, []question.Question, error) {
	if len(available) < count {
		return nil, nil, &InsufficientQuestionsError{Found: len(available), Requested: count}
	}

	selected := sampleQuestions(available, count)

	totalMarks := 0
	for _, q := range selected {
		totalMarks += q.Points
	}

	timerOption := dto.TimerOption
	if timerOption != TimerWhole && timerOption != TimerEach {
		timerOption = TimerWhole
	}
	timeLimit := dto.TimeLimit
	if timeLimit <= 0 {
		timeLimit = defaultTimeLimit
	}

	quiz := &Quiz{
		Title:            topicName + " Quiz",
		Description:      fmt.Sprintf("Quiz on %s - %s difficulty", topicName, difficulty),
		CreatedBy:        userID,
		TotalMarks:       totalMarks,
		PassingMarks:     totalMarks * passingRatePercent / 100,
		TimeLimitMinutes: timeLimit,
		Difficulty:       difficulty,
		Published:        true,
		Public:           true,
		ShuffleQuestions: true,
		ShuffleChoices:   true,
		TimerOption:      timerOption,
		PerQuestionTime:  dto.PerQuestionTime,
		Instructions:     dto.Instructions,
	}
	return quiz, selected, nil
}

// sampleQuestions draws n questions uniformly without replacement.
func sampleQuestions(pool []question.Question, n int) []question.Question {
	shuffled := make([]question.Question, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

func toSummaries(quizzes []Quiz) []QuizSummary {
	out := make([]QuizSummary, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, QuizSummary{
			ID:            q.ID,
			Title:         q.Title,
			Description:   q.Description,
			TotalMarks:    q.TotalMarks,
			PassingMarks:  q.PassingMarks,
			Difficulty:    string(q.Difficulty),
			QuestionCount: len(q.Questions),
			CreatedBy:     q.CreatedBy,
		})
	}
	return out
}
