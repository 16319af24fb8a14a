package question

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/moderation"
	"github.com/quizforge/quizforge/internal/taxonomy"
	"gorm.io/gorm"
)

// autoVerifyThreshold: AI questions above this confidence skip manual
// review.
const autoVerifyThreshold = 0.7

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrQuestionInUse    = errors.New("question is referenced by attempt answers")
	ErrGenerationFailed = errors.New("question generation failed")
)

// ContentRejectedError carries the moderation verdict so callers can tell
// the author what to fix.
type ContentRejectedError struct {
	Result moderation.Result
}

func (e *ContentRejectedError) Error() string {
	var reasons []string
	if e.Result.HasProfanity {
		reasons = append(reasons, "profanity detected")
	}
	if e.Result.HasPII {
		reasons = append(reasons, fmt.Sprintf("personal information detected (%s)", strings.Join(e.Result.PIITypes, ", ")))
	}
	return "content rejected: " + strings.Join(reasons, "; ")
}

type QuestionService interface {
	Create(ctx context.Context, dto CreateQuestionDTO) (*Question, error)
	Get(ctx context.Context, id uuid.UUID) (*Question, error)
	List(ctx context.Context, filter ListFilter) (*ListResponse, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateQuestionDTO) (*Question, error)
	Verify(ctx context.Context, id uuid.UUID) (*Question, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Generate asks the LLM for questions and stores the results in the
	// bank with source AI_GENERATED.
	Generate(ctx context.Context, dto GenerateQuestionsDTO) ([]Question, float64, error)

	// PersistCandidates converts model output into bank rows inside tx. It
	// is the shared choke point for AI-sourced persistence, used by quiz
	// assembly backfill as well.
	PersistCandidates(ctx context.Context, tx *gorm.DB, topicID uuid.UUID, difficulty Difficulty, source Source, candidates []aiquiz.Candidate, overall float64) ([]Question, error)
}

type questionService struct {
	db        *gorm.DB
	repo      QuestionRepository
	taxonomy  taxonomy.TaxonomyService
	moderator *moderation.Moderator
	generator aiquiz.Service
}

func NewService(db *gorm.DB, repo QuestionRepository, tax taxonomy.TaxonomyService, mod *moderation.Moderator, gen aiquiz.Service) QuestionService {
	return &questionService{
		db:        db,
		repo:      repo,
		taxonomy:  tax,
		moderator: mod,
		generator: gen,
	}
}

func (s *questionService) Create(ctx context.Context, dto CreateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	if !dto.Type.IsValid() {
		return nil, fmt.Errorf("invalid question type %q", dto.Type)
	}
	if !dto.Difficulty.IsValid() || dto.Difficulty == DifficultyMixed {
		return nil, fmt.Errorf("invalid question difficulty %q", dto.Difficulty)
	}
	if strings.TrimSpace(dto.Text) == "" {
		return nil, errors.New("question text is required")
	}

	topic, err := s.taxonomy.ResolveTopic(ctx, dto.TopicID)
	if err != nil {
		return nil, err
	}

	choices, err := buildChoices(dto.Type, dto.Choices, dto.CorrectAnswer)
	if err != nil {
		return nil, err
	}

	points := dto.Points
	if points <= 0 {
		points = 1
	}

	q := Question{
		TopicID:     topic.ID,
		Text:        dto.Text,
		Type:        dto.Type,
		Difficulty:  dto.Difficulty,
		Points:      points,
		Explanation: dto.Explanation,
		Source:      SourceManual,
		Verified:    true,
		Choices:     choices,
	}
	if err := s.persistQuestion(s.repo, &q); err != nil {
		return nil, err
	}

	log.WithField("question_id", q.ID.String()).Info("Question created")
	return &q, nil
}

func (s *questionService) Get(ctx context.Context, id uuid.UUID) (*Question, error) {
	q, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	return q, nil
}

func (s *questionService) List(ctx context.Context, filter ListFilter) (*ListResponse, error) {
	questions, total, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return &ListResponse{
		Questions: questions,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

func (s *questionService) Update(ctx context.Context, id uuid.UUID, dto UpdateQuestionDTO) (*Question, error) {
	q, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	if dto.Text != nil {
		if strings.TrimSpace(*dto.Text) == "" {
			return nil, errors.New("question text cannot be empty")
		}
		q.Text = *dto.Text
	}
	if dto.Difficulty != nil {
		if !dto.Difficulty.IsValid() || *dto.Difficulty == DifficultyMixed {
			return nil, fmt.Errorf("invalid question difficulty %q", *dto.Difficulty)
		}
		q.Difficulty = *dto.Difficulty
	}
	if dto.Points != nil {
		if *dto.Points <= 0 {
			return nil, errors.New("points must be positive")
		}
		q.Points = *dto.Points
	}
	if dto.Explanation != nil {
		q.Explanation = *dto.Explanation
	}

	var newChoices []Choice
	if dto.Choices != nil {
		newChoices, err = buildChoices(q.Type, dto.Choices, "")
		if err != nil {
			return nil, err
		}
		for i := range newChoices {
			newChoices[i].QuestionID = q.ID
		}
		q.Choices = newChoices
	}

	if err := s.moderate(q); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Update(q); err != nil {
			return err
		}
		if newChoices != nil {
			return repo.ReplaceChoices(q.ID, newChoices)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *questionService) Verify(ctx context.Context, id uuid.UUID) (*Question, error) {
	q, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	if q.Verified {
		return q, nil
	}

	q.Verified = true
	if err := s.repo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *questionService) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if q == nil {
		return ErrQuestionNotFound
	}

	// Questions answered in an attempt stay, so past results remain
	// explainable.
	referenced, err := s.repo.ReferencedByAttempt(id)
	if err != nil {
		return err
	}
	if referenced {
		return ErrQuestionInUse
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}
	log.WithField("question_id", id.String()).Info("Question deleted")
	return nil
}

func (s *questionService) Generate(ctx context.Context, dto GenerateQuestionsDTO) ([]Question, float64, error) {
	log := config.WithContext(ctx)

	topic, err := s.taxonomy.ResolveTopic(ctx, dto.TopicID)
	if err != nil {
		return nil, 0, err
	}

	questionType := dto.QuestionType
	if questionType == "" {
		questionType = TypeMultipleChoice
	}
	if !questionType.IsValid() {
		return nil, 0, fmt.Errorf("invalid question type %q", questionType)
	}
	difficulty := ParseDifficulty(dto.Difficulty)

	candidates, confidence, err := s.generator.Generate(ctx, aiquiz.GenerateRequest{
		Topic:        topic.Name,
		Count:        dto.Count,
		Difficulty:   string(difficulty),
		QuestionType: string(questionType),
		Context:      dto.Context,
	})
	if err != nil {
		return nil, 0, err
	}

	var stored []Question
	err = s.db.Transaction(func(tx *gorm.DB) error {
		stored, err = s.PersistCandidates(ctx, tx, topic.ID, difficulty, SourceAIGenerated, candidates, confidence)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	log.WithField("topic_id", topic.ID.String()).
		WithField("stored", len(stored)).
		Info("AI questions stored")
	return stored, confidence, nil
}

func (s *questionService) PersistCandidates(ctx context.Context, tx *gorm.DB, topicID uuid.UUID, difficulty Difficulty, source Source, candidates []aiquiz.Candidate, overall float64) ([]Question, error) {
	log := config.WithContext(ctx)
	repo := s.repo.WithTx(tx)

	stored := make([]Question, 0, len(candidates))
	for _, c := range candidates {
		q, err := candidateToQuestion(c, topicID, difficulty, source, overall)
		if err != nil {
			log.WithError(err).Warn("Skipping malformed candidate")
			continue
		}
		if err := s.persistQuestion(repo, q); err != nil {
			var rejected *ContentRejectedError
			if errors.As(err, &rejected) {
				log.WithField("reason", rejected.Error()).Warn("Skipping rejected candidate")
				continue
			}
			return nil, err
		}
		stored = append(stored, *q)
	}
	return stored, nil
}

// persistQuestion is the single write path for new questions; every text
// field passes moderation here regardless of entry point.
func (s *questionService) persistQuestion(repo QuestionRepository, q *Question) error {
	if err := s.moderate(q); err != nil {
		return err
	}
	if err := validateChoiceInvariant(q.Type, q.Choices); err != nil {
		return err
	}
	return repo.Create(q)
}

func (s *questionService) moderate(q *Question) error {
	texts := []string{q.Text, q.Explanation}
	for _, c := range q.Choices {
		texts = append(texts, c.Text)
	}
	for _, text := range texts {
		if text == "" {
			continue
		}
		if result := s.moderator.Check(text); !result.IsSafe {
			return &ContentRejectedError{Result: result}
		}
	}
	return nil
}

func candidateToQuestion(c aiquiz.Candidate, topicID uuid.UUID, difficulty Difficulty, source Source, overall float64) (*Question, error) {
	if strings.TrimSpace(c.QuestionText) == "" {
		return nil, errors.New("candidate has no question text")
	}

	confidence := overall
	if c.Confidence != nil {
		confidence = *c.Confidence
	}

	questionType := TypeMultipleChoice
	var choices []Choice
	switch {
	case len(c.Choices) > 0:
		if len(c.Choices) == 2 && isTrueFalse(c.Choices) {
			questionType = TypeTrueFalse
		}
		for _, cc := range c.Choices {
			choices = append(choices, Choice{Text: cc.Text, IsCorrect: cc.IsCorrect})
		}
	case c.CorrectAnswer != "":
		questionType = TypeFillBlank
		choices = []Choice{{Text: c.CorrectAnswer, IsCorrect: true}}
	default:
		return nil, errors.New("candidate has neither choices nor a correct answer")
	}

	if err := validateChoiceInvariant(questionType, choices); err != nil {
		return nil, err
	}

	conf := confidence
	return &Question{
		TopicID:     topicID,
		Text:        c.QuestionText,
		Type:        questionType,
		Difficulty:  difficulty,
		Points:      1,
		Explanation: c.Explanation,
		Source:      source,
		Confidence:  &conf,
		Verified:    confidence > autoVerifyThreshold,
		Choices:     choices,
	}, nil
}

func isTrueFalse(choices []aiquiz.CandidateChoice) bool {
	for _, c := range choices {
		t := strings.ToLower(strings.TrimSpace(c.Text))
		if t != "true" && t != "false" {
			return false
		}
	}
	return true
}

func buildChoices(questionType QuestionType, dtos []ChoiceDTO, correctAnswer string) ([]Choice, error) {
	if questionType == TypeFillBlank {
		if strings.TrimSpace(correctAnswer) == "" {
			return nil, errors.New("correct_answer is required for fill-in-the-blank questions")
		}
		return []Choice{{Text: correctAnswer, IsCorrect: true}}, nil
	}

	choices := make([]Choice, 0, len(dtos))
	for _, dto := range dtos {
		if strings.TrimSpace(dto.Text) == "" {
			return nil, errors.New("choice text cannot be empty")
		}
		choices = append(choices, Choice{Text: dto.Text, IsCorrect: dto.IsCorrect})
	}

	if err := validateChoiceInvariant(questionType, choices); err != nil {
		return nil, err
	}
	return choices, nil
}

// validateChoiceInvariant enforces exactly one correct choice for
// choice-based types.
func validateChoiceInvariant(questionType QuestionType, choices []Choice) error {
	if !questionType.HasChoices() {
		return nil
	}

	min := 2
	if len(choices) < min {
		return fmt.Errorf("%s questions need at least %d choices", questionType, min)
	}
	if questionType == TypeTrueFalse && len(choices) != 2 {
		return errors.New("true/false questions need exactly 2 choices")
	}

	correct := 0
	for _, c := range choices {
		if c.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("expected exactly 1 correct choice, got %d", correct)
	}
	return nil
}
