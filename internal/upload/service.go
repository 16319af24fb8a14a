package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/question"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/taxonomy"
	"gorm.io/gorm"
)

const (
	// MaxFileSize caps uploads at 10 MB.
	MaxFileSize = 10 << 20
	// fileContextBudget caps how much extracted text feeds the generator.
	fileContextBudget = 5000
	// minutesPerQuestion sizes the quiz timer for file-generated quizzes.
	minutesPerQuestion = 2
)

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrEmptyExtract   = errors.New("failed to extract text from file")
	ErrTypeNotAllowed = errors.New("file type not allowed")
)

var allowedExtensions = map[string]bool{
	"pdf":  true,
	"doc":  true,
	"docx": true,
	"txt":  true,
}

type GenerateFromFileDTO struct {
	TopicID      uuid.UUID `json:"topic_id"`
	NumQuestions int       `json:"num_questions"`
}

type UploadService interface {
	Store(ctx context.Context, userID uuid.UUID, header *multipart.FileHeader, file multipart.File) (*Attachment, error)
	GenerateQuiz(ctx context.Context, userID, fileID uuid.UUID, dto GenerateFromFileDTO) (*quiz.Quiz, int, float64, error)
	List(ctx context.Context, userID uuid.UUID) ([]Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type uploadService struct {
	db        *gorm.DB
	repo      AttachmentRepository
	taxonomy  taxonomy.TaxonomyService
	questions question.QuestionService
	quizRepo  quiz.QuizRepository
	generator aiquiz.Service
	uploadDir string
}

func NewService(db *gorm.DB, repo AttachmentRepository, tax taxonomy.TaxonomyService, questions question.QuestionService, quizRepo quiz.QuizRepository, gen aiquiz.Service) UploadService {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	return &uploadService{
		db:        db,
		repo:      repo,
		taxonomy:  tax,
		questions: questions,
		quizRepo:  quizRepo,
		generator: gen,
		uploadDir: dir,
	}
}

func (s *uploadService) Store(ctx context.Context, userID uuid.UUID, header *multipart.FileHeader, file multipart.File) (*Attachment, error) {
	log := config.WithContext(ctx)

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if !allowedExtensions[ext] {
		return nil, ErrTypeNotAllowed
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, err
	}

	name := filepath.Base(header.Filename)
	unique := fmt.Sprintf("%s_%s", time.Now().UTC().Format("20060102_150405"), name)
	path := filepath.Join(s.uploadDir, unique)

	dst, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	size, err := io.Copy(dst, io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		os.Remove(path)
		return nil, err
	}
	if size > MaxFileSize {
		os.Remove(path)
		return nil, fmt.Errorf("file exceeds the %d MB limit", MaxFileSize>>20)
	}

	a := Attachment{
		UserID:   userID,
		FileName: name,
		FilePath: path,
		FileType: ext,
		FileSize: size,
	}
	if err := s.repo.Create(&a); err != nil {
		os.Remove(path)
		return nil, err
	}

	log.WithField("attachment_id", a.ID.String()).
		WithField("size", size).
		Info("File uploaded")
	return &a, nil
}

func (s *uploadService) GenerateQuiz(ctx context.Context, userID, fileID uuid.UUID, dto GenerateFromFileDTO) (*quiz.Quiz, int, float64, error) {
	log := config.WithContext(ctx)

	a, err := s.repo.FindByID(fileID)
	if err != nil {
		return nil, 0, 0, err
	}
	if a == nil {
		return nil, 0, 0, ErrFileNotFound
	}

	count := dto.NumQuestions
	if count < 1 {
		count = 10
	}
	if count > 50 {
		return nil, 0, 0, errors.New("num_questions must be between 1 and 50")
	}

	topic, err := s.taxonomy.ResolveTopic(ctx, dto.TopicID)
	if err != nil {
		return nil, 0, 0, err
	}

	text, err := ExtractText(a.FilePath, a.FileType)
	if err != nil || text == "" {
		log.WithError(err).Warn("Text extraction failed")
		return nil, 0, 0, ErrEmptyExtract
	}
	text = aiquiz.Truncate(text, fileContextBudget)

	candidates, confidence, err := s.generator.Generate(ctx, aiquiz.GenerateRequest{
		Topic:        "Content from " + a.FileName,
		Count:        count,
		Difficulty:   string(question.DifficultyMedium),
		QuestionType: string(question.TypeMultipleChoice),
		Context:      text,
	})
	if err != nil {
		return nil, 0, 0, err
	}

	var created *quiz.Quiz
	var stored []question.Question
	err = s.db.Transaction(func(tx *gorm.DB) error {
		stored, err = s.questions.PersistCandidates(ctx, tx, topic.ID, question.DifficultyMedium, question.SourceFileUpload, candidates, confidence)
		if err != nil {
			return err
		}
		if len(stored) == 0 {
			return aiquiz.ErrUnavailable
		}

		totalMarks := 0
		for _, q := range stored {
			totalMarks += q.Points
		}

		created = &quiz.Quiz{
			Title:            "Quiz from " + a.FileName,
			Description:      fmt.Sprintf("AI-generated quiz with %d questions", len(stored)),
			CreatedBy:        userID,
			TotalMarks:       totalMarks,
			PassingMarks:     totalMarks * 40 / 100,
			TimeLimitMinutes: len(stored) * minutesPerQuestion,
			Difficulty:       question.DifficultyMedium,
			Published:        true,
			Public:           false,
			TimerOption:      quiz.TimerWhole,
		}

		repo := s.quizRepo.WithTx(tx)
		if err := repo.Create(created); err != nil {
			return err
		}

		mappings := make([]quiz.QuizQuestion, 0, len(stored))
		for i, q := range stored {
			mappings = append(mappings, quiz.QuizQuestion{
				QuizID:     created.ID,
				QuestionID: q.ID,
				Order:      i + 1,
			})
		}
		return repo.AddMappings(mappings)
	})
	if err != nil {
		return nil, 0, 0, err
	}

	log.WithField("quiz_id", created.ID.String()).
		WithField("questions", len(stored)).
		Info("Quiz generated from file")
	return created, len(stored), confidence, nil
}

func (s *uploadService) List(ctx context.Context, userID uuid.UUID) ([]Attachment, error) {
	return s.repo.ListByUser(userID)
}

func (s *uploadService) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	a, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrFileNotFound
	}

	if err := os.Remove(a.FilePath); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Failed to remove file from disk")
	}
	return s.repo.Delete(id)
}
