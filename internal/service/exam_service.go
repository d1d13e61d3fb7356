package service

import (
	"academy_backend/internal/model"
	"academy_backend/internal/repository"
	"academy_backend/internal/util"
	"encoding/json"
	"errors"
	"fmt"
)

type ExamService struct {
	Repo       *repository.ExamRepository
	CourseRepo *repository.CourseRepository
}

func NewExamService(repo *repository.ExamRepository, courseRepo *repository.CourseRepository) *ExamService {
	return &ExamService{Repo: repo, CourseRepo: courseRepo}
}

type ExamQuestionReq struct {
	ID                string               `json:"id"`
	QuestionType      model.QuestionType   `json:"questionType" binding:"required"`
	Content           string               `json:"content" binding:"required"`
	Options           []model.ChoiceOption `json:"options"`
	Statements        []model.Statement    `json:"statements"`
	CorrectAnswer     string               `json:"correctAnswer"`
	CaseSensitive     bool                 `json:"caseSensitive"`
	AllowPartialMatch bool                 `json:"allowPartialMatch"`
	Points            float64              `json:"points"`
	Explanation       string               `json:"explanation"`
	Order             int                  `json:"order"`
}

type ExamReq struct {
	CourseID           *uint              `json:"courseId"`
	Title              *string            `json:"title"`
	Description        *string            `json:"description"`
	TimeLimit          *int               `json:"timeLimit"`
	PassingScore       *float64           `json:"passingScore"`
	AllowRetakes       *bool              `json:"allowRetakes"`
	MaxAttempts        *int               `json:"maxAttempts"`
	RequiredToComplete *bool              `json:"requiredToComplete"`
	Questions          *[]ExamQuestionReq `json:"questions"`
}

func validateQuestion(req *ExamQuestionReq) error {
	if req.Points < 0 {
		return errors.New("points must not be negative")
	}

	switch req.QuestionType {
	case model.MultipleChoice:
		if len(req.Options) == 0 {
			return errors.New("multiple-choice question needs options")
		}
		hasCorrect := false
		for _, opt := range req.Options {
			if opt.IsCorrect {
				hasCorrect = true
				break
			}
		}
		if !hasCorrect {
			return errors.New("multiple-choice question needs at least one correct option")
		}
	case model.TrueFalse:
		if len(req.Statements) == 0 {
			return errors.New("true-false question needs statements")
		}
	case model.ShortAnswer:
		if req.CorrectAnswer == "" {
			return errors.New("short-answer question needs a correct answer")
		}
	default:
		return fmt.Errorf("unknown question type %q", req.QuestionType)
	}
	return nil
}

func questionFromReq(examID string, req *ExamQuestionReq) (*model.ExamQuestion, error) {
	q := &model.ExamQuestion{
		ExamID:            examID,
		QuestionType:      req.QuestionType,
		Content:           req.Content,
		CorrectAnswer:     req.CorrectAnswer,
		CaseSensitive:     req.CaseSensitive,
		AllowPartialMatch: req.AllowPartialMatch,
		Points:            req.Points,
		Explanation:       req.Explanation,
		Order:             req.Order,
	}

	if len(req.Options) > 0 {
		raw, err := json.Marshal(req.Options)
		if err != nil {
			return nil, err
		}
		q.Options = raw
	}
	if len(req.Statements) > 0 {
		raw, err := json.Marshal(req.Statements)
		if err != nil {
			return nil, err
		}
		q.Statements = raw
	}

	return q, nil
}

func (s *ExamService) CreateExam(creatorID uint, req ExamReq) (*model.Exam, error) {
	if req.Title == nil || *req.Title == "" {
		return nil, errors.New("title is required")
	}
	if req.CourseID == nil {
		return nil, errors.New("courseId is required")
	}
	if _, err := s.CourseRepo.FindByID(*req.CourseID); err != nil {
		return nil, util.ErrCourseNotFound
	}

	exam := &model.Exam{
		CourseID:  *req.CourseID,
		Title:     *req.Title,
		CreatorID: creatorID,
		Status:    model.ExamDraft,
	}
	if req.Description != nil {
		exam.Description = *req.Description
	}
	if req.TimeLimit != nil {
		exam.TimeLimit = *req.TimeLimit
	}
	if req.PassingScore != nil {
		exam.PassingScore = *req.PassingScore
	}
	if req.AllowRetakes != nil {
		exam.AllowRetakes = *req.AllowRetakes
	}
	if req.MaxAttempts != nil {
		exam.MaxAttempts = *req.MaxAttempts
	}

	if req.Questions != nil {
		for i := range *req.Questions {
			if err := validateQuestion(&(*req.Questions)[i]); err != nil {
				return nil, err
			}
		}
	}

	if err := s.Repo.Create(exam); err != nil {
		return nil, err
	}

	if req.Questions != nil {
		for i := range *req.Questions {
			q, err := questionFromReq(exam.ID, &(*req.Questions)[i])
			if err != nil {
				return nil, err
			}
			if err := s.Repo.CreateQuestion(q); err != nil {
				return nil, err
			}
		}
	}

	required := false
	if req.RequiredToComplete != nil {
		required = *req.RequiredToComplete
	}
	if err := s.CourseRepo.UpsertExamBinding(&model.CourseExam{
		CourseID:           exam.CourseID,
		ExamID:             exam.ID,
		RequiredToComplete: required,
	}); err != nil {
		return nil, err
	}

	return exam, nil
}

func (s *ExamService) UpdateExam(examID string, req ExamReq) (*model.Exam, error) {
	exam, err := s.Repo.FindByID(examID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		exam.Title = *req.Title
	}
	if req.Description != nil {
		exam.Description = *req.Description
	}
	if req.TimeLimit != nil {
		exam.TimeLimit = *req.TimeLimit
	}
	if req.PassingScore != nil {
		exam.PassingScore = *req.PassingScore
	}
	if req.AllowRetakes != nil {
		exam.AllowRetakes = *req.AllowRetakes
	}
	if req.MaxAttempts != nil {
		exam.MaxAttempts = *req.MaxAttempts
	}

	if err := s.Repo.Update(exam); err != nil {
		return nil, err
	}

	if req.RequiredToComplete != nil {
		if err := s.CourseRepo.UpsertExamBinding(&model.CourseExam{
			CourseID:           exam.CourseID,
			ExamID:             exam.ID,
			RequiredToComplete: *req.RequiredToComplete,
		}); err != nil {
			return nil, err
		}
	}

	if req.Questions != nil {
		for i := range *req.Questions {
			if err := validateQuestion(&(*req.Questions)[i]); err != nil {
				return nil, err
			}
		}

		existingQs, _ := s.Repo.ListQuestions(examID)
		existingMap := make(map[string]*model.ExamQuestion)
		for i := range existingQs {
			existingMap[existingQs[i].ID] = &existingQs[i]
		}

		keptIDs := make(map[string]bool)
		for i := range *req.Questions {
			qReq := &(*req.Questions)[i]
			if qReq.ID != "" {
				if q, ok := existingMap[qReq.ID]; ok {
					updated, err := questionFromReq(examID, qReq)
					if err != nil {
						return nil, err
					}
					updated.UUIDBase = q.UUIDBase
					if err := s.Repo.UpdateQuestion(updated); err != nil {
						return nil, err
					}
					keptIDs[q.ID] = true
					continue
				}
			}
			q, err := questionFromReq(examID, qReq)
			if err != nil {
				return nil, err
			}
			if err := s.Repo.CreateQuestion(q); err != nil {
				return nil, err
			}
		}

		for id := range existingMap {
			if !keptIDs[id] {
				s.Repo.DeleteQuestion(id)
			}
		}
	}

	return exam, nil
}

func (s *ExamService) DeleteExam(examID string) error {
	return s.Repo.Delete(examID)
}

func (s *ExamService) GetExam(examID string) (*model.Exam, error) {
	return s.Repo.FindByIDWithQuestions(examID)
}

func (s *ExamService) ListByCreator(creatorID uint, page, limit int) ([]model.Exam, int64, error) {
	return s.Repo.ListByCreator(creatorID, page, limit)
}

func (s *ExamService) Publish(examID string) (*model.Exam, error) {
	return s.transition(examID, model.ExamDraft, model.ExamPublished)
}

func (s *ExamService) Archive(examID string) (*model.Exam, error) {
	return s.transition(examID, model.ExamPublished, model.ExamArchived)
}

func (s *ExamService) transition(examID string, from, to model.ExamStatus) (*model.Exam, error) {
	exam, err := s.Repo.FindByID(examID)
	if err != nil {
		return nil, err
	}
	if exam.Status != from {
		return nil, fmt.Errorf("exam is %s, cannot move to %s", exam.Status, to)
	}
	exam.Status = to
	if err := s.Repo.Update(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

// StudentQuestion strips every grading secret from a question before it goes
// to the exam-taking client.
type StudentQuestion struct {
	Index        int                `json:"index"`
	QuestionType model.QuestionType `json:"questionType"`
	Content      string             `json:"content"`
	Options      []string           `json:"options,omitempty"`
	Statements   []string           `json:"statements,omitempty"`
	Points       float64            `json:"points"`
}

type StudentExamView struct {
	ID           string            `json:"id"`
	CourseID     uint              `json:"courseId"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	TimeLimit    int               `json:"timeLimit"`
	PassingScore float64           `json:"passingScore"`
	AllowRetakes bool              `json:"allowRetakes"`
	MaxAttempts  int               `json:"maxAttempts"`
	Questions    []StudentQuestion `json:"questions"`
}

// GetStudentView returns a published exam without correct answers. Drafts and
// archived exams are invisible to students.
func (s *ExamService) GetStudentView(examID string) (*StudentExamView, error) {
	exam, err := s.Repo.FindByIDWithQuestions(examID)
	if err != nil {
		return nil, util.ErrExamNotFound
	}
	if exam.Status != model.ExamPublished {
		return nil, util.ErrExamNotPublished
	}

	view := &StudentExamView{
		ID:           exam.ID,
		CourseID:     exam.CourseID,
		Title:        exam.Title,
		Description:  exam.Description,
		TimeLimit:    exam.TimeLimit,
		PassingScore: exam.PassingScore,
		AllowRetakes: exam.AllowRetakes,
		MaxAttempts:  exam.MaxAttempts,
		Questions:    make([]StudentQuestion, len(exam.Questions)),
	}

	for i, q := range exam.Questions {
		sq := StudentQuestion{
			Index:        i,
			QuestionType: q.QuestionType,
			Content:      q.Content,
			Points:       q.Points,
		}
		switch q.QuestionType {
		case model.MultipleChoice:
			var opts []model.ChoiceOption
			if err := json.Unmarshal(q.Options, &opts); err == nil {
				for _, opt := range opts {
					sq.Options = append(sq.Options, opt.Text)
				}
			}
		case model.TrueFalse:
			var stmts []model.Statement
			if err := json.Unmarshal(q.Statements, &stmts); err == nil {
				for _, stmt := range stmts {
					sq.Statements = append(sq.Statements, stmt.Text)
				}
			}
		}
		view.Questions[i] = sq
	}

	return view, nil
}
