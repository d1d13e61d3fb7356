package service

import (
	"academy_backend/internal/model"
	"academy_backend/internal/repository"
	"academy_backend/internal/util"
	"encoding/json"
)

// SubmissionService owns the client-facing attempt lifecycle: creating the
// pending submission and handing it to the grading worker.
type SubmissionService struct {
	Repo     *repository.SubmissionRepository
	ExamRepo *repository.ExamRepository
	Grading  *GradingService
}

func NewSubmissionService(repo *repository.SubmissionRepository, examRepo *repository.ExamRepository, grading *GradingService) *SubmissionService {
	return &SubmissionService{Repo: repo, ExamRepo: examRepo, Grading: grading}
}

type SubmitExamRequest struct {
	Course  uint                     `json:"course" binding:"required"`
	Exam    string                   `json:"exam" binding:"required"`
	Answers []model.SubmissionAnswer `json:"answers" binding:"required"`
	// Client is accepted in the payload but always overwritten with the
	// authenticated caller's ID.
	Client    uint `json:"client"`
	TimeSpent int  `json:"timeSpent"`
}

// Submit creates a pending submission for the authenticated user and enqueues
// grading. Client-supplied grading fields (isCorrect, pointsEarned) are
// cleared before persisting.
func (s *SubmissionService) Submit(userID uint, req SubmitExamRequest) (*model.ExamSubmission, error) {
	exam, err := s.ExamRepo.FindByID(req.Exam)
	if err != nil {
		return nil, util.ErrExamNotFound
	}
	if exam.Status != model.ExamPublished {
		return nil, util.ErrExamNotPublished
	}

	attempts, err := s.Repo.CountAttempts(userID, req.Exam)
	if err != nil {
		return nil, err
	}
	if err := checkAttemptLimit(exam, attempts); err != nil {
		return nil, err
	}

	answers := make([]model.SubmissionAnswer, len(req.Answers))
	for i, a := range req.Answers {
		a.IsCorrect = false
		a.PointsEarned = 0
		answers[i] = a
	}
	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	submission := &model.ExamSubmission{
		UserID:    userID,
		CourseID:  req.Course,
		ExamID:    req.Exam,
		Answers:   raw,
		Status:    model.SubmissionPending,
		TimeSpent: req.TimeSpent,
		Attempt:   int(attempts) + 1,
	}

	if err := s.Repo.Create(submission); err != nil {
		return nil, err
	}

	s.Grading.Enqueue(submission.ID)

	return submission, nil
}

// checkAttemptLimit gates a new submission by the exam's retake policy.
// maxAttempts of zero means unlimited once retakes are allowed.
func checkAttemptLimit(exam *model.Exam, priorAttempts int64) error {
	if priorAttempts == 0 {
		return nil
	}
	if !exam.AllowRetakes {
		return util.ErrRetakesNotAllowed
	}
	if exam.MaxAttempts > 0 && priorAttempts >= int64(exam.MaxAttempts) {
		return util.ErrMaxAttemptsReached
	}
	return nil
}

func (s *SubmissionService) GetSubmission(id string) (*model.ExamSubmission, error) {
	return s.Repo.FindByIDWithUser(id)
}

func (s *SubmissionService) ListForUser(userID uint, courseID uint) ([]model.ExamSubmission, error) {
	return s.Repo.ListByUser(userID, courseID)
}

func (s *SubmissionService) ListForExam(examID string, page, limit int, status string) ([]model.ExamSubmission, int64, error) {
	return s.Repo.ListByExam(examID, page, limit, status)
}
