package service

import (
	"academy_backend/internal/model"
	"academy_backend/internal/repository"
	"academy_backend/pkg/logger"
	"academy_backend/pkg/monitoring"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// GradingService settles exam submissions off the request path. The submit
// route enqueues the submission ID and responds; the worker goroutine grades
// it, writes the result back, and unlocks the enrollment when a required exam
// was passed. A periodic sweep re-grades pending submissions whose enqueue
// was lost (full queue, restart). Grading is deterministic, so a duplicate
// pass produces the same result.
type GradingService struct {
	SubmissionRepo    *repository.SubmissionRepository
	ExamRepo          *repository.ExamRepository
	CourseRepo        *repository.CourseRepository
	ParticipationRepo *repository.ParticipationRepository

	queue chan string
	quit  chan struct{}
	done  chan struct{}
}

func NewGradingService(
	submissionRepo *repository.SubmissionRepository,
	examRepo *repository.ExamRepository,
	courseRepo *repository.CourseRepository,
	participationRepo *repository.ParticipationRepository,
) *GradingService {
	return &GradingService{
		SubmissionRepo:    submissionRepo,
		ExamRepo:          examRepo,
		CourseRepo:        courseRepo,
		ParticipationRepo: participationRepo,
		queue:             make(chan string, 256),
		quit:              make(chan struct{}),
		done:              make(chan struct{}),
	}
}

// Enqueue never blocks; a full queue is recovered by the pending sweep.
func (s *GradingService) Enqueue(submissionID string) {
	select {
	case s.queue <- submissionID:
	default:
		logger.Log.Warn("grading queue full, submission left for sweep",
			zap.String("submissionId", submissionID))
	}
}

func (s *GradingService) Run() {
	defer close(s.done)
	for {
		select {
		case id := <-s.queue:
			s.Grade(id)
		case <-s.quit:
			return
		}
	}
}

func (s *GradingService) Stop() {
	close(s.quit)
	<-s.done
}

// SweepPending re-enqueues pending submissions older than one minute.
func (s *GradingService) SweepPending() error {
	stale, err := s.SubmissionRepo.ListStalePending(time.Minute, 50)
	if err != nil {
		return err
	}
	for _, sub := range stale {
		s.Enqueue(sub.ID)
	}
	return nil
}

// Grade loads, scores, and persists one submission. Errors never escape: any
// failure settles the submission as failed with an explanatory feedback
// string, matching the fire-and-forget contract of the submit route.
func (s *GradingService) Grade(submissionID string) {
	submission, err := s.SubmissionRepo.FindByID(submissionID)
	if err != nil {
		logger.Log.Error("grading: submission lookup failed",
			zap.String("submissionId", submissionID), zap.Error(err))
		return
	}

	if err := s.grade(submission); err != nil {
		logger.Log.Error("grading failed",
			zap.String("submissionId", submission.ID),
			zap.String("examId", submission.ExamID),
			zap.Error(err))
		s.markFailed(submission, err)
		monitoring.GradingCounter.WithLabelValues("error").Inc()
	}
}

func (s *GradingService) grade(submission *model.ExamSubmission) error {
	exam, err := s.ExamRepo.FindByIDWithQuestions(submission.ExamID)
	if err != nil {
		return fmt.Errorf("loading exam %s: %w", submission.ExamID, err)
	}

	var answers []model.SubmissionAnswer
	if err := json.Unmarshal(submission.Answers, &answers); err != nil {
		return fmt.Errorf("parsing answers: %w", err)
	}

	result, err := GradeAnswers(exam.Questions, answers, exam.PassingScore)
	if err != nil {
		return err
	}

	gradedAnswers, err := json.Marshal(result.Answers)
	if err != nil {
		return fmt.Errorf("encoding graded answers: %w", err)
	}

	score := result.Score
	submission.Answers = gradedAnswers
	submission.Score = &score
	if result.Passed {
		submission.Status = model.SubmissionGraded
	} else {
		submission.Status = model.SubmissionFailed
	}

	if err := s.SubmissionRepo.Update(submission); err != nil {
		return fmt.Errorf("persisting grade: %w", err)
	}

	monitoring.GradingCounter.WithLabelValues(string(submission.Status)).Inc()

	logger.Log.Info("submission graded",
		zap.String("submissionId", submission.ID),
		zap.Float64("score", score),
		zap.String("status", string(submission.Status)))

	if result.Passed {
		s.unlockEnrollment(submission)
	}

	return nil
}

// unlockEnrollment flips the participation to enrolled when the passed exam
// is marked required for its course. Failures here are logged only; the
// grade itself already stands.
func (s *GradingService) unlockEnrollment(submission *model.ExamSubmission) {
	binding, err := s.CourseRepo.FindExamBinding(submission.CourseID, submission.ExamID)
	if err != nil {
		logger.Log.Warn("grading: no exam binding for course",
			zap.Uint("courseId", submission.CourseID),
			zap.String("examId", submission.ExamID), zap.Error(err))
		return
	}
	if !binding.RequiredToComplete {
		return
	}

	participation, err := s.ParticipationRepo.FindByUserAndCourse(submission.UserID, submission.CourseID)
	if err != nil {
		logger.Log.Warn("grading: participation lookup failed",
			zap.Uint("userId", submission.UserID),
			zap.Uint("courseId", submission.CourseID), zap.Error(err))
		return
	}

	participation.Status = model.ParticipationEnrolled
	participation.ExamCompleted = true
	if err := s.ParticipationRepo.Update(participation); err != nil {
		logger.Log.Error("grading: enrollment unlock failed",
			zap.Uint("participationId", participation.ID), zap.Error(err))
	}
}

func (s *GradingService) markFailed(submission *model.ExamSubmission, cause error) {
	zero := 0.0
	submission.Score = &zero
	submission.Status = model.SubmissionFailed
	submission.Feedback = "تعذر تصحيح الاختبار تلقائياً: " + cause.Error()
	if err := s.SubmissionRepo.Update(submission); err != nil {
		logger.Log.Error("grading: failed to settle submission as failed",
			zap.String("submissionId", submission.ID), zap.Error(err))
	}
}
