package service

import (
	"academy_backend/internal/model"
	"academy_backend/internal/repository"
	"academy_backend/internal/util"
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const enrollmentCacheTTL = 5 * time.Minute

type EnrollmentService struct {
	Repo       *repository.ParticipationRepository
	CourseRepo *repository.CourseRepository
	Redis      *redis.Client
}

func NewEnrollmentService(repo *repository.ParticipationRepository, courseRepo *repository.CourseRepository, rdb *redis.Client) *EnrollmentService {
	return &EnrollmentService{Repo: repo, CourseRepo: courseRepo, Redis: rdb}
}

func enrollmentCacheKey(userID, courseID uint) string {
	return fmt.Sprintf("enrollment:%d:%d", userID, courseID)
}

// Enroll creates a participation. Paid courses start pending until payment
// settles; free courses enroll immediately.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID uint) (*model.Participation, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}

	if _, err := s.Repo.FindByUserAndCourse(userID, courseID); err == nil {
		return nil, util.ErrAlreadyEnrolled
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	status := model.ParticipationEnrolled
	if course.IsPaid == model.CoursePaid {
		status = model.ParticipationPending
	}

	participation := &model.Participation{
		UserID:   userID,
		CourseID: courseID,
		Status:   status,
	}
	if err := s.Repo.Create(participation); err != nil {
		return nil, err
	}

	s.Redis.Set(ctx, enrollmentCacheKey(userID, courseID), string(status), enrollmentCacheTTL)

	return participation, nil
}

// Status returns "not-enrolled" or the participation status, served from
// redis when fresh.
func (s *EnrollmentService) Status(ctx context.Context, userID, courseID uint) (string, error) {
	key := enrollmentCacheKey(userID, courseID)
	if cached, err := s.Redis.Get(ctx, key).Result(); err == nil && cached != "" {
		return cached, nil
	}

	participation, err := s.Repo.FindByUserAndCourse(userID, courseID)
	if err == gorm.ErrRecordNotFound {
		s.Redis.Set(ctx, key, "not-enrolled", enrollmentCacheTTL)
		return "not-enrolled", nil
	}
	if err != nil {
		return "", err
	}

	status := string(participation.Status)
	s.Redis.Set(ctx, key, status, enrollmentCacheTTL)
	return status, nil
}

// MarkPaid settles a paid course's participation and enrolls the student.
func (s *EnrollmentService) MarkPaid(ctx context.Context, participationID uint) (*model.Participation, error) {
	var participation model.Participation
	if err := s.Repo.DB.First(&participation, participationID).Error; err != nil {
		return nil, err
	}

	participation.PaymentStatus = model.PaymentPaid
	participation.Status = model.ParticipationEnrolled
	if err := s.Repo.Update(&participation); err != nil {
		return nil, err
	}

	s.Redis.Del(ctx, enrollmentCacheKey(participation.UserID, participation.CourseID))

	return &participation, nil
}

func (s *EnrollmentService) ListByCourse(courseID uint, page, limit int, status string) ([]model.Participation, int64, error) {
	return s.Repo.ListByCourse(courseID, page, limit, status)
}

func (s *EnrollmentService) ListByUser(userID uint) ([]model.Participation, error) {
	return s.Repo.ListByUser(userID)
}
