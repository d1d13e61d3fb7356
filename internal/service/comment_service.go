package service

import (
	"academy_backend/internal/model"
	"academy_backend/internal/repository"
	"academy_backend/internal/util"
	"encoding/json"
	"fmt"

	"academy_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CommentService struct {
	Repo       *repository.CommentRepository
	CourseRepo *repository.CourseRepository
	DB         *gorm.DB
}

func NewCommentService(repo *repository.CommentRepository, courseRepo *repository.CourseRepository, db *gorm.DB) *CommentService {
	return &CommentService{Repo: repo, CourseRepo: courseRepo, DB: db}
}

type CreateCommentRequest struct {
	CourseID     uint   `json:"courseId" binding:"required"`
	SectionIndex int    `json:"sectionIndex"`
	LessonIndex  int    `json:"lessonIndex"`
	LessonID     string `json:"lessonId"`
	Body         string `json:"body" binding:"required"`
}

// lessonPath composes the positional address of a lesson inside its course.
func lessonPath(sectionIndex, lessonIndex int) string {
	return fmt.Sprintf("%d.%d", sectionIndex, lessonIndex)
}

// appendCommentID set-adds an ID into a JSON string array. Returns the
// original slice unchanged when the ID is already present.
func appendCommentID(raw json.RawMessage, commentID string) (json.RawMessage, bool, error) {
	var ids []string
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &ids); err != nil {
			return nil, false, fmt.Errorf("malformed comment_ids: %w", err)
		}
	}

	for _, id := range ids {
		if id == commentID {
			return raw, false, nil
		}
	}

	ids = append(ids, commentID)
	out, err := json.Marshal(ids)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// Create persists the comment, then best-effort indexes it into the lesson's
// denormalized comment_ids array. An indexing failure is logged and swallowed:
// the comment row already exists and the read path queries comments directly.
func (s *CommentService) Create(userID uint, req CreateCommentRequest) (*model.Comment, error) {
	comment := &model.Comment{
		CourseID:     req.CourseID,
		SectionIndex: req.SectionIndex,
		LessonIndex:  req.LessonIndex,
		LessonRef:    req.LessonID,
		LessonPath:   lessonPath(req.SectionIndex, req.LessonIndex),
		Body:         req.Body,
		Status:       model.CommentPending,
		CreatedByID:  userID,
	}

	if err := s.Repo.Create(comment); err != nil {
		return nil, err
	}

	if err := s.indexComment(comment); err != nil {
		logger.Log.Error("comment indexing failed, back-reference missing",
			zap.String("commentId", comment.ID),
			zap.Uint("courseId", comment.CourseID),
			zap.String("lessonPath", comment.LessonPath),
			zap.Error(err))
	}

	return comment, nil
}

// indexComment runs the check-then-append sequence inside a transaction so
// concurrent inserts on the same lesson don't lose updates. gorm rolls the
// transaction back on error or panic.
func (s *CommentService) indexComment(comment *model.Comment) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var course model.Course
		if err := tx.First(&course, comment.CourseID).Error; err != nil {
			return util.ErrCourseNotFound
		}

		lesson, err := s.locateLesson(tx, comment)
		if err != nil {
			return err
		}

		updated, changed, err := appendCommentID(lesson.CommentIDs, comment.ID)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}

		res := tx.Model(&model.Lesson{}).Where("id = ?", lesson.ID).
			Update("comment_ids", updated)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// not fatal: the lesson may have been removed mid-flight
			logger.Log.Warn("comment back-reference update matched no rows",
				zap.Uint("lessonId", lesson.ID),
				zap.String("commentId", comment.ID))
		}
		return nil
	})
}

// locateLesson resolves the target lesson by its stable public ID first,
// falling back to the positional section/lesson indexes.
func (s *CommentService) locateLesson(tx *gorm.DB, comment *model.Comment) (*model.Lesson, error) {
	if comment.LessonRef != "" {
		var lesson model.Lesson
		err := tx.Where("lesson_id = ?", comment.LessonRef).First(&lesson).Error
		if err == nil {
			return &lesson, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	var sections []model.CourseSection
	if err := tx.Where("course_id = ?", comment.CourseID).
		Order("`order` asc").Find(&sections).Error; err != nil {
		return nil, err
	}
	if comment.SectionIndex < 0 || comment.SectionIndex >= len(sections) {
		return nil, util.ErrLessonNotFound
	}

	var lessons []model.Lesson
	if err := tx.Where("section_id = ?", sections[comment.SectionIndex].ID).
		Order("`order` asc").Find(&lessons).Error; err != nil {
		return nil, err
	}
	if comment.LessonIndex < 0 || comment.LessonIndex >= len(lessons) {
		return nil, util.ErrLessonNotFound
	}

	return &lessons[comment.LessonIndex], nil
}

func (s *CommentService) ListForLesson(courseID uint, lessonRef string) ([]model.Comment, error) {
	return s.Repo.ListByLesson(courseID, lessonRef, string(model.CommentApproved))
}

func (s *CommentService) ListForCourse(courseID uint, page, limit int, status string) ([]model.Comment, int64, error) {
	return s.Repo.ListByCourse(courseID, page, limit, status)
}

// Moderate sets a comment's status to approved or rejected.
func (s *CommentService) Moderate(commentID string, status model.CommentStatus) (*model.Comment, error) {
	if status != model.CommentApproved && status != model.CommentRejected {
		return nil, fmt.Errorf("invalid moderation status %q", status)
	}
	comment, err := s.Repo.FindByID(commentID)
	if err != nil {
		return nil, err
	}
	comment.Status = status
	if err := s.Repo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(commentID string) error {
	return s.Repo.Delete(commentID)
}
