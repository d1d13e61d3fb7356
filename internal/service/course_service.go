package service

import (
	"academy_backend/internal/model"
	"academy_backend/internal/repository"
	"academy_backend/internal/util"
	"errors"
)

type CourseService struct {
	Repo *repository.CourseRepository
}

func NewCourseService(repo *repository.CourseRepository) *CourseService {
	return &CourseService{Repo: repo}
}

type CourseReq struct {
	Title        *string              `json:"title"`
	Description  *string              `json:"description"`
	IsPaid       *model.CoursePricing `json:"isPaid"`
	Price        *float64             `json:"price"`
	Published    *bool                `json:"published"`
	CoverImage   *string              `json:"coverImage"`
	ArticulateID *string              `json:"articulateId"`
}

func (s *CourseService) Create(instructorID uint, req CourseReq) (*model.Course, error) {
	if req.Title == nil || *req.Title == "" {
		return nil, errors.New("title is required")
	}

	course := &model.Course{
		Title:        *req.Title,
		InstructorID: instructorID,
	}
	applyCourseReq(course, req)

	if err := s.Repo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Update(courseID uint, req CourseReq) (*model.Course, error) {
	course, err := s.Repo.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		course.Title = *req.Title
	}
	applyCourseReq(course, req)

	if err := s.Repo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func applyCourseReq(course *model.Course, req CourseReq) {
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.IsPaid != nil {
		course.IsPaid = *req.IsPaid
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Published != nil {
		course.Published = *req.Published
	}
	if req.CoverImage != nil {
		course.CoverImage = *req.CoverImage
	}
	if req.ArticulateID != nil {
		course.ArticulateID = *req.ArticulateID
	}
}

func (s *CourseService) Delete(courseID uint) error {
	return s.Repo.Delete(courseID)
}

func (s *CourseService) Get(courseID uint) (*model.Course, error) {
	return s.Repo.FindByIDWithContent(courseID)
}

// GetPublished returns a course for the public catalog; unpublished courses
// are invisible.
func (s *CourseService) GetPublished(courseID uint) (*model.Course, error) {
	course, err := s.Repo.FindByIDWithContent(courseID)
	if err != nil {
		return nil, err
	}
	if !course.Published {
		return nil, util.ErrCourseNotFound
	}
	return course, nil
}

func (s *CourseService) List(page, limit int, publishedOnly bool) ([]model.Course, int64, error) {
	return s.Repo.List(page, limit, publishedOnly)
}

func (s *CourseService) ListByInstructor(instructorID uint) ([]model.Course, error) {
	return s.Repo.ListByInstructor(instructorID)
}

type SectionReq struct {
	Title string `json:"title" binding:"required"`
	Order int    `json:"order"`
}

func (s *CourseService) AddSection(courseID uint, req SectionReq) (*model.CourseSection, error) {
	if _, err := s.Repo.FindByID(courseID); err != nil {
		return nil, util.ErrCourseNotFound
	}
	section := &model.CourseSection{
		CourseID: courseID,
		Title:    req.Title,
		Order:    req.Order,
	}
	if err := s.Repo.CreateSection(section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *CourseService) DeleteSection(sectionID uint) error {
	return s.Repo.DeleteSection(sectionID)
}

type LessonReq struct {
	Title       string                  `json:"title" binding:"required"`
	Order       int                     `json:"order"`
	ContentType model.LessonContentType `json:"contentType" binding:"required"`
	VideoID     uint                    `json:"videoId"`
	ObjectKey   string                  `json:"objectKey"`
	ExamID      string                  `json:"examId"`
	Body        string                  `json:"body"`
	Duration    int                     `json:"duration"`
}

func (s *CourseService) AddLesson(sectionID uint, req LessonReq) (*model.Lesson, error) {
	lesson := &model.Lesson{
		SectionID:   sectionID,
		LessonID:    model.GenerateUUID(),
		Title:       req.Title,
		Order:       req.Order,
		ContentType: req.ContentType,
		VideoID:     req.VideoID,
		ObjectKey:   req.ObjectKey,
		ExamID:      req.ExamID,
		Body:        req.Body,
		Duration:    req.Duration,
	}
	if err := s.Repo.CreateLesson(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *CourseService) UpdateLesson(lessonID uint, req LessonReq) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := s.Repo.DB.First(&lesson, lessonID).Error; err != nil {
		return nil, util.ErrLessonNotFound
	}
	lesson.Title = req.Title
	lesson.Order = req.Order
	lesson.ContentType = req.ContentType
	lesson.VideoID = req.VideoID
	lesson.ObjectKey = req.ObjectKey
	lesson.ExamID = req.ExamID
	lesson.Body = req.Body
	lesson.Duration = req.Duration
	if err := s.Repo.UpdateLesson(&lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (s *CourseService) DeleteLesson(lessonID uint) error {
	return s.Repo.DeleteLesson(lessonID)
}
