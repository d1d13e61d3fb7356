package repository

import (
	"academy_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

// FindByIDWithContent loads the full nested course: ordered sections with
// ordered lessons, plus exam bindings.
func (r *CourseRepository) FindByIDWithContent(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("course_sections.order asc")
		}).
		Preload("Sections.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.order asc")
		}).
		Preload("Exams").
		First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) List(page, limit int, publishedOnly bool) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64
	query := r.DB.Model(&model.Course{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) ListByInstructor(instructorID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("instructor_id = ?", instructorID).Order("created_at desc").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var sectionIDs []uint
		if err := tx.Model(&model.CourseSection{}).Where("course_id = ?", id).Pluck("id", &sectionIDs).Error; err != nil {
			return err
		}
		if len(sectionIDs) > 0 {
			if err := tx.Where("section_id IN ?", sectionIDs).Delete(&model.Lesson{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.CourseSection{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.CourseExam{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Course{}, id).Error
	})
}

func (r *CourseRepository) CreateSection(section *model.CourseSection) error {
	return r.DB.Create(section).Error
}

func (r *CourseRepository) UpdateSection(section *model.CourseSection) error {
	return r.DB.Save(section).Error
}

func (r *CourseRepository) DeleteSection(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", id).Delete(&model.Lesson{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.CourseSection{}, id).Error
	})
}

func (r *CourseRepository) CreateLesson(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *CourseRepository) UpdateLesson(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *CourseRepository) DeleteLesson(id uint) error {
	return r.DB.Delete(&model.Lesson{}, id).Error
}

func (r *CourseRepository) FindLessonByPublicID(lessonID string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.Where("lesson_id = ?", lessonID).First(&lesson).Error
	return &lesson, err
}

func (r *CourseRepository) UpsertExamBinding(binding *model.CourseExam) error {
	var existing model.CourseExam
	err := r.DB.Where("course_id = ? AND exam_id = ?", binding.CourseID, binding.ExamID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(binding).Error
	}
	if err != nil {
		return err
	}
	existing.RequiredToComplete = binding.RequiredToComplete
	return r.DB.Save(&existing).Error
}

func (r *CourseRepository) FindExamBinding(courseID uint, examID string) (*model.CourseExam, error) {
	var binding model.CourseExam
	err := r.DB.Where("course_id = ? AND exam_id = ?", courseID, examID).First(&binding).Error
	if err != nil {
		return nil, err
	}
	return &binding, nil
}
