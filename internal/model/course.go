package model

import "encoding/json"

type CoursePricing string

const (
	CourseFree CoursePricing = "free"
	CoursePaid CoursePricing = "paid"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title        string          `gorm:"size:255;not null" json:"title"`
	Description  string          `gorm:"type:text" json:"description"`
	InstructorID uint            `gorm:"index;type:bigint unsigned" json:"instructorId"`
	Instructor   *User           `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	IsPaid       CoursePricing   `gorm:"type:enum('free','paid');default:'free'" json:"isPaid"`
	Price        float64         `gorm:"default:0" json:"price"`
	Published    bool            `gorm:"default:false" json:"published"`
	CoverImage   string          `gorm:"size:255" json:"coverImage"`
	ArticulateID string          `gorm:"size:100;index" json:"articulateId"` // extracted package directory name, empty when none
	Sections     []CourseSection `gorm:"foreignKey:CourseID" json:"sections,omitempty"`
	Exams        []CourseExam    `gorm:"foreignKey:CourseID" json:"exams,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model CourseSection
type CourseSection struct {
	BaseModel
	CourseID uint     `gorm:"index;type:bigint unsigned" json:"courseId"`
	Title    string   `gorm:"size:255;not null" json:"title"`
	Order    int      `gorm:"default:0" json:"order"`
	Lessons  []Lesson `gorm:"foreignKey:SectionID" json:"lessons,omitempty"`
}

func (CourseSection) TableName() string {
	return "course_sections"
}

type LessonContentType string

const (
	LessonVideo   LessonContentType = "video"
	LessonPDF     LessonContentType = "pdf"
	LessonExcel   LessonContentType = "excel"
	LessonWord    LessonContentType = "word"
	LessonQuiz    LessonContentType = "quiz"
	LessonArticle LessonContentType = "article"
)

// Lesson carries a denormalized comment_ids array kept in sync best-effort by
// the comment indexing flow. The authoritative mapping lives in the comments
// table.
// swagger:model Lesson
type Lesson struct {
	BaseModel
	SectionID   uint              `gorm:"index;type:bigint unsigned" json:"sectionId"`
	LessonID    string            `gorm:"size:36;uniqueIndex" json:"lessonId"` // public id, stable across reordering
	Title       string            `gorm:"size:255;not null" json:"title"`
	Order       int               `gorm:"default:0" json:"order"`
	ContentType LessonContentType `gorm:"size:20;not null" json:"contentType"`
	VideoID     uint              `gorm:"type:bigint unsigned" json:"videoId"`    // when ContentType == video
	ObjectKey   string            `gorm:"size:255" json:"objectKey"`              // pdf/excel/word object in storage
	ExamID      string            `gorm:"size:36" json:"examId"`                  // when ContentType == quiz
	Body        string            `gorm:"type:text" json:"body"`                  // article content
	CommentIDs  json.RawMessage   `gorm:"type:json" json:"commentIds,omitempty"`  // JSON: []string
	Duration    int               `gorm:"default:0" json:"duration"`              // seconds, videos only
}

func (Lesson) TableName() string {
	return "lessons"
}

// CourseExam binds an exam to a course. RequiredToComplete marks the exam the
// student must pass before the participation flips to enrolled.
// swagger:model CourseExam
type CourseExam struct {
	BaseModel
	CourseID           uint   `gorm:"index;type:bigint unsigned;uniqueIndex:idx_course_exam" json:"courseId"`
	ExamID             string `gorm:"size:36;uniqueIndex:idx_course_exam" json:"examId"`
	RequiredToComplete bool   `gorm:"default:false" json:"requiredToComplete"`
}

func (CourseExam) TableName() string {
	return "course_exams"
}
