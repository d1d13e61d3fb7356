package model

type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentRejected CommentStatus = "rejected"
)

// swagger:model Comment
type Comment struct {
	UUIDBase
	CourseID     uint          `gorm:"index;type:bigint unsigned" json:"courseId"`
	SectionIndex int           `json:"sectionIndex"`
	LessonIndex  int           `json:"lessonIndex"`
	LessonRef    string        `gorm:"size:36;index;column:lesson_id" json:"lessonId"`
	LessonPath   string        `gorm:"size:20;index" json:"lessonPath"` // "{sectionIndex}.{lessonIndex}"
	Body         string        `gorm:"type:text;not null" json:"body"`
	Status       CommentStatus `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	CreatedByID  uint          `gorm:"index;type:bigint unsigned;column:created_by" json:"createdBy"`
	Author       *User         `gorm:"foreignKey:CreatedByID" json:"author,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
