package model

import "encoding/json"

type ExamStatus string

const (
	ExamDraft     ExamStatus = "draft"
	ExamPublished ExamStatus = "published"
	ExamArchived  ExamStatus = "archived"
)

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	TrueFalse      QuestionType = "true-false"
	ShortAnswer    QuestionType = "short-answer"
)

// swagger:model Exam
type Exam struct {
	UUIDBase
	CourseID     uint           `gorm:"index;type:bigint unsigned" json:"courseId"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	TimeLimit    int            `gorm:"default:30" json:"timeLimit"` // minutes
	PassingScore float64        `gorm:"default:50" json:"passingScore"` // percentage 0-100
	AllowRetakes bool           `gorm:"default:false" json:"allowRetakes"`
	MaxAttempts  int            `gorm:"default:1" json:"maxAttempts"`
	Status       ExamStatus     `gorm:"type:enum('draft','published','archived');default:'draft'" json:"status"`
	CreatorID    uint           `gorm:"index;type:bigint unsigned" json:"creatorId"`
	Questions    []ExamQuestion `gorm:"foreignKey:ExamID" json:"questions,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}

// ExamQuestion is a tagged variant keyed by QuestionType. Options holds
// []ChoiceOption for multiple-choice, Statements holds []Statement for
// true-false, and the CorrectAnswer/CaseSensitive/AllowPartialMatch fields
// apply to short-answer only.
// swagger:model ExamQuestion
type ExamQuestion struct {
	UUIDBase
	ExamID            string          `gorm:"size:36;index" json:"examId"`
	QuestionType      QuestionType    `gorm:"size:20;not null" json:"questionType"`
	Content           string          `gorm:"type:text;not null" json:"content"`
	Options           json.RawMessage `gorm:"type:json" json:"options,omitempty"`
	Statements        json.RawMessage `gorm:"type:json" json:"statements,omitempty"`
	CorrectAnswer     string          `gorm:"type:text" json:"correctAnswer,omitempty"`
	CaseSensitive     bool            `gorm:"default:false" json:"caseSensitive"`
	AllowPartialMatch bool            `gorm:"default:false" json:"allowPartialMatch"`
	Points            float64         `gorm:"default:1" json:"points"`
	Explanation       string          `gorm:"type:text" json:"explanation"`
	Order             int             `gorm:"default:0" json:"order"`
}

func (ExamQuestion) TableName() string {
	return "exam_questions"
}

type ChoiceOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type Statement struct {
	Text   string `json:"text"`
	IsTrue bool   `json:"isTrue"`
}
