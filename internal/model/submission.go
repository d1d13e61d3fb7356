package model

import "encoding/json"

type SubmissionStatus string

const (
	SubmissionPending SubmissionStatus = "pending"
	SubmissionGraded  SubmissionStatus = "graded"
	SubmissionFailed  SubmissionStatus = "failed"
)

// ExamSubmission is created once per attempt by the submit route with status
// pending and mutated only by the grading worker afterwards. Score stays nil
// until the worker settles the submission.
// swagger:model ExamSubmission
type ExamSubmission struct {
	UUIDBase
	UserID   uint             `gorm:"index;type:bigint unsigned" json:"userId"`
	User     *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CourseID uint             `gorm:"index;type:bigint unsigned" json:"courseId"`
	ExamID   string           `gorm:"size:36;index" json:"examId"`
	Answers  json.RawMessage  `gorm:"type:json" json:"answers"` // JSON: []SubmissionAnswer
	Score    *float64         `json:"score"`
	Status   SubmissionStatus `gorm:"type:enum('pending','graded','failed');default:'pending'" json:"status"`
	TimeSpent int             `gorm:"default:0" json:"timeSpent"` // minutes
	Attempt  int              `gorm:"default:1" json:"attempt"`
	Feedback string           `gorm:"type:text" json:"feedback"`
}

func (ExamSubmission) TableName() string {
	return "exam_submissions"
}

// SubmissionAnswer carries exactly one response shape depending on
// QuestionType. IsCorrect and PointsEarned are written once by the grader.
type SubmissionAnswer struct {
	QuestionIndex       int          `json:"questionIndex"`
	QuestionType        QuestionType `json:"questionType"`
	SelectedOptions     map[int]bool `json:"selectedOptions,omitempty"`
	TrueFalseResponses  map[int]bool `json:"trueFalseResponses,omitempty"`
	ShortAnswerResponse string       `json:"shortAnswerResponse,omitempty"`
	IsCorrect           bool         `json:"isCorrect"`
	PointsEarned        float64      `json:"pointsEarned"`
}
