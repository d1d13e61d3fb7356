package model

type ParticipationStatus string

const (
	ParticipationPending  ParticipationStatus = "pending"
	ParticipationEnrolled ParticipationStatus = "enrolled"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// swagger:model Participation
type Participation struct {
	BaseModel
	UserID        uint                `gorm:"index;type:bigint unsigned;uniqueIndex:idx_user_course" json:"userId"`
	User          *User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CourseID      uint                `gorm:"type:bigint unsigned;uniqueIndex:idx_user_course" json:"courseId"`
	Status        ParticipationStatus `gorm:"type:enum('pending','enrolled');default:'pending'" json:"status"`
	PaymentStatus PaymentStatus       `gorm:"type:enum('unpaid','paid');default:'unpaid'" json:"paymentStatus"`
	ExamCompleted bool                `gorm:"default:false" json:"examCompleted"` // set only by the grading flow
}

func (Participation) TableName() string {
	return "participations"
}
