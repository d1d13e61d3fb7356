package model

import "encoding/json"

type VideoStatus string

const (
	VideoProcessing VideoStatus = "processing"
	VideoReady      VideoStatus = "ready"
	VideoFailed     VideoStatus = "failed"
)

// swagger:model Video
type Video struct {
	BaseModel
	OwnerID   uint            `gorm:"index;type:bigint unsigned" json:"ownerId"`
	Title     string          `gorm:"size:255" json:"title"`
	Bucket    string          `gorm:"size:100;not null" json:"bucket"`
	ObjectKey string          `gorm:"size:255;not null" json:"objectKey"` // source rendition
	Qualities json.RawMessage `gorm:"type:json" json:"qualities,omitempty"` // JSON: map[quality]objectKey
	Duration  float64         `gorm:"default:0" json:"duration"` // seconds
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Size      int64           `json:"size"`
	Thumbnail string          `gorm:"size:255" json:"thumbnail,omitempty"` // objectKey of the poster frame
	Status    VideoStatus     `gorm:"type:enum('processing','ready','failed');default:'processing'" json:"status"`
}

func (Video) TableName() string {
	return "videos"
}
