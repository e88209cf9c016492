package model

import (
	"time"
)

// MaxDocumentsPerProfile จำนวนเอกสารสูงสุดต่อร้าน (สะสมรวมการยื่นซ้ำ)
const MaxDocumentsPerProfile = 10

// RestaurantDocument เอกสารประกอบการสมัครร้าน (ใบอนุญาต บัตรประชาชน ฯลฯ)
// สร้างครั้งเดียว ไม่มีการแก้ไขหรือลบ
type RestaurantDocument struct {
	ID        uint              `gorm:"primarykey" json:"id"`
	ProfileID uint              `gorm:"index;not null" json:"profile_id"`
	Profile   RestaurantProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	FileName     string    `gorm:"not null" json:"file_name"` // ชื่อไฟล์ที่ระบบสร้าง
	OriginalName string    `gorm:"not null" json:"original_name"`
	Size         int64     `gorm:"not null" json:"size"`
	MimeType     string    `gorm:"type:varchar(100)" json:"mime_type"`
	FilePath     string    `gorm:"type:text;not null" json:"file_path"` // URL สาธารณะ /uploads/restaurants/<id>/<file>
	CreatedAt    time.Time `json:"created_at"`
}

func (RestaurantDocument) TableName() string {
	return "restaurant_documents"
}
