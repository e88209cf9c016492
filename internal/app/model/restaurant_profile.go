package model

import (
	"time"
)

// ProfileStatus สถานะการตรวจสอบร้านอาหาร
type ProfileStatus string

const (
	StatusPending   ProfileStatus = "PENDING"   // รอการตรวจสอบ
	StatusApproved  ProfileStatus = "APPROVED"  // อนุมัติแล้ว
	StatusRejected  ProfileStatus = "REJECTED"  // ถูกปฏิเสธ
	StatusSuspended ProfileStatus = "SUSPENDED" // ถูกระงับ
)

// DefaultRating คะแนนเริ่มต้นของร้านที่เพิ่งสมัคร
const DefaultRating = 5.0

// RestaurantProfile ข้อมูลร้านอาหาร (หนึ่งบัญชีมีได้หนึ่งร้าน)
type RestaurantProfile struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"owner,omitempty"`

	Name        string   `gorm:"not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Address     string   `gorm:"type:text;not null" json:"address"`
	Phone       string   `gorm:"type:varchar(30);not null" json:"phone"`
	OpenTime    string   `gorm:"type:varchar(10)" json:"open_time"`  // เวลาเปิด เช่น "09:00"
	CloseTime   string   `gorm:"type:varchar(10)" json:"close_time"` // เวลาปิด เช่น "21:00"
	Latitude    *float64 `gorm:"type:decimal(10,8)" json:"latitude"`
	Longitude   *float64 `gorm:"type:decimal(11,8)" json:"longitude"`

	IsOpen bool    `gorm:"default:false" json:"is_open"` // เปิดรับออเดอร์ได้หลังอนุมัติเท่านั้น
	Rating float64 `gorm:"default:5.0" json:"rating"`

	Status ProfileStatus `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`

	// ข้อมูลการอนุมัติ/ปฏิเสธ
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	ApprovedBy   *uint      `json:"approved_by,omitempty"` // admin ที่อนุมัติ
	RejectedAt   *time.Time `json:"rejected_at,omitempty"`
	RejectedBy   *uint      `json:"rejected_by,omitempty"` // admin ที่ปฏิเสธ
	RejectReason *string    `gorm:"type:text" json:"reject_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Documents []RestaurantDocument `gorm:"foreignKey:ProfileID" json:"documents,omitempty"`
}

func (RestaurantProfile) TableName() string {
	return "restaurant_profiles"
}
