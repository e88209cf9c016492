package model

import (
	"time"

	"gorm.io/gorm"
)

type UserRoleName string // บทบาทของบัญชีผู้ใช้

const (
	RoleCustomer   UserRoleName = "CUSTOMER"   // ลูกค้าทั่วไป
	RoleRestaurant UserRoleName = "RESTAURANT" // เจ้าของร้านอาหาร
	RoleRider      UserRoleName = "RIDER"      // ไรเดอร์ส่งอาหาร
	RoleAdmin      UserRoleName = "ADMIN"      // ผู้ดูแลระบบ
)

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Phone        string         `json:"phone"` // เบอร์โทร (ตัวเลขล้วน เช่น 0812345678)
	Role         UserRoleName   `gorm:"type:varchar(20);default:'CUSTOMER'" json:"role"` // บทบาทหลัก
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Roles   []UserRole         `gorm:"foreignKey:UserID" json:"roles,omitempty"`
	Profile *RestaurantProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}
