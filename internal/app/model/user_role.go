package model

import (
	"time"
)

// UserRole ตารางเชื่อมบัญชีผู้ใช้กับบทบาท (บัญชีเดียวถือได้หลายบทบาท)
type UserRole struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	UserID    uint         `gorm:"not null;uniqueIndex:uq_user_role" json:"user_id"`
	Role      UserRoleName `gorm:"type:varchar(20);not null;uniqueIndex:uq_user_role" json:"role"`
	CreatedAt time.Time    `json:"created_at"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
