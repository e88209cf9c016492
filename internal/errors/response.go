package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse โครงสร้างการตอบกลับเมื่อเกิดข้อผิดพลาด
type ErrorResponse struct {
	Error   string `json:"error"`   // รหัสข้อผิดพลาด (ดู codes.go)
	Message string `json:"message"` // ข้อความภาษาไทยสำหรับแสดงผู้ใช้
}

// RespondWithError ส่ง response ข้อผิดพลาดมาตรฐาน
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// ฟังก์ชันช่วยสำหรับข้อผิดพลาดที่ใช้บ่อย

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "กรุณาเข้าสู่ระบบ"
	}
	RespondWithError(c, http.StatusUnauthorized, AuthUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "คุณไม่มีสิทธิ์เข้าถึงส่วนนี้"
	}
	RespondWithError(c, http.StatusForbidden, AuthzForbidden, message)
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

func Conflict(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusConflict, errorCode, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "เกิดข้อผิดพลาด กรุณาลองใหม่อีกครั้ง"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}
