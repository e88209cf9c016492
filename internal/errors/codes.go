package errors

// รหัสข้อผิดพลาดมาตรฐาน รูปแบบ: CATEGORY_SPECIFIC_DETAIL
// ฝั่ง frontend ใช้รหัสเหล่านี้ map เป็นข้อความที่แสดงผล

const (
	// ==================== ยืนยันตัวตน (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // ต้องเข้าสู่ระบบ
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // อีเมลหรือรหัสผ่านไม่ถูกต้อง
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // token หมดอายุ
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // token ไม่ถูกต้อง
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"       // token ถูกเพิกถอน
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"        // อีเมลซ้ำ

	// ==================== สิทธิ์การเข้าถึง (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"      // ไม่มีสิทธิ์เข้าถึง
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND" // ไม่พบข้อมูลสิทธิ์
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"     // เฉพาะผู้ดูแลระบบ

	// ==================== การตรวจสอบข้อมูล (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // ข้อมูลไม่ถูกต้อง
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // ID ไม่ถูกต้อง
	ValidationRequired     = "VALIDATION_REQUIRED"      // ข้อมูลจำเป็น

	// ==================== ร้านอาหาร (PROFILE_) ====================
	ProfileNotFound          = "PROFILE_NOT_FOUND"          // ยังไม่ได้สมัครร้าน
	ProfileAlreadyRegistered = "PROFILE_ALREADY_REGISTERED" // บัญชีนี้มีร้านแล้ว
	ProfileNotPending        = "PROFILE_NOT_PENDING"        // สถานะไม่ใช่รอตรวจสอบ
	ProfileRejectNoReason    = "PROFILE_REJECT_NO_REASON"   // ปฏิเสธต้องระบุเหตุผล

	// ==================== เอกสาร (DOCUMENT_) ====================
	DocumentCapExceeded     = "DOCUMENT_CAP_EXCEEDED"      // เอกสารเกินจำนวนที่กำหนด
	DocumentInvalidFileType = "DOCUMENT_INVALID_FILE_TYPE" // ประเภทไฟล์ไม่รองรับ
	DocumentFileTooLarge    = "DOCUMENT_FILE_TOO_LARGE"    // ไฟล์ใหญ่เกินไป

	// ==================== ข้อผิดพลาดภายใน (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // ข้อผิดพลาดของเซิร์ฟเวอร์
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // ข้อผิดพลาดฐานข้อมูล
)
