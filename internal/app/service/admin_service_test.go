package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/corgigo/corgigo-backend/internal/app/model"
	"github.com/corgigo/corgigo-backend/internal/app/repository"
	"github.com/corgigo/corgigo-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var reviewTime = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func setupAdminServiceTest(t *testing.T) (AdminService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	profileRepo := repository.NewRestaurantProfileRepository(testDB)
	adminSvc := &adminService{
		profileRepo: profileRepo,
		now:         func() time.Time { return reviewTime },
	}
	return adminSvc, testDB
}

func createPendingProfile(t *testing.T, testDB *gorm.DB, name string) *model.RestaurantProfile {
	user := &model.User{
		Email:        fmt.Sprintf("owner-%d@example.com", time.Now().UnixNano()),
		PasswordHash: "hashed-password",
		Name:         "Somying",
		Phone:        "0898765432",
		Role:         model.RoleRestaurant,
	}
	require.NoError(t, testDB.Create(user).Error)

	profile := &model.RestaurantProfile{
		UserID:  user.ID,
		Name:    name,
		Address: "77 ถนนลาดพร้าว กรุงเทพฯ",
		Phone:   "025556666",
		Status:  model.StatusPending,
	}
	require.NoError(t, testDB.Create(profile).Error)
	return profile
}

func TestAdminService_ListPending(t *testing.T) {
	adminSvc, testDB := setupAdminServiceTest(t)

	profiles, err := adminSvc.ListPending()
	require.NoError(t, err)
	assert.Empty(t, profiles)

	older := createPendingProfile(t, testDB, "ร้านแรก")
	older.CreatedAt = time.Now().Add(-24 * time.Hour)
	require.NoError(t, testDB.Save(older).Error)

	createPendingProfile(t, testDB, "ร้านที่สอง")

	profiles, err = adminSvc.ListPending()
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "ร้านแรก", profiles[0].Name)
	assert.Equal(t, "ร้านที่สอง", profiles[1].Name)
	assert.NotEmpty(t, profiles[0].User.Email)
}

func TestAdminService_Approve(t *testing.T) {
	adminSvc, testDB := setupAdminServiceTest(t)
	profile := createPendingProfile(t, testDB, "ร้านรออนุมัติ")

	approved, err := adminSvc.Approve(profile.ID, 99)
	require.NoError(t, err)

	assert.Equal(t, model.StatusApproved, approved.Status)
	assert.True(t, approved.IsOpen)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, uint(99), *approved.ApprovedBy)
	require.NotNil(t, approved.ApprovedAt)
	assert.WithinDuration(t, reviewTime, *approved.ApprovedAt, time.Second)
	assert.Nil(t, approved.RejectedAt)
	assert.Nil(t, approved.RejectReason)
}

func TestAdminService_Approve_NotFound(t *testing.T) {
	adminSvc, _ := setupAdminServiceTest(t)

	profile, err := adminSvc.Approve(9999, 99)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Nil(t, profile)
}

func TestAdminService_Approve_NotPending(t *testing.T) {
	adminSvc, testDB := setupAdminServiceTest(t)
	profile := createPendingProfile(t, testDB, "ร้านอนุมัติแล้ว")

	_, err := adminSvc.Approve(profile.ID, 99)
	require.NoError(t, err)

	// a second decision on the same profile is refused
	_, err = adminSvc.Approve(profile.ID, 99)
	assert.ErrorIs(t, err, ErrProfileNotPending)

	_, err = adminSvc.Reject(profile.ID, 99, "สายเกินไป")
	assert.ErrorIs(t, err, ErrProfileNotPending)
}

func TestAdminService_Reject(t *testing.T) {
	adminSvc, testDB := setupAdminServiceTest(t)
	profile := createPendingProfile(t, testDB, "ร้านรอปฏิเสธ")

	rejected, err := adminSvc.Reject(profile.ID, 42, "  เอกสารไม่ครบถ้วน  ")
	require.NoError(t, err)

	assert.Equal(t, model.StatusRejected, rejected.Status)
	assert.False(t, rejected.IsOpen)
	require.NotNil(t, rejected.RejectReason)
	assert.Equal(t, "เอกสารไม่ครบถ้วน", *rejected.RejectReason)
	require.NotNil(t, rejected.RejectedBy)
	assert.Equal(t, uint(42), *rejected.RejectedBy)
	require.NotNil(t, rejected.RejectedAt)
	assert.WithinDuration(t, reviewTime, *rejected.RejectedAt, time.Second)
	assert.Nil(t, rejected.ApprovedAt)
}

func TestAdminService_Reject_ReasonRequired(t *testing.T) {
	adminSvc, testDB := setupAdminServiceTest(t)
	profile := createPendingProfile(t, testDB, "ร้านรอตรวจ")

	tests := []struct {
		name   string
		reason string
	}{
		{name: "Empty reason", reason: ""},
		{name: "Whitespace reason", reason: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rejected, err := adminSvc.Reject(profile.ID, 42, tt.reason)
			assert.ErrorIs(t, err, ErrReasonRequired)
			assert.Nil(t, rejected)
		})
	}

	// the refused rejection leaves the profile untouched
	var stored model.RestaurantProfile
	require.NoError(t, testDB.First(&stored, profile.ID).Error)
	assert.Equal(t, model.StatusPending, stored.Status)
	assert.Nil(t, stored.RejectedAt)
	assert.Nil(t, stored.RejectReason)
}

func TestAdminService_CountStalePending(t *testing.T) {
	adminSvc, testDB := setupAdminServiceTest(t)

	stale := createPendingProfile(t, testDB, "ร้านค้างนาน")
	stale.CreatedAt = reviewTime.Add(-96 * time.Hour)
	require.NoError(t, testDB.Save(stale).Error)

	createPendingProfile(t, testDB, "ร้านเพิ่งสมัคร")

	count, err := adminSvc.CountStalePending(72 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
