// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "alarqam_backend/internals/features/users/auth/model"
	userModel "alarqam_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

// FindUserByUsername dipakai resolusi login: username polos → email terdaftar.
func FindUserByUsername(db *gorm.DB, userName string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_name = ?", userName).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

/* ====================== TOKEN BLACKLIST ====================== */

func BlacklistToken(db *gorm.DB, token string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: expiredAt,
	}).Error
}

// PurgeExpiredBlacklist membersihkan token blacklist yang sudah lewat masa
// berlaku. Mengembalikan jumlah baris yang dihapus.
func PurgeExpiredBlacklist(db *gorm.DB) (int64, error) {
	res := db.Where("expired_at < ?", time.Now()).
		Delete(&authModel.TokenBlacklistModel{})
	return res.RowsAffected, res.Error
}
