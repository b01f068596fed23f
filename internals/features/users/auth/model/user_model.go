// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	// PK
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id;default:gen_random_uuid()"`

	UserName  string `json:"user_name" gorm:"type:varchar(100);not null;column:user_name"`
	UserEmail string `json:"user_email" gorm:"type:varchar(255);not null;uniqueIndex;column:user_email"`

	// bcrypt hash, tidak pernah ikut response
	UserPassword string `json:"-" gorm:"type:text;not null;column:user_password"`

	UserIsActive bool `json:"user_is_active" gorm:"type:boolean;not null;default:true;column:user_is_active"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;not null;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string {
	return "users"
}
