package repository

import "time"

// User is the persisted row of the users relation. It deliberately has no plaintext password field.
type User struct {
	ID               string    `gorm:"primaryKey;autoIncrement:false;size:36"`
	Username         string    `gorm:"type:varchar(255);uniqueIndex:users_username_key;not null"`
	PasswordVerifier string    `gorm:"type:varchar(255);not null"`
	SessionToken     string    `gorm:"type:varchar(255);uniqueIndex:users_session_token_key;not null"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
