package model

import (
	"time"
)

// User は単語帳の持ち主。WordAmount は採番カウンタで、減ることはない。
type User struct {
	UserID      string    `gorm:"type:varchar(128);primaryKey" json:"uid"`
	DisplayName string    `gorm:"not null;default:''" json:"name"`
	PhotoURL    string    `gorm:"not null;default:''" json:"photoURL"`
	WordAmount  int64     `gorm:"not null;default:0" json:"wordAmount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// GORM用のリレーション (JSONには含めない)
	Words []WordRecord `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey   ContextKey = "userID"
	IdentityKey ContextKey = "identity"
)
