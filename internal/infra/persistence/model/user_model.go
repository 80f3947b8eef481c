// Package model holds the GORM persistence models for the relational store.
package model

import (
	"time"

	"github.com/lib/pq"
)

// UserModel mirrors the 'users' table. IDs are Firebase Auth UIDs.
type UserModel struct {
	ID          string         `gorm:"type:varchar(128);primaryKey"`
	FamilyCode  string         `gorm:"type:varchar(64);index"`
	DisplayName string         `gorm:"type:varchar(100)"`
	FCMTokens   pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
