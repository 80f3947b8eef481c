package model

import "time"

// PetModel mirrors the 'pets' table.
type PetModel struct {
	ID         string `gorm:"type:varchar(128);primaryKey"`
	FamilyCode string `gorm:"type:varchar(64);index;not null"`
	Name       string `gorm:"type:varchar(100)"`
	Species    string `gorm:"type:varchar(50)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}

// PetTaskModel mirrors the 'pet_tasks' table.
type PetTaskModel struct {
	ID         string     `gorm:"type:varchar(128);primaryKey"`
	FamilyCode string     `gorm:"type:varchar(64);index;not null"`
	PetID      string     `gorm:"type:varchar(128);index"`
	Title      string     `gorm:"type:varchar(200)"`
	Done       bool       `gorm:"not null;default:false"`
	DueDate    *time.Time `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PetTaskModel) TableName() string {
	return "pet_tasks"
}
