package repository

import "time"

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Admin        bool   `gorm:"not null;default:false"`
	Confirmed    bool   `gorm:"not null;default:false"`
	ConfirmedAt  *time.Time
	RegisteredAt time.Time `gorm:"not null"`
}

type Bucketlist struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:256;not null"`
	CreatedBy string `gorm:"index;not null"` // User.ID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BucketlistItem struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:256;not null;uniqueIndex:idx_item_name_per_list"`
	Done         bool   `gorm:"not null;default:false"`
	BucketlistID uint   `gorm:"not null;index;uniqueIndex:idx_item_name_per_list"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
