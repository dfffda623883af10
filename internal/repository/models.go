package repository

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Article struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	Author    string    `gorm:"type:varchar(255);not null"` // display name, free text
	UserID    uint      `gorm:"not null;index"`             // owning user, immutable
	CreatedOn time.Time `gorm:"autoCreateTime"`
}

func (Article) TableName() string {
	return "news"
}
