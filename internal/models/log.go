package models

import "time"

// AuditLog records one authenticated API hit for auditing. The path is
// stored encrypted only; the email column is the lookup key.
type AuditLog struct {
	ID        uint   `gorm:"primaryKey"`
	UserEmail string `gorm:"size:255;index"`
	PathEnc   string `gorm:"size:1024"`
	Method    string `gorm:"size:16"`
	Status    int
	IP        string `gorm:"size:64"`
	UserAgent string `gorm:"size:255"`
	CreatedAt time.Time
}
