package models

import "time"

// Basit ziyaret analitiği; IP ve oturum yalnızca tuzlu hash olarak saklanır.
type Visit struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Path        string    `gorm:"size:255;not null;index" json:"path"`
	IPHash      string    `gorm:"size:64;not null;index" json:"ip_hash"`
	VisitorHash *string   `gorm:"size:64" json:"visitor_hash"`
	UA          *string   `gorm:"size:255" json:"ua"`
	TS          time.Time `gorm:"not null;index" json:"ts"`
}
