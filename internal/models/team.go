package models

type Team struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Logo    string `gorm:"size:500" json:"logo,omitempty"`
	Manager string `gorm:"size:100" json:"manager,omitempty"`
	Credits int    `gorm:"not null;default:0" json:"credits"`
}
