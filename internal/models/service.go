package models

type Service struct {
	BaseModel
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"not null" json:"description"`
	Price       float64         `gorm:"not null" json:"price"`
	Category    ServiceCategory `gorm:"type:varchar(30);not null" json:"category"`
	Image       string          `json:"image,omitempty"`
	IsAvailable bool            `gorm:"default:true" json:"is_available"`
}
