package models

// Лид-формы маркетингового сайта: обращение, партнерство, вакансия.
// Формы отправляются авторизованными пользователями, UserID берется из guard.

type Contact struct {
	BaseModel
	UserID           string     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Name             string     `gorm:"not null" json:"name"`
	Email            string     `gorm:"not null" json:"email"`
	Phone            string     `json:"phone,omitempty"`
	Industry         string     `json:"industry,omitempty"`
	CompanyName      string     `gorm:"not null" json:"company_name"`
	CompanySize      string     `json:"company_size,omitempty"`
	CompanyWebsite   string     `json:"company_website,omitempty"`
	Address          string     `json:"address,omitempty"`
	Country          string     `json:"country,omitempty"`
	Inquiry          string     `gorm:"not null" json:"inquiry"`
	InquiryType      string     `gorm:"default:'general'" json:"inquiry_type"`
	Budget           string     `json:"budget,omitempty"`
	Timeframe        string     `json:"timeframe,omitempty"`
	HowDidYouHear    string     `json:"how_did_you_hear,omitempty"`
	SignUpForUpdates bool       `gorm:"default:false" json:"sign_up_for_updates"`
	Status           LeadStatus `gorm:"type:varchar(20);default:'new'" json:"status"`
}

type Partner struct {
	BaseModel
	UserID             string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Name               string     `gorm:"not null" json:"name"`
	Email              string     `gorm:"not null" json:"email"`
	Company            string     `json:"company,omitempty"`
	ServicesInterested string     `gorm:"not null" json:"services_interested"`
	Status             LeadStatus `gorm:"type:varchar(20);default:'new'" json:"status"`
}

type Career struct {
	BaseModel
	UserID     string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string     `gorm:"not null" json:"name"`
	Email      string     `gorm:"not null" json:"email"`
	Phone      string     `json:"phone,omitempty"`
	Position   string     `gorm:"not null" json:"position"`
	Experience string     `json:"experience,omitempty"`
	ResumeURL  string     `json:"resume_url,omitempty"`
	CoverNote  string     `json:"cover_note,omitempty"`
	Status     LeadStatus `gorm:"type:varchar(20);default:'new'" json:"status"`
}
