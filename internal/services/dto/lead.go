package dto

type CreateContactRequest struct {
	Name             string `json:"name" binding:"required" validate:"required,min=2,max=50"`
	Email            string `json:"email" binding:"required" validate:"required,email"`
	Phone            string `json:"phone"`
	Industry         string `json:"industry"`
	CompanyName      string `json:"company_name" binding:"required" validate:"required"`
	CompanySize      string `json:"company_size" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 501-1000 1000+"`
	CompanyWebsite   string `json:"company_website" validate:"omitempty,url"`
	Address          string `json:"address"`
	Country          string `json:"country"`
	Inquiry          string `json:"inquiry" binding:"required" validate:"required"`
	InquiryType      string `json:"inquiry_type" validate:"omitempty,oneof=general sales support partnership other"`
	Budget           string `json:"budget"`
	Timeframe        string `json:"timeframe"`
	HowDidYouHear    string `json:"how_did_you_hear"`
	SignUpForUpdates bool   `json:"sign_up_for_updates"`
}

type CreatePartnerRequest struct {
	Name               string `json:"name" binding:"required" validate:"required,min=2,max=50"`
	Email              string `json:"email" binding:"required" validate:"required,email"`
	Company            string `json:"company"`
	ServicesInterested string `json:"services_interested" binding:"required" validate:"required"`
}

type CreateCareerRequest struct {
	Name       string `json:"name" binding:"required" validate:"required,min=2,max=50"`
	Email      string `json:"email" binding:"required" validate:"required,email"`
	Phone      string `json:"phone"`
	Position   string `json:"position" binding:"required" validate:"required"`
	Experience string `json:"experience"`
	ResumeURL  string `json:"resume_url" validate:"omitempty,url"`
	CoverNote  string `json:"cover_note" validate:"omitempty,max=5000"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,lead_status"`
}
