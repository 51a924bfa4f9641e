package dto

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Description string  `json:"description" binding:"required" validate:"required"`
	Price       float64 `json:"price" binding:"required" validate:"required,min=0"`
	Category    string  `json:"category" binding:"required" validate:"required,service_category"`
	Image       string  `json:"image" validate:"omitempty,url"`
	IsAvailable *bool   `json:"is_available"`
}

type UpdateServiceRequest struct {
	Name        string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"omitempty,min=0"`
	Category    string  `json:"category" validate:"omitempty,service_category"`
	Image       string  `json:"image" validate:"omitempty,url"`
	IsAvailable *bool   `json:"is_available"`
}
