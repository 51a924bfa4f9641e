package models

type UserRole string
type BookingStatus string
type AppointmentStatus string
type LeadStatus string
type ServiceCategory string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"

	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"

	LeadStatusNew        LeadStatus = "new"
	LeadStatusInProgress LeadStatus = "in-progress"
	LeadStatusResolved   LeadStatus = "resolved"
	LeadStatusClosed     LeadStatus = "closed"

	ServiceCategoryAudit          ServiceCategory = "security_audit"
	ServiceCategoryConsultation   ServiceCategory = "consultation"
	ServiceCategoryTraining       ServiceCategory = "training"
	ServiceCategoryImplementation ServiceCategory = "implementation"
	ServiceCategoryOther          ServiceCategory = "other"
)
