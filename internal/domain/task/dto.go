package task

import "github.com/google/uuid"

// Dates are accepted as YYYY-MM-DD or RFC3339.
type CreateTaskInput struct {
	CustomerName        string      `json:"customer_name" binding:"required,max=255" example:"Acme Feeds"`
	DeliveryAddress     string      `json:"delivery_address" binding:"required" example:"Unit 4, Dock Road, Dublin"`
	ProductName         string      `json:"product_name" binding:"required,max=255" example:"Layer Pellets"`
	Supplier            string      `json:"supplier" binding:"max=255" example:"Grain Co"`
	NumberOfBags        int         `json:"number_of_bags" binding:"gte=0" example:"40"`
	BagWeight           float64     `json:"bag_weight" binding:"gte=0" example:"25"`
	DocketNumber        string      `json:"docket_number" binding:"required,max=100" example:"D-10023"`
	VehicleType         VehicleType `json:"vehicle_type" binding:"required,oneof=truck tank" example:"truck"`
	HaulierTanker       string      `json:"haulier_tanker" binding:"max=255" example:"Tanker 7"`
	PlannedDecantDate   string      `json:"planned_decant_date" example:"2025-07-17"`
	PlannedDeliveryDate string      `json:"planned_delivery_date" example:"2025-07-18"`
	AssignedDriverID    *uuid.UUID  `json:"assigned_driver_id"`
}

type UpdateTaskInput struct {
	CustomerName        *string      `json:"customer_name" binding:"omitempty,max=255"`
	DeliveryAddress     *string      `json:"delivery_address"`
	ProductName         *string      `json:"product_name" binding:"omitempty,max=255"`
	Supplier            *string      `json:"supplier" binding:"omitempty,max=255"`
	NumberOfBags        *int         `json:"number_of_bags" binding:"omitempty,gte=0"`
	BagWeight           *float64     `json:"bag_weight" binding:"omitempty,gte=0"`
	DocketNumber        *string      `json:"docket_number" binding:"omitempty,max=100"`
	VehicleType         *VehicleType `json:"vehicle_type" binding:"omitempty,oneof=truck tank"`
	HaulierTanker       *string      `json:"haulier_tanker" binding:"omitempty,max=255"`
	PlannedDecantDate   *string      `json:"planned_decant_date"`
	PlannedDeliveryDate *string      `json:"planned_delivery_date"`
	AssignedDriverID    *uuid.UUID   `json:"assigned_driver_id"`
}

type ListFilter struct {
	Status           Status     `form:"status" binding:"omitempty,oneof=new in_progress completed cancelled"`
	AssignedDriverID *uuid.UUID `form:"-"`
	Search           string     `form:"search"`
	// Mine narrows the list to tasks assigned to the caller.
	Mine bool `form:"mine"`
}

type CreateAttachmentInput struct {
	AttachmentType      AttachmentType `json:"attachment_type" binding:"required,oneof=document checklist" example:"checklist"`
	Title               string         `json:"title" binding:"required,max=255" example:"Pre-delivery inspection"`
	ChecklistTemplateID *uuid.UUID     `json:"checklist_template_id"`
	IsRequired          *bool          `json:"is_required"`
	AssignedTo          Department     `json:"assigned_to" binding:"required,oneof=transport warehouse" example:"transport"`
}
