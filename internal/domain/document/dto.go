package document

// UploadInput is bound from the multipart form that carries the file.
type UploadInput struct {
	Title           string   `form:"title" binding:"required,max=255" example:"Forklift safety policy"`
	Department      string   `form:"department" binding:"required" example:"Warehouse"`
	PolicyArea      string   `form:"policy_area" binding:"required" example:"Safety"`
	ResponsibleRole string   `form:"responsible_role" binding:"required" example:"Warehouse"`
	Status          string   `form:"status" example:"Active"`
	Version         string   `form:"version" binding:"required" example:"v1.0"`
	DocumentDate    string   `form:"document_date" binding:"required" example:"2025-07-17"`
	Tags            []string `form:"tags"`
}

type UpdateInput struct {
	Title      *string  `json:"title" binding:"omitempty,max=255"`
	Status     *string  `json:"status"`
	PolicyArea *string  `json:"policy_area"`
	Version    *string  `json:"version"`
	Tags       []string `json:"tags"`
}

type ListFilter struct {
	Department string `form:"department"`
	Status     string `form:"status"`
	Tag        string `form:"tag"`
	Search     string `form:"search"`
}

// WithURL pairs a document with a short-lived download link.
type WithURL struct {
	Document
	URL string `json:"url"`
}
