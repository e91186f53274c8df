package user

type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"required,email" example:"driver@example.com"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}

// CreateUserInput is used by administrators; the account is active immediately.
type CreateUserInput struct {
	Email      string  `json:"email" binding:"required,email" example:"driver@example.com"`
	Password   string  `json:"password" binding:"required,min=6" example:"password123"`
	FirstName  string  `json:"first_name" binding:"required,max=100" example:"John"`
	LastName   string  `json:"last_name" binding:"max=100" example:"Doe"`
	Role       Role    `json:"role" binding:"required,oneof=admin driver warehouse executive operational_lead" example:"driver"`
	Phone      *string `json:"phone" example:"+353 1 234 5678"`
	Department *string `json:"department" example:"Transport"`
}

// RegisterInput is the self-signup payload; such accounts wait for approval.
type RegisterInput struct {
	Email     string  `json:"email" binding:"required,email" example:"driver@example.com"`
	Password  string  `json:"password" binding:"required,min=6" example:"password123"`
	FirstName string  `json:"first_name" binding:"required,max=100" example:"John"`
	LastName  string  `json:"last_name" binding:"max=100" example:"Doe"`
	Phone     *string `json:"phone" example:"+353 1 234 5678"`
}

type UpdateUserInput struct {
	FirstName  *string `json:"first_name" binding:"omitempty,max=100"`
	LastName   *string `json:"last_name" binding:"omitempty,max=100"`
	Role       *Role   `json:"role" binding:"omitempty,oneof=admin driver warehouse executive operational_lead"`
	Status     *Status `json:"status" binding:"omitempty,oneof=active inactive pending"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	Avatar     *string `json:"avatar"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required" example:"oldPass123"`
	NewPassword string `json:"new_password" binding:"required,min=6" example:"newPass123"`
}

type ListFilter struct {
	Role   Role   `form:"role" binding:"omitempty,oneof=admin driver warehouse executive operational_lead"`
	Status Status `form:"status" binding:"omitempty,oneof=active inactive pending"`
}

// Session is returned by the session bootstrap endpoint.
type Session struct {
	User       User      `json:"user"`
	Navigation []NavItem `json:"navigation"`
}
