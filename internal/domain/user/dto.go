package user

type CreateUserInput struct {
	Name     string `json:"name" form:"name" binding:"required,min=3,max=100" example:"operator1"`
	Password string `json:"password" form:"password" binding:"required,min=6" example:"operator123"`
	Role     *Role  `json:"role" form:"role" binding:"omitempty,oneof=admin regular" example:"regular"`
}

type UpdateUserInput struct {
	Name     *string `json:"name" form:"name" binding:"omitempty,min=3,max=100" example:"operator1"`
	Password *string `json:"password" form:"password" binding:"omitempty,min=6" example:"newPass123"`
	Role     *Role   `json:"role" form:"role" binding:"omitempty,oneof=admin regular" example:"admin"`
}

type LoginInput struct {
	Name     string `json:"name" form:"username" binding:"required" example:"admin"`
	Password string `json:"password" form:"password" binding:"required" example:"admin123"`
}
