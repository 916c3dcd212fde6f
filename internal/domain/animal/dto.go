package animal

type CreateAnimalInput struct {
	Name                 string `json:"name" binding:"required" example:"Pamuk"`
	ResponsibleUserID    uint   `json:"responsible_user_id" binding:"required" example:"1"`
	OwnerName            string `json:"owner_name" binding:"required" example:"Ayse Demir"`
	OwnerContactNumber   string `json:"owner_contact_number" binding:"required" example:"+90 555 987 6543"`
	OwnerContactEmail    string `json:"owner_contact_email" binding:"required,email" example:"ayse@example.com"`
	FormGenerationPeriod int    `json:"form_generation_period" example:"3"`
}

// UpdateAnimalInput carries the user-editable fields. Mirror fields are
// maintained by reconciliation and cannot be set here.
type UpdateAnimalInput struct {
	Name                 *string `json:"name" example:"Pamuk"`
	ResponsibleUserID    *uint   `json:"responsible_user_id" example:"2"`
	OwnerName            *string `json:"owner_name" example:"Ayse Demir"`
	OwnerContactNumber   *string `json:"owner_contact_number" example:"+90 555 987 6543"`
	OwnerContactEmail    *string `json:"owner_contact_email" binding:"omitempty,email" example:"ayse@example.com"`
	FormGenerationPeriod *int    `json:"form_generation_period" example:"6"`
}

type ListParams struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}
