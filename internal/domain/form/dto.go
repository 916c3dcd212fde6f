package form

type CreateFormDTO struct {
	AnimalID uint `json:"animal_id" binding:"required" example:"1"`
}

type UpdateFormStatusDTO struct {
	FormStatus *string `json:"form_status" example:"sent"`
}

type FormIDsDTO struct {
	FormIDs []uint `json:"form_ids" binding:"required"`
}
