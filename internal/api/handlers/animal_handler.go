package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/adoption-tracker/internal/application"
	"github.com/linskybing/adoption-tracker/internal/domain/animal"
	"github.com/linskybing/adoption-tracker/pkg/response"
	"github.com/linskybing/adoption-tracker/pkg/utils"
)

var animalLabels = map[string]string{
	"Name":               "name",
	"ResponsibleUserID":  "responsible user id",
	"OwnerName":          "owner name",
	"OwnerContactNumber": "owner contact number",
	"OwnerContactEmail":  "owner contact email",
}

type AnimalHandler struct {
	svc   *application.AnimalService
	forms *application.FormService
}

func NewAnimalHandler(svc *application.AnimalService, forms *application.FormService) *AnimalHandler {
	return &AnimalHandler{svc: svc, forms: forms}
}

// CreateAnimal godoc
// @Summary Register an adopted animal
// @Tags animals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body animal.CreateAnimalInput true "Animal"
// @Success 201 {object} animal.Animal
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Responsible user not found"
// @Router /animals [post]
func (h *AnimalHandler) CreateAnimal(c *gin.Context) {
	var input animal.CreateAnimalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingMessage(err, animalLabels)})
		return
	}

	a, err := h.svc.CreateAnimal(c.Request.Context(), utils.ActorFromContext(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ListAnimals godoc
// @Summary List animals
// @Tags animals
// @Security BearerAuth
// @Produce json
// @Param skip query int false "Offset (default 0)"
// @Param limit query int false "Page size (default 100, max 1000)"
// @Success 200 {array} animal.Animal
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /animals [get]
func (h *AnimalHandler) ListAnimals(c *gin.Context) {
	var params animal.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid paging parameters"})
		return
	}

	animals, err := h.svc.ListAnimals(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, animals)
}

// GetAnimal godoc
// @Summary Get animal by ID
// @Tags animals
// @Security BearerAuth
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {object} animal.Animal
// @Failure 404 {object} response.ErrorResponse "Animal not found"
// @Router /animals/{id} [get]
func (h *AnimalHandler) GetAnimal(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid animal id"})
		return
	}

	a, err := h.svc.GetAnimal(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// UpdateAnimal godoc
// @Summary Update the editable fields of an animal
// @Tags animals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Animal ID"
// @Param input body animal.UpdateAnimalInput true "Fields to change"
// @Success 200 {object} animal.Animal
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Animal or user not found"
// @Router /animals/{id} [put]
func (h *AnimalHandler) UpdateAnimal(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid animal id"})
		return
	}

	var input animal.UpdateAnimalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingMessage(err, animalLabels)})
		return
	}

	a, err := h.svc.UpdateAnimal(c.Request.Context(), utils.ActorFromContext(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAnimal godoc
// @Summary Delete an animal and its forms
// @Tags animals
// @Security BearerAuth
// @Param id path int true "Animal ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse "Animal not found"
// @Router /animals/{id} [delete]
func (h *AnimalHandler) DeleteAnimal(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid animal id"})
		return
	}

	if err := h.svc.DeleteAnimal(c.Request.Context(), utils.ActorFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateForm godoc
// @Summary Create a form for an animal
// @Tags animals
// @Security BearerAuth
// @Produce json
// @Param id path int true "Animal ID"
// @Success 201 {object} form.Form
// @Success 200 {object} response.WarningResponse "Form created, status sync failed"
// @Failure 404 {object} response.ErrorResponse "Animal not found"
// @Router /animals/{id}/create-form [post]
func (h *AnimalHandler) CreateForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid animal id"})
		return
	}

	f, err := h.forms.CreateFormForAnimal(c.Request.Context(), utils.ActorFromContext(c), id)
	respond(c, http.StatusCreated, f, err)
}
