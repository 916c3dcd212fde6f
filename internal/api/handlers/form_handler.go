package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/adoption-tracker/internal/application"
	"github.com/linskybing/adoption-tracker/internal/domain/form"
	"github.com/linskybing/adoption-tracker/pkg/response"
	"github.com/linskybing/adoption-tracker/pkg/utils"
)

// SweepTrigger runs the periodic generator on demand, joining a sweep that is
// already in flight.
type SweepTrigger interface {
	TriggerNow(ctx context.Context) (application.SweepResult, error)
}

type FormHandler struct {
	service *application.FormService
	trigger SweepTrigger
}

func NewFormHandler(service *application.FormService, trigger SweepTrigger) *FormHandler {
	return &FormHandler{service: service, trigger: trigger}
}

// CreateForm godoc
// @Summary Create a form for an animal
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body form.CreateFormDTO true "Animal to create the form for"
// @Success 201 {object} form.Form
// @Success 200 {object} response.WarningResponse "Form created, status sync failed"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Animal not found"
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var input form.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	f, err := h.service.CreateFormForAnimal(c.Request.Context(), utils.ActorFromContext(c), input.AnimalID)
	respond(c, http.StatusCreated, f, err)
}

// GetForm godoc
// @Summary Get form by ID
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} form.Form
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	f, err := h.service.GetForm(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// GetFormsByIDs godoc
// @Summary Fetch several forms at once
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body form.FormIDsDTO true "Form ids"
// @Success 200 {array} form.Form
// @Router /forms/by-ids [post]
func (h *FormHandler) GetFormsByIDs(c *gin.Context) {
	var input form.FormIDsDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	forms, err := h.service.GetFormsByIDs(c.Request.Context(), input.FormIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

// ListFormsByAnimal godoc
// @Summary List the forms of an animal
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param animal_id path int true "Animal ID"
// @Success 200 {array} form.Form
// @Failure 404 {object} response.ErrorResponse "Animal not found"
// @Router /forms/animal/{animal_id} [get]
func (h *FormHandler) ListFormsByAnimal(c *gin.Context) {
	animalID, err := utils.ParseIDParam(c, "animal_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid animal id"})
		return
	}

	forms, err := h.service.ListFormsByAnimal(c.Request.Context(), animalID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

// ListForms godoc
// @Summary List forms by status
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param status query string true "created, sent, filled or controlled"
// @Success 200 {array} form.Form
// @Failure 400 {object} response.ErrorResponse "Unknown status"
// @Router /forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "status query parameter is required"})
		return
	}

	forms, err := h.service.ListFormsByStatus(c.Request.Context(), form.FormStatus(status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

// ListPendingSend godoc
// @Summary Forms created but not yet sent
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Success 200 {array} form.Form
// @Router /forms/pending-send [get]
func (h *FormHandler) ListPendingSend(c *gin.Context) {
	h.list(c, h.service.ListFormsPendingSend)
}

// ListPendingControl godoc
// @Summary Filled forms awaiting review
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Success 200 {array} form.Form
// @Router /forms/pending-control [get]
func (h *FormHandler) ListPendingControl(c *gin.Context) {
	h.list(c, h.service.ListFormsPendingControl)
}

// ListPendingFill godoc
// @Summary Sent forms whose control window is still open
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Success 200 {array} form.Form
// @Router /forms/pending-fill [get]
func (h *FormHandler) ListPendingFill(c *gin.Context) {
	h.list(c, h.service.ListFormsPendingFill)
}

func (h *FormHandler) list(c *gin.Context, fn func(context.Context) ([]form.Form, error)) {
	forms, err := fn(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

// UpdateFormStatus godoc
// @Summary Move a form to another lifecycle status
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param input body form.UpdateFormStatusDTO true "Target status"
// @Success 200 {object} form.Form
// @Success 200 {object} response.WarningResponse "Status applied, animal sync failed"
// @Failure 400 {object} response.ErrorResponse "Invalid status"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [put]
func (h *FormHandler) UpdateFormStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input form.UpdateFormStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if input.FormStatus == nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "form_status is required"})
		return
	}

	f, err := h.service.UpdateFormStatus(c.Request.Context(), utils.ActorFromContext(c), id, *input.FormStatus)
	respond(c, http.StatusOK, f, err)
}

// DeleteForm godoc
// @Summary Delete a form
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Form ID"
// @Success 204 "No Content"
// @Success 200 {object} response.WarningResponse "Deleted, animal sync failed"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	err = h.service.DeleteForm(c.Request.Context(), utils.ActorFromContext(c), id)
	respond(c, http.StatusNoContent, nil, err)
}

// GeneratePeriodic godoc
// @Summary Run the periodic form generator now
// @Description Joins a sweep that is already running instead of starting a second one.
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Success 200 {object} application.SweepResult
// @Failure 409 {object} response.ErrorResponse "Another replica is sweeping"
// @Failure 500 {object} response.ErrorResponse "Sweep could not list animals"
// @Router /forms/generate-periodic [post]
func (h *FormHandler) GeneratePeriodic(c *gin.Context) {
	// The sweep may be shared with a scheduled tick, so a client disconnect
	// must not cut it short.
	res, err := h.trigger.TriggerNow(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
