package handlers

import (
	"github.com/linskybing/adoption-tracker/internal/application"
	"github.com/linskybing/adoption-tracker/internal/events"
)

type Handlers struct {
	Audit  *AuditHandler
	User   *UserHandler
	Animal *AnimalHandler
	Form   *FormHandler
	Events *EventsHandler
}

func New(svc *application.Services, trigger SweepTrigger, hub *events.Hub) *Handlers {
	return &Handlers{
		Audit:  NewAuditHandler(svc.Audit),
		User:   NewUserHandler(svc.User),
		Animal: NewAnimalHandler(svc.Animal, svc.Form),
		Form:   NewFormHandler(svc.Form, trigger),
		Events: NewEventsHandler(hub),
	}
}
