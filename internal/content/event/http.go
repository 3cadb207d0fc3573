package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/innohub/api/internal/platform/request"
	"github.com/innohub/api/internal/platform/respond"
	"github.com/innohub/api/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) PublicRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listActive)
	return router
}

func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listEvents)
	router.Post("/", handler.createEvent)
	router.Get("/{id}", handler.getEvent)
	router.Put("/{id}", handler.updateEvent)
	router.Delete("/{id}", handler.deleteEvent)
	router.Patch("/{id}/toggle", handler.toggleEvent)

	return router
}

func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
	events, err := handler.service.ListActive(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, events)
}

func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	events, total, err := handler.service.ListEvents(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, events, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getEvent(writer http.ResponseWriter, request *http.Request) {
	eventID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.GetEvent(request.Context(), eventID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, event)
}

func (handler *Handler) createEvent(writer http.ResponseWriter, request *http.Request) {
	var input Event
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateEvent(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateEvent(writer http.ResponseWriter, request *http.Request) {
	eventID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Event
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateEvent(request.Context(), eventID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteEvent(writer http.ResponseWriter, request *http.Request) {
	eventID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteEvent(request.Context(), eventID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) toggleEvent(writer http.ResponseWriter, request *http.Request) {
	eventID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.ToggleActive(request.Context(), eventID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, event)
}
