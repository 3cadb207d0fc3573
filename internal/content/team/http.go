package team

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

	router.Get("/", handler.listMembers)
	router.Post("/", handler.createMember)
	router.Get("/{id}", handler.getMember)
	router.Put("/{id}", handler.updateMember)
	router.Delete("/{id}", handler.deleteMember)
	router.Patch("/{id}/toggle", handler.toggleMember)

	return router
}

func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
	members, err := handler.service.ListActive(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, members)
}

func (handler *Handler) listMembers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	members, total, err := handler.service.ListMembers(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, members, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getMember(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	member, err := handler.service.GetMember(request.Context(), memberID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, member)
}

func (handler *Handler) createMember(writer http.ResponseWriter, request *http.Request) {
	var input Member
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateMember(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateMember(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Member
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateMember(request.Context(), memberID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteMember(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteMember(request.Context(), memberID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) toggleMember(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	member, err := handler.service.ToggleActive(request.Context(), memberID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, member)
}
