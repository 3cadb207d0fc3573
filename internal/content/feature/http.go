package feature

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

	router.Get("/", handler.listFeatures)
	router.Post("/", handler.createFeature)
	router.Get("/{id}", handler.getFeature)
	router.Put("/{id}", handler.updateFeature)
	router.Delete("/{id}", handler.deleteFeature)
	router.Patch("/{id}/toggle", handler.toggleFeature)

	return router
}

func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
	features, err := handler.service.ListActive(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, features)
}

func (handler *Handler) listFeatures(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	features, total, err := handler.service.ListFeatures(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, features, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getFeature(writer http.ResponseWriter, request *http.Request) {
	featureID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	feature, err := handler.service.GetFeature(request.Context(), featureID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, feature)
}

func (handler *Handler) createFeature(writer http.ResponseWriter, request *http.Request) {
	var input Feature
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateFeature(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateFeature(writer http.ResponseWriter, request *http.Request) {
	featureID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Feature
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateFeature(request.Context(), featureID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteFeature(writer http.ResponseWriter, request *http.Request) {
	featureID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteFeature(request.Context(), featureID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) toggleFeature(writer http.ResponseWriter, request *http.Request) {
	featureID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	feature, err := handler.service.ToggleActive(request.Context(), featureID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, feature)
}
