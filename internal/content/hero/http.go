package hero

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

// PublicRoutes serves the unauthenticated site surface.
func (handler *Handler) PublicRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listActive)
	return router
}

// AdminRoutes serves the management surface. Authentication and ban checks
// are applied by the parent router.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listHeroes)
	router.Post("/", handler.createHero)
	router.Get("/{id}", handler.getHero)
	router.Put("/{id}", handler.updateHero)
	router.Delete("/{id}", handler.deleteHero)
	router.Patch("/{id}/toggle", handler.toggleHero)

	return router
}

func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
	heroes, err := handler.service.ListActive(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, heroes)
}

func (handler *Handler) listHeroes(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	heroes, total, err := handler.service.ListHeroes(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, heroes, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getHero(writer http.ResponseWriter, request *http.Request) {
	heroID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	hero, err := handler.service.GetHero(request.Context(), heroID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, hero)
}

func (handler *Handler) createHero(writer http.ResponseWriter, request *http.Request) {
	var input Hero
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateHero(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateHero(writer http.ResponseWriter, request *http.Request) {
	heroID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Hero
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateHero(request.Context(), heroID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteHero(writer http.ResponseWriter, request *http.Request) {
	heroID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteHero(request.Context(), heroID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) toggleHero(writer http.ResponseWriter, request *http.Request) {
	heroID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	hero, err := handler.service.ToggleActive(request.Context(), heroID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, hero)
}
