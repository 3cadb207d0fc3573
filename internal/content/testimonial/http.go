package testimonial

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

	router.Get("/", handler.listTestimonials)
	router.Post("/", handler.createTestimonial)
	router.Get("/{id}", handler.getTestimonial)
	router.Put("/{id}", handler.updateTestimonial)
	router.Delete("/{id}", handler.deleteTestimonial)
	router.Patch("/{id}/toggle", handler.toggleTestimonial)

	return router
}

func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
	testimonials, err := handler.service.ListActive(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, testimonials)
}

func (handler *Handler) listTestimonials(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	testimonials, total, err := handler.service.ListTestimonials(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, testimonials, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getTestimonial(writer http.ResponseWriter, request *http.Request) {
	testimonialID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	testimonial, err := handler.service.GetTestimonial(request.Context(), testimonialID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, testimonial)
}

func (handler *Handler) createTestimonial(writer http.ResponseWriter, request *http.Request) {
	var input Testimonial
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateTestimonial(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateTestimonial(writer http.ResponseWriter, request *http.Request) {
	testimonialID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Testimonial
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateTestimonial(request.Context(), testimonialID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteTestimonial(writer http.ResponseWriter, request *http.Request) {
	testimonialID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteTestimonial(request.Context(), testimonialID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) toggleTestimonial(writer http.ResponseWriter, request *http.Request) {
	testimonialID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	testimonial, err := handler.service.ToggleActive(request.Context(), testimonialID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, testimonial)
}
