package upload

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/innohub/api/internal/platform/respond"
	"github.com/innohub/api/internal/platform/validate"
)

// maxUploadBytes bounds the in-flight multipart body (10 MiB).
const maxUploadBytes = 10 << 20

type Handler struct {
	relay *Relay
}

func NewHandler(relay *Relay) *Handler {
	return &Handler{relay: relay}
}

// Routes serves the admin upload surface. Authentication and ban checks are
// applied by the parent router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.uploadImage)
	return router
}

func (handler *Handler) uploadImage(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxUploadBytes)

	file, header, err := request.FormFile(imageFieldName)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			respond.Error(writer, request, validate.RequiredError(imageFieldName, "Image file is required"))
			return
		}
		respond.Error(writer, request, validate.RequiredError(imageFieldName, "Invalid multipart payload"))
		return
	}
	defer file.Close()

	url, err := handler.relay.Upload(request.Context(), header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"url": url})
}
