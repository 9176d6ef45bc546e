package image

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/image/model/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/image/service"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/validator"
	"github.com/Ha-r-i/Picolo-Cafe-Website/transport/http/response"
)

type Handler struct {
	service service.Image
	otel    otel.Otel
}

func New(service service.Image, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/images", func(routerGroup chi.Router) {
		routerGroup.Post("/upload", handler.UploadImage)
		routerGroup.Post("/preview", handler.PreviewImage)
	})
}

// UploadImage pushes an image to the configured host.
// @Summary Upload an image
// @Description Upload an image to the configured image host and return its public URL.
// @Tags Image
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Param folder formData string false "Destination folder on the image host"
// @Success 200 {object} response.Data[dto.UploadImageResponse] "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Failure 504 {object} response.Error
// @Router /v1/images/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
		Folder:    r.FormValue(constant.FormFolder),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate uploaded file")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// PreviewImage encodes an image as an inline data URL.
// @Summary Preview an image
// @Description Encode an image as an inline data URL so the admin panel can preview it before uploading.
// @Tags Image
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to preview"
// @Success 200 {object} response.Data[dto.PreviewImageResponse] "Image encoded successfully"
// @Failure 400 {object} response.Error
// @Router /v1/images/preview [post]
// @Security BearerAuth
func (handler *Handler) PreviewImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PreviewImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.PreviewImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate uploaded file")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Preview(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to preview image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
