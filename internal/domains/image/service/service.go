package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/Ha-r-i/Picolo-Cafe-Website/config"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/cloudinary"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/s3"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/image/model/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/base64"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/failure"
)

const driverS3 = "s3"

type Image interface {
	Upload(ctx context.Context, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
	Preview(ctx context.Context, req dto.PreviewImageRequest) (dto.PreviewImageResponse, error)
}

type serviceImpl struct {
	cfg        *config.Config
	cloudinary cloudinary.Cloudinary
	s3         s3.S3
	otel       otel.Otel
}

func New(cfg *config.Config, cloudinary cloudinary.Cloudinary, s3 s3.S3, otel otel.Otel) Image {
	return &serviceImpl{
		cfg:        cfg,
		cloudinary: cloudinary,
		s3:         s3,
		otel:       otel,
	}
}

// Upload pushes the image to the configured host and returns its public URL.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	data, err := readFile(req.ImageFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to read image file")

		return res, failure.BadRequestFromString("failed to read image file") // nolint:wrapcheck
	}

	fileName := req.Image.Filename
	contentType := req.Image.Header.Get(constant.RequestHeaderContentType)

	var url string

	if s.cfg.External.ImageStorage.Driver == driverS3 {
		url, err = s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, req.Folder, fileName, contentType, data)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload image to S3")

			return res, fmt.Errorf("failed to upload image to S3: %w", err)
		}
	} else {
		url, err = s.cloudinary.UploadImage(ctx, req.Folder, fileName, contentType, data)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload image to cloudinary")

			return res, mapCloudinaryError(err)
		}
	}

	res.FromModel(url, fileName)

	return res, nil
}

// Preview encodes the image as an inline data URL without touching any host.
func (s *serviceImpl) Preview(ctx context.Context, req dto.PreviewImageRequest) (res dto.PreviewImageResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Preview")
	defer scope.End()
	defer scope.TraceIfError(err)

	data, err := readFile(req.ImageFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to read image file")

		return res, failure.BadRequestFromString("failed to read image file") // nolint:wrapcheck
	}

	contentType := req.Image.Header.Get(constant.RequestHeaderContentType)

	res.FromModel(base64.DataURL(contentType, data), req.Image.Filename)

	return res, nil
}

func readFile(file io.Reader) ([]byte, error) {
	buf := bytes.NewBuffer(nil)

	if _, err := buf.ReadFrom(file); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return buf.Bytes(), nil
}

func mapCloudinaryError(err error) error {
	var uploadErr *cloudinary.UploadError

	switch {
	case errors.Is(err, cloudinary.ErrNotConfigured):
		return failure.InternalError(errors.New("image host is not configured: cloud name and upload preset are required")) // nolint:wrapcheck
	case errors.Is(err, context.DeadlineExceeded):
		return failure.GatewayTimeout("image upload timed out") // nolint:wrapcheck
	case errors.As(err, &uploadErr):
		return failure.FromCode(uploadErr.StatusCode, uploadErr.Message) // nolint:wrapcheck
	default:
		return fmt.Errorf("failed to upload image: %w", err)
	}
}
