package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Ha-r-i/Picolo-Cafe-Website/config"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/cloudinary"
	cloudinaryMocks "github.com/Ha-r-i/Picolo-Cafe-Website/infras/cloudinary/mocks"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel/mocks"
	s3Mocks "github.com/Ha-r-i/Picolo-Cafe-Website/infras/s3/mocks"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/image/model/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/image/service"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/failure"
)

type fakeFile struct {
	*bytes.Reader
}

func (fakeFile) Close() error { return nil }

func imageUpload(name, contentType string, data []byte) (*multipart.FileHeader, multipart.File) {
	header := &multipart.FileHeader{
		Filename: name,
		Size:     int64(len(data)),
		Header:   textproto.MIMEHeader{},
	}
	header.Header.Set(constant.RequestHeaderContentType, contentType)

	return header, fakeFile{bytes.NewReader(data)}
}

func newImageService(t *testing.T, driver string) (service.Image, *cloudinaryMocks.MockCloudinary, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockCloudinary := cloudinaryMocks.NewMockCloudinary(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.External.ImageStorage.Driver = driver
	cfg.External.S3.BucketName = "picolo-assets"

	svc := service.New(cfg, mockCloudinary, mockS3, mockOtel)

	return svc, mockCloudinary, mockS3
}

func TestImageService_Upload_Cloudinary(t *testing.T) {
	svc, mockCloudinary, _ := newImageService(t, "cloudinary")

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantURL   string
	}{
		{
			name: "successful upload returns secure url",
			setupMock: func() {
				mockCloudinary.EXPECT().
					UploadImage(gomock.Any(), "menu", "dish.png", "image/png", gomock.Any()).
					Return("https://res.cloudinary.com/demo/image/upload/dish.png", nil)
			},
			wantURL: "https://res.cloudinary.com/demo/image/upload/dish.png",
		},
		{
			name: "missing configuration maps to internal error",
			setupMock: func() {
				mockCloudinary.EXPECT().
					UploadImage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", cloudinary.ErrNotConfigured)
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "timeout maps to gateway timeout",
			setupMock: func() {
				mockCloudinary.EXPECT().
					UploadImage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", context.DeadlineExceeded)
			},
			wantErr:  true,
			wantCode: http.StatusGatewayTimeout,
		},
		{
			name: "host status passes through",
			setupMock: func() {
				mockCloudinary.EXPECT().
					UploadImage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", &cloudinary.UploadError{StatusCode: http.StatusUnauthorized, Message: "Invalid upload preset"})
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			header, file := imageUpload("dish.png", "image/png", []byte("png-bytes"))
			req := dto.UploadImageRequest{Image: header, ImageFile: file, Folder: "menu"}

			res, err := svc.Upload(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantURL, res.URL)
			assert.Equal(t, "dish.png", res.FileName)
		})
	}
}

func TestImageService_Upload_S3Driver(t *testing.T) {
	svc, _, mockS3 := newImageService(t, "s3")

	mockS3.EXPECT().
		UploadFileBytes(gomock.Any(), "picolo-assets", "menu", "dish.png", "image/png", gomock.Any()).
		Return("https://cdn.picolocafe.in/menu/dish.png", nil)

	header, file := imageUpload("dish.png", "image/png", []byte("png-bytes"))
	req := dto.UploadImageRequest{Image: header, ImageFile: file, Folder: "menu"}

	res, err := svc.Upload(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.picolocafe.in/menu/dish.png", res.URL)
}

func TestImageService_Preview(t *testing.T) {
	svc, _, _ := newImageService(t, "cloudinary")

	header, file := imageUpload("dish.png", "image/png", []byte("png-bytes"))
	req := dto.PreviewImageRequest{Image: header, ImageFile: file}

	res, err := svc.Preview(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "dish.png", res.FileName)
	assert.Contains(t, res.DataURL, "data:image/png;base64,")
}
