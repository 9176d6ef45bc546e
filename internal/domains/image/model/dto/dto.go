package dto

import (
	"mime/multipart"
)

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image"  swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
	Folder    string                `json:"folder" validate:"omitempty,max=100"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

type PreviewImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type PreviewImageResponse struct {
	DataURL  string `json:"data_url"`
	FileName string `json:"file_name"`
}

func (r *PreviewImageResponse) FromModel(dataURL, fileName string) {
	r.DataURL = dataURL
	r.FileName = fileName
}
