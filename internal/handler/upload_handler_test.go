package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/cornerstone/internal/service"
	"github.com/gin-gonic/gin"
)

// uploaderStub 替代真实的媒体托管客户端，记录收到的参数。
type uploaderStub struct {
	signature service.UploadSignature
	signErr   error
	uploaded  service.UploadedImage
	uploadErr error

	signedFolder   string
	uploadedFolder string
	uploadedBytes  int
}

func (s *uploaderStub) SignUpload(folder string, timestamp int64) (service.UploadSignature, error) {
	s.signedFolder = folder
	if s.signErr != nil {
		return service.UploadSignature{}, s.signErr
	}
	signature := s.signature
	signature.Folder = folder
	signature.Timestamp = timestamp
	return signature, nil
}

func (s *uploaderStub) UploadImage(ctx context.Context, file io.Reader, folder string) (service.UploadedImage, error) {
	s.uploadedFolder = folder
	body, err := io.ReadAll(file)
	if err != nil {
		return service.UploadedImage{}, err
	}
	s.uploadedBytes = len(body)
	if s.uploadErr != nil {
		return service.UploadedImage{}, s.uploadErr
	}
	return s.uploaded, nil
}

func newUploadRouter(api *API) *gin.Engine {
	r := gin.New()
	r.POST("/api/admin/cloudinary-signature", api.CloudinarySignature)
	r.POST("/api/admin/uploads", api.UploadImage)
	return r
}

// multipartFile 构造带指定 Content-Type 的 multipart 请求体。
func multipartFile(t *testing.T, contentType string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="upload.bin"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write part: %v", err)
	}
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			t.Fatalf("failed to write field: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestCloudinarySignatureDefaultsFolder(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	stub := &uploaderStub{signature: service.UploadSignature{
		CloudName: "my-cloud",
		APIKey:    "my-key",
		Signature: "abc123",
	}}
	api.uploads = stub
	r := newUploadRouter(api)

	w := performJSON(r, http.MethodPost, "/api/admin/cloudinary-signature", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if stub.signedFolder != "corner-stone/admin" {
		t.Fatalf("empty body must sign the default folder, got %q", stub.signedFolder)
	}

	var env struct {
		Success   bool   `json:"success"`
		CloudName string `json:"cloudName"`
		APIKey    string `json:"apiKey"`
		Timestamp int64  `json:"timestamp"`
		Signature string `json:"signature"`
		Folder    string `json:"folder"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !env.Success || env.CloudName != "my-cloud" || env.APIKey != "my-key" || env.Signature != "abc123" {
		t.Fatalf("unexpected envelope: %s", w.Body.String())
	}
	if env.Folder != "corner-stone/admin" {
		t.Fatalf("expected default folder in response, got %q", env.Folder)
	}
	if env.Timestamp <= 0 {
		t.Fatalf("expected a unix timestamp, got %d", env.Timestamp)
	}
}

func TestCloudinarySignatureCustomFolder(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	stub := &uploaderStub{signature: service.UploadSignature{Signature: "abc123"}}
	api.uploads = stub
	r := newUploadRouter(api)

	w := performJSON(r, http.MethodPost, "/api/admin/cloudinary-signature", `{"folder":" corner-stone/custom "}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if stub.signedFolder != "corner-stone/custom" {
		t.Fatalf("expected trimmed custom folder, got %q", stub.signedFolder)
	}
}

func TestCloudinarySignatureUnconfigured(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	api.uploads = &uploaderStub{signErr: service.ErrCloudinaryNotConfigured}
	r := newUploadRouter(api)

	w := performJSON(r, http.MethodPost, "/api/admin/cloudinary-signature", "")
	assertErrorResponse(t, w, http.StatusInternalServerError, service.ErrCloudinaryNotConfigured.Error())
}

func TestUploadImageRequiresFile(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	r := newUploadRouter(api)

	w := performJSON(r, http.MethodPost, "/api/admin/uploads", "")
	assertErrorResponse(t, w, http.StatusBadRequest, "Image file is required")
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	stub := &uploaderStub{}
	api.uploads = stub
	r := newUploadRouter(api)

	body, contentType := multipartFile(t, "text/plain", []byte("not an image"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := serve(r, req)

	assertErrorResponse(t, w, http.StatusBadRequest, "Only image files are supported")
	if stub.uploadedBytes != 0 {
		t.Fatal("rejected files must never reach the uploader")
	}
}

func TestUploadImageSuccess(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	width, height := 800, 600
	format := "png"
	size := int64(4)
	stub := &uploaderStub{uploaded: service.UploadedImage{
		PublicID:  "corner-stone/posts/abc123",
		SecureURL: "https://res.example.com/image/upload/abc123.png",
		Width:     &width,
		Height:    &height,
		Format:    &format,
		Bytes:     &size,
	}}
	api.uploads = stub
	r := newUploadRouter(api)

	body, contentType := multipartFile(t, "image/png", []byte("data"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := serve(r, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if stub.uploadedFolder != "corner-stone/posts" {
		t.Fatalf("expected default upload folder, got %q", stub.uploadedFolder)
	}
	if stub.uploadedBytes != 4 {
		t.Fatalf("file content must be streamed to the uploader, got %d bytes", stub.uploadedBytes)
	}

	var env struct {
		Success bool `json:"success"`
		Upload  struct {
			PublicID  string  `json:"publicId"`
			SecureURL string  `json:"secureUrl"`
			Width     *int    `json:"width"`
			Height    *int    `json:"height"`
			Format    *string `json:"format"`
			Bytes     *int64  `json:"bytes"`
		} `json:"upload"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !env.Success || env.Upload.PublicID != "corner-stone/posts/abc123" {
		t.Fatalf("unexpected envelope: %s", w.Body.String())
	}
	if env.Upload.Width == nil || *env.Upload.Width != 800 || env.Upload.Format == nil || *env.Upload.Format != "png" {
		t.Fatalf("metadata must round-trip: %s", w.Body.String())
	}
}

func TestUploadImageCustomFolderField(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	stub := &uploaderStub{uploaded: service.UploadedImage{
		PublicID:  "corner-stone/custom/abc",
		SecureURL: "https://res.example.com/abc.png",
	}}
	api.uploads = stub
	r := newUploadRouter(api)

	body, contentType := multipartFile(t, "image/jpeg", []byte("data"), map[string]string{"folder": "corner-stone/custom"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := serve(r, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if stub.uploadedFolder != "corner-stone/custom" {
		t.Fatalf("expected the form folder to win, got %q", stub.uploadedFolder)
	}
}

func TestUploadImageMissingURL(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	api.uploads = &uploaderStub{uploaded: service.UploadedImage{PublicID: "abc"}}
	r := newUploadRouter(api)

	body, contentType := multipartFile(t, "image/png", []byte("data"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := serve(r, req)

	assertErrorResponse(t, w, http.StatusInternalServerError, "Cloudinary did not return a URL")
}
