package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrCloudinaryNotConfigured 表示上传所需的环境变量缺失或不完整。
var ErrCloudinaryNotConfigured = errors.New("Cloudinary environment variables are not fully configured. Set CLOUDINARY_URL or CLOUDINARY_CLOUD_NAME/CLOUDINARY_API_KEY/CLOUDINARY_API_SECRET.")

// ErrCloudinaryPlaceholderCloud 表示 cloud name 还停留在占位值上。
var ErrCloudinaryPlaceholderCloud = errors.New(`CLOUDINARY_CLOUD_NAME is set to "Root", which is invalid. Use your real Cloudinary cloud name from the Cloudinary dashboard.`)

// CloudinaryConfig holds the resolved media host account settings.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// UploadSignature authorizes a direct browser upload without exposing the
// account secret. The signature covers exactly {folder, timestamp}; the
// browser must submit the same parameter set or the vendor rejects it.
type UploadSignature struct {
	CloudName string
	APIKey    string
	Timestamp int64
	Signature string
	Folder    string
}

// UploadedImage describes the result of a server-mediated upload.
type UploadedImage struct {
	PublicID  string
	SecureURL string
	Width     *int
	Height    *int
	Format    *string
	Bytes     *int64
}

// MediaUploader abstracts the media host for handler tests.
type MediaUploader interface {
	SignUpload(folder string, timestamp int64) (UploadSignature, error)
	UploadImage(ctx context.Context, file io.Reader, folder string) (UploadedImage, error)
}

// CloudinaryService signs and performs uploads against the Cloudinary API.
// Configuration is resolved from the environment on every call so that a
// misconfigured deployment surfaces as a request error instead of a crash.
type CloudinaryService struct{}

// NewCloudinaryService creates a CloudinaryService instance.
func NewCloudinaryService() *CloudinaryService {
	return &CloudinaryService{}
}

// LoadCloudinaryConfig resolves the account settings, preferring the single
// CLOUDINARY_URL connection string over the three discrete variables.
func LoadCloudinaryConfig() (CloudinaryConfig, error) {
	if cfg, ok := cloudinaryConfigFromURL(sanitizeEnvValue(os.Getenv("CLOUDINARY_URL"))); ok {
		return validateCloudinaryConfig(cfg)
	}

	cfg := CloudinaryConfig{
		CloudName: sanitizeEnvValue(os.Getenv("CLOUDINARY_CLOUD_NAME")),
		APIKey:    sanitizeEnvValue(os.Getenv("CLOUDINARY_API_KEY")),
		APISecret: sanitizeEnvValue(os.Getenv("CLOUDINARY_API_SECRET")),
	}
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return CloudinaryConfig{}, ErrCloudinaryNotConfigured
	}
	return validateCloudinaryConfig(cfg)
}

// SignUpload produces the signed parameter set for a direct upload.
func (s *CloudinaryService) SignUpload(folder string, timestamp int64) (UploadSignature, error) {
	cfg, err := LoadCloudinaryConfig()
	if err != nil {
		return UploadSignature{}, err
	}

	params := url.Values{}
	params.Set("folder", folder)
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(params, cfg.APISecret)
	if err != nil {
		return UploadSignature{}, fmt.Errorf("sign upload parameters: %w", err)
	}

	return UploadSignature{
		CloudName: cfg.CloudName,
		APIKey:    cfg.APIKey,
		Timestamp: timestamp,
		Signature: signature,
		Folder:    folder,
	}, nil
}

// UploadImage streams an image to the media host and returns its metadata.
func (s *CloudinaryService) UploadImage(ctx context.Context, file io.Reader, folder string) (UploadedImage, error) {
	cfg, err := LoadCloudinaryConfig()
	if err != nil {
		return UploadedImage{}, err
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return UploadedImage{}, fmt.Errorf("create cloudinary client: %w", err)
	}
	cld.Config.URL.Secure = true

	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return UploadedImage{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	if result.Error.Message != "" {
		return UploadedImage{}, errors.New(result.Error.Message)
	}

	uploaded := UploadedImage{
		PublicID:  result.PublicID,
		SecureURL: result.SecureURL,
	}
	if result.Width > 0 {
		width := result.Width
		uploaded.Width = &width
	}
	if result.Height > 0 {
		height := result.Height
		uploaded.Height = &height
	}
	if result.Format != "" {
		format := result.Format
		uploaded.Format = &format
	}
	if result.Bytes > 0 {
		bytes := int64(result.Bytes)
		uploaded.Bytes = &bytes
	}
	return uploaded, nil
}

// sanitizeEnvValue 去掉值两端的空白与误带的引号（复制粘贴 .env 的常见事故）。
func sanitizeEnvValue(value string) string {
	value = strings.TrimSpace(value)
	value = strings.Trim(value, `'"`)
	return value
}

func cloudinaryConfigFromURL(raw string) (CloudinaryConfig, bool) {
	if raw == "" {
		return CloudinaryConfig{}, false
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme != "cloudinary" || parsed.User == nil {
		return CloudinaryConfig{}, false
	}

	apiSecret, _ := parsed.User.Password()
	cfg := CloudinaryConfig{
		CloudName: parsed.Hostname(),
		APIKey:    parsed.User.Username(),
		APISecret: apiSecret,
	}
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return CloudinaryConfig{}, false
	}
	return cfg, true
}

func validateCloudinaryConfig(cfg CloudinaryConfig) (CloudinaryConfig, error) {
	if strings.EqualFold(cfg.CloudName, "root") {
		return CloudinaryConfig{}, ErrCloudinaryPlaceholderCloud
	}
	return cfg, nil
}
