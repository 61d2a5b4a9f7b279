package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eiderao/novva-recruit/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	resumeBucket           = "resumes"
	signedURLExpirySeconds = 60
)

type StorageServiceInterface interface {
	SignedResumeURL(ctx context.Context, filePath string) (string, error)
}

// StorageService signs short-lived download links for resumes kept in the
// Supabase Storage bucket. Only authenticated recruiters ever reach this.
type StorageService struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

func NewStorageService() *StorageService {
	cfg := config.LoadSupabaseConfig()
	return &StorageService{
		client:  resty.New().SetBaseURL(cfg.URL),
		baseURL: cfg.URL,
		apiKey:  cfg.ServiceKey,
	}
}

func (s *StorageService) SignedResumeURL(ctx context.Context, filePath string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetBody(map[string]any{"expiresIn": signedURLExpirySeconds}).
		Post(fmt.Sprintf("/storage/v1/object/sign/%s/%s", resumeBucket, filePath))
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("storage: sign request failed with status %d", resp.StatusCode())
	}

	signed := gjson.Get(resp.String(), "signedURL").String()
	if signed == "" {
		return "", fmt.Errorf("storage: response carried no signed url")
	}
	return s.baseURL + "/storage/v1" + signed, nil
}
