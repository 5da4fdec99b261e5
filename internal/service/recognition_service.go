package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"plate-check-service/internal/client"
	"plate-check-service/internal/model"
	"plate-check-service/internal/utils"
)

var ErrMissingAPIKey = errors.New("OCR_API_KEY not set")

// Settings is read on every request.
type Settings interface {
	OCRAPIKey() string
	AllowedPlates() string
}

type OCRClient interface {
	ParseImage(ctx context.Context, apiKey, base64Image string) (*client.OCRResult, error)
}

type PlateSource interface {
	ListPlateNumbers(ctx context.Context) ([]string, error)
}

type RecognitionService struct {
	settings  Settings
	ocr       OCRClient
	plateRepo PlateSource
}

// NewRecognitionService creates the service. plateRepo may be nil, in which
// case only the configured allow-list is consulted.
func NewRecognitionService(settings Settings, ocr OCRClient, plateRepo PlateSource) *RecognitionService {
	return &RecognitionService{
		settings:  settings,
		ocr:       ocr,
		plateRepo: plateRepo,
	}
}

func (s *RecognitionService) Recognize(ctx context.Context, image []byte) (*model.RecognitionResult, error) {
	encoded := base64.StdEncoding.EncodeToString(image)

	apiKey := s.settings.OCRAPIKey()
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	ocrResult, err := s.ocr.ParseImage(ctx, apiKey, encoded)
	if err != nil {
		return nil, err
	}

	raw := ocrResult.Text()
	plate := utils.NormalizePlate(raw)

	allowList, err := s.loadAllowList(ctx)
	if err != nil {
		return nil, err
	}

	return &model.RecognitionResult{
		Plate:   plate,
		Allowed: allowList.Contains(plate),
		Raw:     raw,
	}, nil
}

func (s *RecognitionService) loadAllowList(ctx context.Context) (AllowList, error) {
	list := ParseAllowList(s.settings.AllowedPlates())
	if s.plateRepo == nil {
		return list, nil
	}

	stored, err := s.plateRepo.ListPlateNumbers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load allowed plates: %w", err)
	}
	list.add(stored...)
	return list, nil
}
