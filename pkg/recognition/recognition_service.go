package recognition

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"recipai-backend/domain"
)

// ConfidenceThreshold is the cut-off above which a predicted label is taken
// into the pre-filled ingredients text.
const ConfidenceThreshold = 0.85

type (
	RecognitionService interface {
		RecognizeIngredients(ctx context.Context, imageFile *multipart.FileHeader) (domain.RecognizeImageResponse, error)
	}

	recognitionService struct {
		apiURL     string
		apiKey     string
		httpClient *http.Client
	}
)

func NewRecognitionService(apiURL, apiKey string) RecognitionService {
	return &recognitionService{
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *recognitionService) RecognizeIngredients(ctx context.Context, imageFile *multipart.FileHeader) (domain.RecognizeImageResponse, error) {
	if s.apiURL == "" {
		return domain.RecognizeImageResponse{}, fmt.Errorf("RECOGNITION_API_URL not configured")
	}

	file, err := imageFile.Open()
	if err != nil {
		return domain.RecognizeImageResponse{}, err
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		return domain.RecognizeImageResponse{}, err
	}

	requestBody := map[string]interface{}{
		"inputs": []map[string]interface{}{
			{
				"data": map[string]interface{}{
					"image": map[string]interface{}{
						"base64": base64.StdEncoding.EncodeToString(fileData),
					},
				},
			},
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return domain.RecognizeImageResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return domain.RecognizeImageResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Key "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.RecognizeImageResponse{}, domain.ErrRecognitionFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.RecognizeImageResponse{}, domain.ErrRecognitionFailed
	}

	var recognitionResp struct {
		Status struct {
			Code        int    `json:"code"`
			Description string `json:"description"`
		} `json:"status"`
		Data struct {
			Concepts []struct {
				Name  string  `json:"name"`
				Value float64 `json:"value"`
			} `json:"concepts"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&recognitionResp); err != nil {
		return domain.RecognizeImageResponse{}, domain.ErrRecognitionFailed
	}

	predictions := make([]domain.Prediction, 0, len(recognitionResp.Data.Concepts))
	var confident []string
	for _, concept := range recognitionResp.Data.Concepts {
		predictions = append(predictions, domain.Prediction{
			Label:      concept.Name,
			Confidence: concept.Value,
		})
		if concept.Value >= ConfidenceThreshold {
			confident = append(confident, concept.Name)
		}
	}

	return domain.RecognizeImageResponse{
		Ingredients: strings.Join(confident, "\n"),
		Predictions: predictions,
	}, nil
}
