package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessRecognizeImage = "image analyzed successfully"
	MessageFailedRecognizeImage  = "failed to analyze image"

	ErrRecognitionFailed = errors.New("recognition service failed")
)

type (
	RecognizeImageRequest struct {
		Image *multipart.FileHeader `json:"-" form:"image" validate:"required"`
	}

	Prediction struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
	}

	// RecognizeImageResponse pre-fills the quick-add form: Ingredients is the
	// newline-joined list of labels above the confidence threshold.
	RecognizeImageResponse struct {
		Ingredients string       `json:"ingredients"`
		Predictions []Prediction `json:"predictions"`
	}
)
