package dto

import "github.com/spec-kit/wellness-service/internal/domain"

// ChatRequest carries one mood statement.
type ChatRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// ChatAnalysisResponse is the derived view returned with each saved chat.
type ChatAnalysisResponse struct {
	Emotion      string              `json:"emotion"`
	Confidence   float64             `json:"confidence"`
	Stress       int                 `json:"stress"`
	Pressure     string              `json:"pressure"`
	BurnoutLevel domain.BurnoutLevel `json:"burnoutLevel"`
}

// ChatResponse confirms the save and carries the analysis.
type ChatResponse struct {
	Message  string               `json:"message"`
	Analysis ChatAnalysisResponse `json:"analysis"`
}
