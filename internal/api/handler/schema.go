package handler

import "github.com/habitatmx/realestate-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses (rendered by the central error handler).
type errorResponse struct {
	Message string `json:"message"`
}

// messageResponse is the plain acknowledgement envelope.
type messageResponse struct {
	Message string `json:"message"`
}

type dashboardResponse struct {
	Message  string          `json:"message"`
	Identity domain.Identity `json:"identity"`
}
