package handler

import (
	"errors"
	"net/http"

	"github.com/cornerstone/internal/service"
	"github.com/gin-gonic/gin"
)

type contactPayload struct {
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Whatsapp string `json:"whatsapp"`
	Email    string `json:"email"`
	Services string `json:"services"`
	Message  string `json:"message"`
}

// SubmitContact 公开接口：把联系表单转发到外部 webhook，并如实上报对方的
// 处理结果。
func (a *API) SubmitContact(c *gin.Context) {
	var payload contactPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	if payload.Name == "" || payload.Email == "" || payload.Message == "" {
		respondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	err := a.contact.Forward(c.Request.Context(), service.ContactLead{
		Name:     payload.Name,
		Brand:    payload.Brand,
		Whatsapp: payload.Whatsapp,
		Email:    payload.Email,
		Services: payload.Services,
		Message:  payload.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrWebhookNotConfigured) {
			respondError(c, http.StatusInternalServerError, "Server configuration error. Please contact the administrator.")
			return
		}
		respondError(c, http.StatusInternalServerError, errorMessage(err, "Failed to save to Google Sheets"))
		return
	}

	respondOK(c, gin.H{"message": "Form submitted successfully and saved to Google Sheets"})
}
