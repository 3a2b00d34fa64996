package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/studybridge/backend/internal/domain"
	"github.com/studybridge/backend/internal/service"
)

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
		Role     string `json:"role" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	account, err := h.credentials.SignUp(req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.errorResponse(w, r, http.StatusBadRequest, validationErr.Error())
		case errors.Is(err, service.ErrDuplicateAccount):
			h.errorResponse(w, r, http.StatusBadRequest, "Email already exists")
		default:
			h.internalServerError(w, r, err, "Server error")
		}
		return
	}

	// welcome mail goes through the queue; the worker picks it up
	mailMessage := domain.MailMessage{
		Type: "welcome",
		To:   account.Email,
		Data: domain.WelcomeMailData{
			Name: account.Name,
			Role: string(account.Role),
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err, "Server error")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err, "Server error")
		return
	}

	h.writeJSON(w, r, http.StatusCreated, map[string]string{"message": "User registered successfully!"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	account, err := h.credentials.Login(req.Email, req.Password)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.errorResponse(w, r, http.StatusBadRequest, validationErr.Error())
		case errors.Is(err, service.ErrUnknownAccount):
			h.errorResponse(w, r, http.StatusBadRequest, "User does not exist.")
		case errors.Is(err, service.ErrBadCredential):
			h.errorResponse(w, r, http.StatusUnauthorized, "Incorrect password.")
		default:
			h.internalServerError(w, r, err, "Internal Server Error")
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"message": "Login successful!",
		"user":    account,
	})
}
