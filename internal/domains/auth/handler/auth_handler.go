package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogpost-backend/internal/domains/auth/model"
	"blogpost-backend/internal/domains/auth/service"
	"blogpost-backend/internal/shared/response"
)

type AuthHandler struct {
	service service.ServiceInterface
}

func NewAuthHandler(svc service.ServiceInterface) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login - POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	// an undecodable body counts as empty and fails validation in the service
	if err := c.ShouldBind(&req); err != nil {
		req = model.LoginRequest{}
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, model.ToHTTPStatus(err), model.ToMessage(err))
		return
	}

	response.Token(c, http.StatusOK, model.MsgLoggedIn, res.Token)
}
