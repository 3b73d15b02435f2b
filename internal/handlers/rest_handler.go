package handlers

import (
	"net/http"

	"eventPlanner/internal/models"
	"eventPlanner/internal/msgs"
	"eventPlanner/internal/services"

	"github.com/gin-gonic/gin"
)

type RestHandler struct {
	authService *services.AuthenticationService
}

func NewRestHandler(authService *services.AuthenticationService) *RestHandler {
	return &RestHandler{
		authService: authService,
	}
}

// Login godoc
// @Summary      Login user to account
// @Description  Exchanges email and password for a bearer token
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      models.LoginRequestBody  true  "Credentials"
// @Success      200   {object}  models.Response
// @Failure      400   {object}  models.Response
// @Failure      401   {object}  models.Response
// @Router       /auth/login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var loginData models.LoginRequestBody
	if !bindJSON(ctx, &loginData) {
		return
	}

	loginResponse, err := rh.authService.Login(ctx.Request.Context(), &loginData)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, loginResponse)
}

// Register godoc
// @Summary      Create an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      models.User  true  "New user"
// @Success      201   {object}  models.Response
// @Failure      400   {object}  models.Response
// @Failure      409   {object}  models.Response
// @Router       /auth/register [post]
func (rh *RestHandler) Register(ctx *gin.Context) {
	var user models.User
	if !bindJSON(ctx, &user) {
		return
	}

	created, err := rh.authService.Register(ctx.Request.Context(), &user)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgUserCreatedSuccessfully,
		Data:    created.ToUserResponse(),
	})
}
