package handlers

import (
	"net/http"

	"eventPlanner/internal/errs"
	"eventPlanner/internal/models"
	"eventPlanner/internal/msgs"
	"eventPlanner/internal/services"
	"eventPlanner/internal/utils"

	"github.com/gin-gonic/gin"
)

// MustAuthenticateMiddleware rejects requests without a valid bearer token
// and stores the caller's id under "user_id".
func MustAuthenticateMiddleware(authService *services.AuthenticationService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := authService.Authenticate(utils.BearerToken(ctx.GetHeader("Authorization")))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []string{errs.ErrUnauthorized.Error()},
			})
			return
		}

		ctx.Set(contextUserID, claims.ID)
		ctx.Set("user_email", claims.Email)
		ctx.Next()
	}
}
