package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventPlanner/internal/errs"
	"eventPlanner/internal/models"
	"eventPlanner/internal/msgs"
	"eventPlanner/internal/realtime"
	"eventPlanner/internal/utils"
	"eventPlanner/internal/validators"

	"github.com/gin-gonic/gin"
)

const contextUserID = "user_id"

// statusFor maps a service error onto the HTTP status the API reports.
func statusFor(err error) int {
	var verrs validators.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound),
		errors.Is(err, errs.ErrNotSeated),
		errors.Is(err, errs.ErrNoVendor):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized),
		errors.Is(err, errs.ErrInvalidToken),
		errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrUserAlreadyExists),
		errors.Is(err, errs.ErrBoothAlreadyUsed),
		errors.Is(err, errs.ErrBoothOccupied),
		errors.Is(err, errs.ErrSeatTaken):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidParams),
		errors.Is(err, errs.ErrInvalidDomain),
		errors.Is(err, errs.ErrInvalidRequestBody),
		errors.Is(err, errs.ErrEmptyFile),
		errors.Is(err, errs.ErrUpdateKind):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorStrings(err error) []string {
	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]string, 0, len(verrs))
		for _, e := range verrs {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

func respondError(ctx *gin.Context, err error) {
	status := statusFor(err)
	message := msgs.MsgOperationFailed
	errorList := errorStrings(err)
	switch status {
	case http.StatusNotFound:
		message = msgs.MsgNotFound
	case http.StatusInternalServerError:
		slog.Error("request failed", "method", ctx.Request.Method, "path", ctx.FullPath(), "error", err)
		errorList = nil
	}
	ctx.AbortWithStatusJSON(status, models.Response{
		Success: false,
		Message: message,
		Errors:  errorList,
	})
}

func respondOK(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    data,
	})
}

// bindJSON binds the body and answers 400 itself on failure.
func bindJSON(ctx *gin.Context, target any) bool {
	if err := ctx.ShouldBindJSON(target); err != nil {
		slog.Debug("binding request body", "path", ctx.FullPath(), "error", err)
		respondError(ctx, errs.ErrInvalidRequestBody)
		return false
	}
	return true
}

// paramIDs parses the named uint path params in order.
func paramIDs(ctx *gin.Context, names ...string) ([]uint, bool) {
	ids := make([]uint, 0, len(names))
	for _, name := range names {
		id, err := utils.ParseID(ctx.Param(name))
		if err != nil {
			respondError(ctx, err)
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

func userIDFromContext(ctx *gin.Context) uint {
	id, _ := ctx.Get(contextUserID)
	userID, _ := id.(uint)
	return userID
}

func domainParam(ctx *gin.Context) (realtime.Domain, bool) {
	domain, err := realtime.ParseDomain(ctx.Param("domain"))
	if err != nil {
		respondError(ctx, err)
		return "", false
	}
	return domain, true
}
