package validators

import (
	"regexp"

	"eventPlanner/internal/errs"
	"eventPlanner/internal/models"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// At least 8 characters drawn from letters, digits and @#$%^&+=!.
	passwordPattern = regexp.MustCompile(`^[0-9a-zA-Z@#$%^&+=!]{8,}$`)
)

func ValidateUser(user *models.User) error {
	if user == nil {
		return ValidationErrors{errs.ErrInvalidUser}
	}

	var errors ValidationErrors
	if user.Email == "" || !ValidateEmail(user.Email) {
		errors = append(errors, errs.ErrInvalidEmail)
	}
	if !ValidatePassword(user.Password) {
		errors = append(errors, errs.ErrInvalidPassword)
	}
	if len(user.FirstName) < 2 {
		errors = append(errors, errs.ErrFirstName)
	}
	if len(user.LastName) < 2 {
		errors = append(errors, errs.ErrLastName)
	}
	return errors.Err()
}

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidatePassword(password string) bool {
	return passwordPattern.MatchString(password)
}
