package handlers

import (
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateRegistration(req RegisterRequest) []ValidationError {
	errs := []ValidationError{}
	if len(strings.TrimSpace(req.Username)) < 3 {
		errs = append(errs, ValidationError{Field: "Username", Description: "Username must have at least 3 characters"})
	}
	if len(req.Password) < 6 {
		errs = append(errs, ValidationError{Field: "Password", Description: "Password must have at least 6 characters"})
	}
	if req.Email != "" && !validEmail(req.Email) {
		errs = append(errs, ValidationError{Field: "Email", Description: "Email is invalid"})
	}
	return errs
}

func validateProfile(req ProfileRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if !validEmail(req.Email) {
		errs = append(errs, ValidationError{Field: "Email", Description: "Email is invalid"})
	}
	return errs
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
