// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-av-booking/models"
)

// User field names.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldUsername = "username"
	FieldRole     = "role"
	FieldPassword = "password"
)

// UserValidator validates [models.NewUser], [models.UserUpdate] and
// [models.Credentials].
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewUser:
		return v.validate(userInput{name: value.Name, username: value.Username, role: value.Role, password: value.Password},
			defaultFields(fields, FieldName, FieldUsername, FieldRole, FieldPassword))
	case *models.NewUser:
		return v.Validate(ctx, *value, fields...)
	case models.UserUpdate:
		return v.validate(userInput{id: value.ID, name: value.Name, role: value.Role},
			defaultFields(fields, FieldID, FieldName, FieldRole))
	case *models.UserUpdate:
		return v.Validate(ctx, *value, fields...)
	case models.Credentials:
		return v.validate(userInput{username: value.Username, password: value.Password},
			defaultFields(fields, FieldUsername, FieldPassword))
	case *models.Credentials:
		return v.Validate(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

type userInput struct {
	id       int64
	name     string
	username string
	role     models.Role
	password string
}

func defaultFields(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func (v *UserValidator) validate(in userInput, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldID:
			if in.id <= 0 {
				return invalid(f, ErrInvalidID)
			}
		case FieldName:
			if strings.TrimSpace(in.name) == "" {
				return invalid(f, ErrRequired)
			}
		case FieldUsername:
			username := strings.TrimSpace(in.username)
			if username == "" {
				return invalid(f, ErrRequired)
			}
			if strings.ContainsAny(username, " \t") {
				return invalid(f, ErrInvalidUsername)
			}
		case FieldRole:
			if in.role == "" {
				return invalid(f, ErrRequired)
			}
			if !in.role.Valid() {
				return invalid(f, ErrInvalidRole)
			}
		case FieldPassword:
			if in.password == "" {
				return invalid(f, ErrRequired)
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}
