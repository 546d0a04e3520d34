package catalog

import (
	"reflect"
	"strings"

	"github.com/adiwijaya/warungpos-backend/pkg/db/models"
	"github.com/adiwijaya/warungpos-backend/pkg/enums"
	pkgerrors "github.com/adiwijaya/warungpos-backend/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// MenuDraft is the partially-filled form state for a menu item. It only
// becomes a MenuItem through Build, which rejects incomplete drafts with a
// typed validation error.
type MenuDraft struct {
	ID         string  `json:"id"`
	Name       string  `json:"name" validate:"required,min=1,max=120"`
	CategoryID string  `json:"category_id" validate:"required"`
	Price      int     `json:"price" validate:"gte=0"`
	Stock      int     `json:"stock" validate:"gte=0"`
	Status     string  `json:"status" validate:"required"`
	Image      *string `json:"image,omitempty" validate:"omitempty,url"`
}

// Build validates the draft into a complete MenuItem. A missing id gets a
// generated one; the original terminal supplied short time-derived ids, so
// caller-provided ids stay untouched.
func (d MenuDraft) Build() (*models.MenuItem, error) {
	if err := validate.Struct(d); err != nil {
		return nil, formatValidationErrors(err)
	}

	status, err := enums.ParseMenuStatus(d.Status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid menu status").
			WithDetails(map[string]string{"status": d.Status})
	}

	id := strings.TrimSpace(d.ID)
	if id == "" {
		id = uuid.NewString()
	}

	item := &models.MenuItem{
		ID:         id,
		Name:       strings.TrimSpace(d.Name),
		CategoryID: d.CategoryID,
		Price:      d.Price,
		Stock:      d.Stock,
		Status:     status,
	}
	if d.Image != nil && *d.Image != "" {
		image := *d.Image
		item.Image = &image
	}
	return item, nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "menu draft is incomplete").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "menu draft is incomplete")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must not be negative"
	case "url":
		return "must be a valid URL"
	}
	return "is invalid"
}
