package handler

import (
	"fmt"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/gdugdh24/lifestyle-connect/internal/matching"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain binding tags to gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	rules := map[string]validator.Func{
		"residency": func(fl validator.FieldLevel) bool {
			return domain.Residency(fl.Field().String()).Valid()
		},
		"gender": func(fl validator.FieldLevel) bool {
			g := domain.Gender(fl.Field().String())
			return g == domain.GenderMale || g == domain.GenderFemale
		},
		"scope": func(fl validator.FieldLevel) bool {
			switch matching.Scope(fl.Field().String()) {
			case matching.ScopeHomeCity, matching.ScopeHomeCountry, matching.ScopeGlobal:
				return true
			}
			return false
		},
		"target_origin": func(fl validator.FieldLevel) bool {
			o := matching.TargetOrigin(fl.Field().String())
			return o == matching.OriginSameClass || o == matching.OriginOtherClass
		},
		"post_kind": func(fl validator.FieldLevel) bool {
			return domain.PostKind(fl.Field().String()).Valid()
		},
		"toggle": func(fl validator.FieldLevel) bool {
			_, ok := matching.Toggle(fl.Field().String()).Axis()
			return ok
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}
