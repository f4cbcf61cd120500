package domain

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const maxNameLength = 100

// ValidateCreate requires every field to be present and well-formed.
// The first offending field, in name, views, likes order, is reported.
func ValidateCreate(f VideoFields) error {
	return validateFields(f, true)
}

// ValidateUpdate checks only the supplied fields. An empty set is valid.
func ValidateUpdate(f VideoFields) error {
	return validateFields(f, false)
}

func validateFields(f VideoFields, required bool) error {
	checks := []struct {
		field string
		value interface{}
		rules []validation.Rule
	}{
		{FieldName, f.Name, nameRules()},
		{FieldViews, f.Views, countRules()},
		{FieldLikes, f.Likes, countRules()},
	}

	for _, c := range checks {
		rules := c.rules
		if required {
			rules = append([]validation.Rule{validation.NotNil.Error("is required")}, rules...)
		}
		if err := validation.Validate(c.value, rules...); err != nil {
			return &ValidationError{Field: c.field, Reason: err.Error()}
		}
	}

	return nil
}

func nameRules() []validation.Rule {
	return []validation.Rule{
		validation.NilOrNotEmpty.Error("must not be empty"),
		validation.RuneLength(0, maxNameLength).Error("must be at most 100 characters"),
	}
}

func countRules() []validation.Rule {
	return []validation.Rule{
		validation.Min(int64(0)).Error("must be non-negative"),
	}
}
