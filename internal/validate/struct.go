package validate

import "github.com/go-playground/validator/v10"

var tags = validator.New()

// StructTags runs validator struct-tag checks on a request body.
func StructTags(v any) error {
	return tags.Struct(v)
}
