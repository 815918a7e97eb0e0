package resolver

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode unmarshals the resolved settings into target, expanding dotted
// key paths into nested struct fields. Fields map by `mapstructure` tag.
// String values coerce weakly into numeric and boolean fields so sources
// collected with parsing disabled still decode.
func (s *Settings) Decode(target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build settings decoder: %w", err)
	}
	if err := dec.Decode(s.Interface()); err != nil {
		return fmt.Errorf("failed to decode settings: %w", err)
	}
	return nil
}

// DecodeValidated decodes into target and then runs struct validation
// against its `validate` tags.
func (s *Settings) DecodeValidated(target any) error {
	if err := s.Decode(target); err != nil {
		return err
	}
	if err := validate.Struct(target); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}
	return nil
}
