package trade360

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Rule names reported in ValidationError.Rule.
const (
	RuleRequired   = "required"
	RuleNotBlank   = "not_blank"
	RuleAtLeastOne = "at_least_one"
)

// Tags used by the request rules.
const (
	filledTag      = "required,min=1"
	noBlankElemTag = "dive,notblank"
)

var validate = newValidator()

// newValidator returns the shared validator with the non-standard notblank
// check registered.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return v
}

// filled reports whether value, a slice, is non-nil and non-empty.
func filled(value any) bool {
	return validate.Var(value, filledTag) == nil
}

// ValidationRule is a named check over a request. Check returns a
// *ValidationError when the rule is broken.
type ValidationRule[T any] struct {
	Name  string
	Check func(request T) error
}

// RequestValidator evaluates rules in declaration order and stops at the
// first failure, so the reported message is deterministic.
type RequestValidator[T any] struct {
	rules []ValidationRule[T]
}

// NewRequestValidator creates a validator from rules evaluated in order.
func NewRequestValidator[T any](rules ...ValidationRule[T]) *RequestValidator[T] {
	return &RequestValidator[T]{rules: rules}
}

// Validate returns the error of the first broken rule, or nil. It never
// modifies the request.
func (v *RequestValidator[T]) Validate(request T) error {
	for _, rule := range v.rules {
		if err := rule.Check(request); err != nil {
			return err
		}
	}

	return nil
}

// Required fails with "<field> must be filled." when the slice returned by
// get is empty.
func Required[T any, E any](field string, get func(T) []E) ValidationRule[T] {
	return ValidationRule[T]{
		Name: field + "." + RuleRequired,
		Check: func(request T) error {
			if !filled(get(request)) {
				return &ValidationError{
					Rule:    RuleRequired,
					Field:   field,
					Message: field + " must be filled.",
				}
			}

			return nil
		},
	}
}

// NotBlank fails when any element is empty or whitespace only.
func NotBlank[T any](field string, get func(T) []string) ValidationRule[T] {
	return ValidationRule[T]{
		Name: field + "." + RuleNotBlank,
		Check: func(request T) error {
			if err := validate.Var(get(request), noBlankElemTag); err != nil {
				return &ValidationError{
					Rule:    RuleNotBlank,
					Field:   field,
					Message: field + " cannot contain null, empty, or whitespace values.",
				}
			}

			return nil
		},
	}
}

// AtLeastOne fails when every field of the group is empty. values must
// return one slice per field, in the same order.
func AtLeastOne[T any](fields []string, values func(T) []any) ValidationRule[T] {
	group := strings.Join(fields, ", ")

	return ValidationRule[T]{
		Name: RuleAtLeastOne + "(" + group + ")",
		Check: func(request T) error {
			for _, value := range values(request) {
				if filled(value) {
					return nil
				}
			}

			return &ValidationError{
				Rule:    RuleAtLeastOne,
				Field:   group,
				Message: "At least one of " + group + " must be filled.",
			}
		},
	}
}

var translationsValidator = NewRequestValidator(
	Required("Languages", func(r *GetTranslationsRequest) []string { return r.Languages }),
	NotBlank("Languages", func(r *GetTranslationsRequest) []string { return r.Languages }),
	AtLeastOne(
		[]string{"SportIds", "LocationIds", "LeagueIds", "MarketIds", "ParticipantIds"},
		func(r *GetTranslationsRequest) []any {
			return []any{r.SportIDs, r.LocationIDs, r.LeagueIDs, r.MarketIDs, r.ParticipantIDs}
		},
	),
)

// Validate checks the request before it is sent. A nil request panics.
func (r *GetTranslationsRequest) Validate() error {
	return translationsValidator.Validate(r)
}

var fixtureScheduleValidator = NewRequestValidator(
	AtLeastOne(
		[]string{"SportIds", "LocationIds", "LeagueIds"},
		func(r *GetFixtureScheduleRequest) []any {
			return []any{r.SportIDs, r.LocationIDs, r.LeagueIDs}
		},
	),
)

// Validate checks the request before it is sent. A nil request panics.
func (r *GetFixtureScheduleRequest) Validate() error {
	return fixtureScheduleValidator.Validate(r)
}

var fixtureSubscriptionValidator = NewRequestValidator(
	Required("Fixtures", func(r *FixtureSubscriptionRequest) []int { return r.Fixtures }),
)

// Validate checks the request before it is sent. A nil request panics.
func (r *FixtureSubscriptionRequest) Validate() error {
	return fixtureSubscriptionValidator.Validate(r)
}

var leagueSubscriptionValidator = NewRequestValidator(
	Required("Subscriptions", func(r *LeagueSubscriptionRequest) []LeagueSubscriptionItem { return r.Subscriptions }),
)

// Validate checks the request before it is sent. A nil request panics.
func (r *LeagueSubscriptionRequest) Validate() error {
	return leagueSubscriptionValidator.Validate(r)
}

var competitionSubscriptionValidator = NewRequestValidator(
	Required("Subscriptions", func(r *CompetitionSubscriptionRequest) []CompetitionSubscriptionItem {
		return r.Subscriptions
	}),
)

// Validate checks the request before it is sent. A nil request panics.
func (r *CompetitionSubscriptionRequest) Validate() error {
	return competitionSubscriptionValidator.Validate(r)
}

var manualSuspensionValidator = NewRequestValidator(
	Required("Suspensions", func(r *ChangeManualSuspensionRequest) []Suspension { return r.Suspensions }),
)

// Validate checks the request before it is sent. A nil request panics.
func (r *ChangeManualSuspensionRequest) Validate() error {
	return manualSuspensionValidator.Validate(r)
}
