package pulse

import (
	"github.com/fixure/fixure-backend/internal/domain"
	"github.com/fixure/fixure-backend/internal/validation"
)

// SubmitInput holds the slider values of one pulse check. Dimensions left
// out take their form default.
type SubmitInput struct {
	Responses domain.Responses `json:"responses" validate:"dive,keys,dimension,endkeys,min=1,max=10"`
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	return validation.Struct(i)
}

func (i SubmitInput) responses() domain.Responses {
	out := make(domain.Responses, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		if v, ok := i.Responses.Score(d); ok {
			out[d] = v
			continue
		}
		out[d] = domain.DefaultResponses[d]
	}
	return out
}
