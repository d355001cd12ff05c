package payment

import "encoding/json"

// IntentRequest accepts price as a JSON number or numeric string.
type IntentRequest struct {
	Price json.Number `json:"price" validate:"required"`
}

type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
