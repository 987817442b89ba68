package response

import "lumiere-guest-api/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string             `json:"access_token"`
	Guest       *queries.GuestView `json:"guest"`
}
