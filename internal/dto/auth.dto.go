package dto

import "github.com/vazqueztomas/barbershop/internal/models"

type Token struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}
