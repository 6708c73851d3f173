package service

import (
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"

	"eventku_backend/internals/configs"
)

type GoogleProfile struct {
	Email string
	Name  string
}

// VerifyGoogleIDToken memverifikasi ID token Google dan mengembalikan
// profil minimum (email + nama) untuk find-or-create user.
func VerifyGoogleIDToken(idToken string) (*GoogleProfile, error) {
	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "GOOGLE_CLIENT_ID belum diset")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "ID token Google tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Gagal membaca claim ID token")
	}

	name := strings.TrimSpace(claimSet.Name)
	if name == "" {
		name = strings.SplitN(claimSet.Email, "@", 2)[0]
	}
	return &GoogleProfile{Email: claimSet.Email, Name: name}, nil
}
