package firebase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// The admin SDK cannot verify a password, so email/password sign-in goes
// through the Identity Toolkit REST endpoint keyed by the project's web API
// key, the same call the web client library makes.
const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword?key=%s"

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken string `json:"idToken"`
	LocalID string `json:"localId"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (f *FirebaseAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	payload, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(signInEndpoint, f.apiKey)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error != nil {
			return "", fmt.Errorf("sign-in failed: %s", result.Error.Message)
		}
		return "", fmt.Errorf("sign-in failed with status %d", resp.StatusCode)
	}

	return result.IDToken, nil
}
