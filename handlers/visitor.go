package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"estaty360/chat-assistant/config"
	"estaty360/chat-assistant/types"
)

// VisitorFromRequest extracts the visitor id from the widget's bearer token.
// Tokens are widget-issued and anonymous; only the sub claim matters here.
func VisitorFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing Authorization header")
	}

	jwtString := strings.TrimPrefix(authHeader, "Bearer ")
	if jwtString == "" || jwtString == authHeader {
		return "", fmt.Errorf("invalid Authorization header")
	}

	token, _, err := new(jwt.Parser).ParseUnverified(jwtString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("invalid token format")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("missing sub in token")
	}
	return sub, nil
}

// GenerateVisitorToken mints the anonymous token the widget bootstraps with.
func GenerateVisitorToken(visitorID string) (string, error) {
	secret := os.Getenv("WIDGET_JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("WIDGET_JWT_SECRET is missing")
	}

	claims := jwt.MapClaims{
		"sub": visitorID,
		"aud": "chat-widget",
		"exp": time.Now().Add(30 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VisitorTokenHandler issues a fresh anonymous visitor identity.
func VisitorTokenHandler(w http.ResponseWriter, r *http.Request) {
	visitorID := uuid.NewString()

	token, err := GenerateVisitorToken(visitorID)
	if err != nil {
		config.Logger.Error("Failed to mint visitor token:", err)
		writeError(w, "Could not create visitor token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.VisitorTokenResponse{
		Success:   true,
		Token:     token,
		VisitorID: visitorID,
	})
}
