package middleware

import (
	"context"
	"fmt"
	"net/http"

	"saaj/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	Username string   `json:"username"`
	UserID   string   `json:"userId"`
	Role     []string `json:"role"`
	jwt.RegisteredClaims
}

func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if websocket.IsWebSocketUpgrade(r) {
			// Allow WebSocket through without setting body/headers yet
			next(w, r, ps)
			return
		}

		claims, err := claimsFromHeader(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, globals.RoleKey, claims.Role)
		next(w, r.WithContext(ctx), ps)
	}
}

// RequireAdmin guards the admin dashboard surface.
func RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return Authenticate(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		roles, _ := r.Context().Value(globals.RoleKey).([]string)
		for _, role := range roles {
			if role == "admin" {
				next(w, r, ps)
				return
			}
		}
		http.Error(w, "Forbidden", http.StatusForbidden)
	})
}

func OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if claims, err := claimsFromHeader(r); err == nil {
			ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
			r = r.WithContext(ctx)
		}
		// Proceed regardless of token state
		next(w, r, ps)
	}
}

func claimsFromHeader(r *http.Request) (*Claims, error) {
	tokenString := r.Header.Get("Authorization")
	if tokenString == "" {
		return nil, fmt.Errorf("missing token")
	}
	if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
		return nil, fmt.Errorf("invalid token format")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func ValidateJWT(tokenString string) (*Claims, error) {
	if tokenString == "" || len(tokenString) < 8 {
		return nil, fmt.Errorf("invalid token")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	return claims, nil
}
