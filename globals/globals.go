package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(jwtSecretFromEnv())

func jwtSecretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "dev-only-secret"
}

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"
const CartIDKey ContextKey = "cartId"

var Ctx = context.Background()
