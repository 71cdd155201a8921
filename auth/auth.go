package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"saaj/db"
	"saaj/globals"
	"saaj/middleware"
	"saaj/models"
	"saaj/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = 12 * time.Hour

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Username == "" || input.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	var storedUser models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"username": input.Username}).Decode(&storedUser)
	if err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.Password), []byte(input.Password)); err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	token, err := generateAccessToken(storedUser)
	if err != nil {
		log.Println("Login token generation error:", err)
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token":  token,
		"userid": storedUser.UserID,
		"role":   storedUser.Role,
	})
}

func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Username == "" || len(input.Password) < 8 {
		http.Error(w, "Username and a password of at least 8 characters are required", http.StatusBadRequest)
		return
	}

	err := db.UserCollection.FindOne(ctx, bson.M{"username": input.Username}).Err()
	if err == nil {
		http.Error(w, "Username already taken", http.StatusConflict)
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Println("Register lookup error:", err)
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}

	user := models.User{
		UserID:   "u" + uuid.New().String(),
		Username: input.Username,
		Password: string(hashed),
		Role:     []string{"staff"},
	}
	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		log.Println("Register InsertOne error:", err)
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"userid": user.UserID})
}

func generateAccessToken(user models.User) (string, error) {
	claims := &middleware.Claims{
		Username: user.Username,
		UserID:   user.UserID,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
