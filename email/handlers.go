package email

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"saaj/models"
	"saaj/utils"

	"github.com/julienschmidt/httprouter"
)

type contactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

func setEmailCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// handleMethod deals with the preflight/verb contract shared by both
// endpoints: OPTIONS gets a bare 200, anything but POST gets a 405.
func handleMethod(w http.ResponseWriter, r *http.Request) bool {
	setEmailCORS(w)
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return false
	case http.MethodPost:
		return true
	default:
		utils.RespondWithJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return false
	}
}

// SendContactEmail forwards a contact-form submission to the admin inbox.
func SendContactEmail(mailer *Mailer) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if !handleMethod(w, r) {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
			return
		}
		if req.FirstName == "" || req.Email == "" || req.Message == "" {
			utils.RespondWithJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required fields"})
			return
		}

		html, err := renderContact(req)
		if err != nil {
			log.Println("SendContactEmail template error:", err)
			utils.RespondWithJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to render email"})
			return
		}

		subject := "New Contact: Website Inquiry"
		if req.Subject != "" {
			subject = "New Contact: " + req.Subject
		}

		emailID, err := mailer.Send(ctx, mailer.adminEmail, subject, html)
		if err != nil {
			log.Println("SendContactEmail provider error:", err)
			utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{
				"error":   "Failed to send email",
				"details": err.Error(),
			})
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"success": true,
			"emailId": emailID,
			"message": "Email sent successfully",
		})
	}
}

// SendOrderEmails sends the customer confirmation and admin notification for
// a full order payload.
func SendOrderEmails(mailer *Mailer) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if !handleMethod(w, r) {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		var order models.Order
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			utils.RespondWithJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid order data"})
			return
		}
		if order.Customer.Email == "" {
			utils.RespondWithJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid order data"})
			return
		}

		customerID, adminID, err := mailer.SendOrderEmailPair(ctx, &order)
		if err != nil {
			log.Println("SendOrderEmails error:", err)
			utils.RespondWithJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to send order emails"})
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"success":         true,
			"customerEmailId": customerID,
			"adminEmailId":    adminID,
		})
	}
}
