package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"saaj/db"
	"saaj/email"
	"saaj/models"
	"saaj/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateContact stores a contact-form submission and forwards it to the
// admin inbox. The email is best-effort; the stored record is the source of
// truth.
func CreateContact(mailer *email.Mailer) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx := r.Context()

		var contact models.Contact
		if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
			http.Error(w, "Invalid input data", http.StatusBadRequest)
			return
		}
		if contact.FirstName == "" || contact.Email == "" || contact.Message == "" {
			http.Error(w, "firstName, email and message are required", http.StatusBadRequest)
			return
		}

		contact.ContactID = utils.RandomBase36(14)
		contact.Read = false
		contact.CreatedAt = time.Now()

		if _, err := db.ContactsCollection.InsertOne(ctx, contact); err != nil {
			http.Error(w, "Failed to save contact", http.StatusInternalServerError)
			return
		}

		go func(c models.Contact) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if _, err := mailer.SendContactNotification(ctx, &c); err != nil {
				log.Println("contact notification failed:", err)
			}
		}(contact)

		utils.RespondWithJSON(w, http.StatusCreated, utils.M{
			"success": true,
			"data":    contact,
		})
	}
}

// GetContacts lists submissions newest first; ?read=true|false filters.
func GetContacts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	filter := bson.M{}
	switch r.URL.Query().Get("read") {
	case "true":
		filter["read"] = true
	case "false":
		filter["read"] = false
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.ContactsCollection.Find(ctx, filter, findOpts)
	if err != nil {
		http.Error(w, "Failed to fetch contacts", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		http.Error(w, "Failed to decode contacts", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, contacts)
}

func MarkContactRead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	contactID := ps.ByName("contactid")

	res, err := db.ContactsCollection.UpdateOne(ctx,
		bson.M{"contactid": contactID},
		bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to update contact: %v", err), http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Contact not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Contact marked read",
	})
}

func DeleteContact(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	contactID := ps.ByName("contactid")

	res, err := db.ContactsCollection.DeleteOne(ctx, bson.M{"contactid": contactID})
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to delete contact: %v", err), http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Contact not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Contact deleted",
	})
}
