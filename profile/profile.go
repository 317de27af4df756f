package profile

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"linkhive/db"
	"linkhive/models"
	"linkhive/rdx"
	"linkhive/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetProfile returns a user's public profile.
func GetProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": ps.ByName("userId")}).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

type editProfileRequest struct {
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Headline  string   `json:"headline,omitempty"`
	Skills    []string `json:"skills,omitempty"`
}

// EditProfile updates the caller's own profile fields.
func EditProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload editProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	update := bson.M{"updatedat": time.Now()}
	if payload.FirstName != "" {
		update["firstname"] = payload.FirstName
	}
	if payload.LastName != "" {
		update["lastname"] = payload.LastName
	}
	if payload.Headline != "" {
		update["headline"] = payload.Headline
	}
	if payload.Skills != nil {
		update["skills"] = payload.Skills
	}

	res, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": update},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	if payload.FirstName != "" || payload.LastName != "" {
		if err := rdx.RdxHset("users", userID, payload.FirstName+" "+payload.LastName); err != nil {
			log.Printf("Failed to cache display name: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Profile updated"})
}
