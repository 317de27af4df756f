package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"linkhive/db"
	"linkhive/models"
	"linkhive/mq"
	"linkhive/social"
	"linkhive/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetConnections returns the user's connections resolved to author
// summaries, in stored order.
func GetConnections(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": ps.ByName("userId")}).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	connections := []models.AuthorSummary{}
	if len(user.Connections) > 0 {
		opts := options.Find().SetProjection(bson.M{
			"userid":    1,
			"firstname": 1,
			"lastname":  1,
			"email":     1,
			"imageurl":  1,
		})
		cursor, err := db.UserCollection.Find(ctx, bson.M{"userid": bson.M{"$in": user.Connections}}, opts)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch connections")
			return
		}
		defer cursor.Close(ctx)

		byID := make(map[string]models.AuthorSummary)
		for cursor.Next(ctx) {
			var summary models.AuthorSummary
			if err := cursor.Decode(&summary); err != nil {
				utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode connection")
				return
			}
			byID[summary.UserID] = summary
		}
		if err := cursor.Err(); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Cursor error")
			return
		}

		// Preserve the stored ordering of the connections sequence.
		for _, id := range user.Connections {
			if summary, ok := byID[id]; ok {
				connections = append(connections, summary)
			}
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"connections": connections})
}

// AddConnection appends a one-directional connection on the caller's
// record. $addToSet keeps concurrent adds from duplicating the id.
func AddConnection(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" || userID != ps.ByName("userId") {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	payload, ok := decodeConnectionRequest(w, r)
	if !ok {
		return
	}

	count, err := db.UserCollection.CountDocuments(ctx, bson.M{"userid": payload.OtherUserID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to look up user")
		return
	}
	if count == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	res, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		connectionAddUpdate(payload.OtherUserID),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update connections")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	go mq.Emit(context.Background(), "connection-added", models.Index{
		EntityType: "connection",
		EntityId:   userID,
		Method:     "PUT",
		ItemId:     payload.OtherUserID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Connection added"})
}

// RemoveConnection removes all occurrences of the target id from the
// caller's connections sequence.
func RemoveConnection(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" || userID != ps.ByName("userId") {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	payload, ok := decodeConnectionRequest(w, r)
	if !ok {
		return
	}

	res, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		connectionRemoveUpdate(payload.OtherUserID),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update connections")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	go mq.Emit(context.Background(), "connection-removed", models.Index{
		EntityType: "connection",
		EntityId:   userID,
		Method:     "DELETE",
		ItemId:     payload.OtherUserID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Connection removed"})
}

func connectionAddUpdate(otherID string) bson.M {
	return bson.M{"$addToSet": bson.M{"connections": otherID}}
}

func connectionRemoveUpdate(otherID string) bson.M {
	return bson.M{"$pull": bson.M{"connections": otherID}}
}

func decodeConnectionRequest(w http.ResponseWriter, r *http.Request) (social.ConnectionRequest, bool) {
	var payload social.ConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return payload, false
	}
	if err := payload.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return payload, false
	}
	return payload, true
}
