package social

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"linkhive/db"
	"linkhive/models"
	"linkhive/mq"
	"linkhive/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// CreatePost inserts a new post authored by the authenticated caller.
func CreatePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" || userID != ps.ByName("userId") {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var payload CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	tags, err := payload.Validate()
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	post := models.Post{
		PostID:       "p" + utils.GenerateRandomString(12),
		UserID:       userID,
		TextContent:  payload.TextContent,
		ImageContent: payload.ImageContent,
		Tags:         tags,
		Likes:        []string{},
		Comments:     []models.Comment{},
		Donatable:    payload.Donatable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.PostCollection.InsertOne(ctx, post); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	go mq.Emit(context.Background(), "post-created", models.Index{
		EntityType: "post",
		EntityId:   post.PostID,
		Method:     "POST",
	})
	go mq.EmitTagEvents(context.Background(), post.PostID, post.Tags)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Post created",
		"post":    post,
	})
}

// likePullFilter matches the post only when the caller's like is present,
// so the $pull is a no-op for callers who have not liked it.
func likePullFilter(postID, userID string) bson.M {
	return bson.M{"postid": postID, "likes": userID}
}

func likePullUpdate(userID string) bson.M {
	return bson.M{"$pull": bson.M{"likes": userID}}
}

func likeAddFilter(postID string) bson.M {
	return bson.M{"postid": postID}
}

func likeAddUpdate(userID string) bson.M {
	return bson.M{"$addToSet": bson.M{"likes": userID}}
}

func commentPushUpdate(comment models.Comment) bson.M {
	return bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updatedat": time.Now()},
	}
}

// editFilter scopes the update to the author's own post.
func editFilter(postID, userID string) bson.M {
	return bson.M{"postid": postID, "userid": userID}
}

func editUpdate(payload EditPostRequest) bson.M {
	return bson.M{"$set": bson.M{
		"textcontent":  payload.TextContent,
		"imagecontent": payload.ImageContent,
		"tags":         utils.SplitTags(payload.Tags),
		"updatedat":    time.Now(),
	}}
}

// LikePost flips the caller's like on a post. The toggle runs as two
// conditional updates so concurrent requests cannot duplicate or lose a
// like: a $pull that only matches when the like exists, then a $addToSet.
func LikePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	postID := ps.ByName("postId")

	res, err := db.PostCollection.UpdateOne(ctx,
		likePullFilter(postID, userID),
		likePullUpdate(userID),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update post")
		return
	}
	if res.ModifiedCount > 0 {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Post unliked"})
		return
	}

	res, err = db.PostCollection.UpdateOne(ctx,
		likeAddFilter(postID),
		likeAddUpdate(userID),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update post")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}

	go mq.Emit(context.Background(), "post-liked", models.Index{
		EntityType: "post",
		EntityId:   postID,
		Method:     "PUT",
		ItemId:     userID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Post liked"})
}

// CommentPost appends a comment to the end of the post's comment sequence.
func CommentPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	postID := ps.ByName("postId")

	var payload CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := payload.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	comment := models.Comment{
		UserID:    userID,
		Text:      payload.Comment,
		CreatedAt: time.Now(),
	}

	res, err := db.PostCollection.UpdateOne(ctx,
		bson.M{"postid": postID},
		commentPushUpdate(comment),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update post")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}

	go mq.Emit(context.Background(), "post-commented", models.Index{
		EntityType: "post",
		EntityId:   postID,
		Method:     "PUT",
		ItemId:     userID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Comment added"})
}

// EditPost replaces textContent, imageContent, and tags on the caller's
// own post. Likes and comments are left untouched.
func EditPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" || userID != ps.ByName("userId") {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	postID := ps.ByName("postId")

	var payload EditPostRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	res, err := db.PostCollection.UpdateOne(ctx,
		editFilter(postID, userID),
		editUpdate(payload),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update post")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}

	go mq.Emit(context.Background(), "post-edited", models.Index{
		EntityType: "post",
		EntityId:   postID,
		Method:     "PUT",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Post updated"})
}
