package profile

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"linkhive/db"
	"linkhive/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const userPicDir = "static/userpic"

// UploadProfilePicture stores the caller's profile picture and records
// the served URL on the user document.
func UploadProfilePicture(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "No image uploaded")
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to decode image")
		return
	}

	if err := utils.EnsureDir(userPicDir); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create upload directory")
		return
	}

	fileName := utils.GetUUID() + ".jpg"
	// Re-encoding drops any EXIF metadata the upload carried.
	resized := imaging.Resize(img, 400, 0, imaging.Lanczos)
	if err := imaging.Save(resized, filepath.Join(userPicDir, fileName)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save image")
		return
	}

	imageURL := "/static/userpic/" + fileName
	_, err = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"imageurl": imageURL, "updatedat": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":  "Profile picture updated",
		"imageUrl": imageURL,
	})
}
