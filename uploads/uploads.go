package uploads

import (
	"net/http"
	"path/filepath"

	"linkhive/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

const postPicDir = "static/postpic"

// UploadPostImage accepts a multipart image, re-encodes it as jpg, writes
// a 300px thumbnail alongside, and returns the URL to reference from a
// post's imageContent.
func UploadPostImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(20 << 20); err != nil {
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

	thumbDir := filepath.Join(postPicDir, "thumb")
	if err := utils.EnsureDir(postPicDir); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create upload directory")
		return
	}
	if err := utils.EnsureDir(thumbDir); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create thumbnail directory")
		return
	}

	uniqueID := utils.GetUUID()
	fileName := uniqueID + ".jpg"

	if err := imaging.Save(img, filepath.Join(postPicDir, fileName)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save image")
		return
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, filepath.Join(thumbDir, fileName)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save thumbnail")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":  "Image uploaded",
		"imageUrl": "/static/postpic/" + fileName,
		"thumbUrl": "/static/postpic/thumb/" + fileName,
	})
}
