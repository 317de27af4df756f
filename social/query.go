package social

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"linkhive/db"
	"linkhive/models"
	"linkhive/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultLimit = 10
	maxLimit     = 100
	exploreLimit = 10
)

// FeedQuery is the validated pagination request for the feed.
type FeedQuery struct {
	Start int    `json:"start"`
	Limit int    `json:"limit"`
	Order string `json:"order"`
}

// ParseFeedQuery validates start/limit/order query parameters and applies
// the defaults (start=0, limit=10, order=desc).
func ParseFeedQuery(q url.Values) (FeedQuery, error) {
	fq := FeedQuery{Start: 0, Limit: defaultLimit, Order: "desc"}

	if s := q.Get("start"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return fq, fmt.Errorf("invalid start: %q", s)
		}
		fq.Start = v
	}

	if l := q.Get("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v < 0 {
			return fq, fmt.Errorf("invalid limit: %q", l)
		}
		if v > maxLimit {
			return fq, fmt.Errorf("limit exceeds maximum of %d", maxLimit)
		}
		if v > 0 {
			fq.Limit = v
		}
	}

	switch o := q.Get("order"); o {
	case "", "desc":
		fq.Order = "desc"
	case "asc":
		fq.Order = "asc"
	default:
		return fq, fmt.Errorf("invalid order: %q", o)
	}

	return fq, nil
}

// HasNextPage reports whether another page exists after the given window.
func HasNextPage(total int64, start, limit int) bool {
	return total > int64(start*limit+limit)
}

// BuildFeedPipeline joins every post to its author, sorts by creation
// time, and applies the pagination window.
func BuildFeedPipeline(q FeedQuery) mongo.Pipeline {
	dir := -1
	if q.Order == "asc" {
		dir = 1
	}

	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userid",
			"foreignField": "userid",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: "$author"}},
		{{Key: "$sort", Value: bson.D{{Key: "createdat", Value: dir}}}},
		{{Key: "$skip", Value: int64(q.Start * q.Limit)}},
		{{Key: "$limit", Value: int64(q.Limit)}},
		{{Key: "$project", Value: bson.M{
			"postid":       1,
			"userid":       1,
			"textcontent":  1,
			"imagecontent": 1,
			"tags":         1,
			"likes":        1,
			"comments":     1,
			"donatable":    1,
			"createdat":    1,
			"updatedat":    1,
			"author": bson.M{
				"userid":    "$author.userid",
				"firstname": "$author.firstname",
				"lastname":  "$author.lastname",
				"email":     "$author.email",
				"imageurl":  "$author.imageurl",
			},
		}}},
	}
}

// GetFeed returns the paginated, author-joined feed along with the total
// post count and a hasNextPage flag.
func GetFeed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fq, err := ParseFeedQuery(r.URL.Query())
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.PostCollection.Aggregate(ctx, BuildFeedPipeline(fq))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	defer cursor.Close(ctx)

	items := []models.FeedItem{}
	if err := cursor.All(ctx, &items); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode posts")
		return
	}

	// Total is computed over the whole collection, not the page.
	total, err := db.PostCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count posts")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"data":        items,
		"filters":     fq,
		"hasNextPage": HasNextPage(total, fq.Start, fq.Limit),
		"total":       total,
	})
}

// exploreFilter normalizes the tag the same way SplitTags does at write
// time, so mixed-case queries still match stored tags.
func exploreFilter(tag string) bson.M {
	filter := bson.M{}
	if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
		filter["tags"] = tag
	}
	return filter
}

// Explore returns the ten most recent posts, optionally filtered by tag.
func Explore(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := exploreFilter(ps.ByName("postTag"))

	opts := options.Find().
		SetSort(bson.D{{Key: "createdat", Value: -1}}).
		SetLimit(exploreLimit)

	cursor, err := db.PostCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode posts")
		return
	}

	if len(posts) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"posts": posts})
}
