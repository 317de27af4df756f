package social

import (
	"reflect"
	"testing"

	"linkhive/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestLikePullDocuments(t *testing.T) {
	filter := likePullFilter("p123", "u456")
	want := bson.M{"postid": "p123", "likes": "u456"}
	if !reflect.DeepEqual(filter, want) {
		t.Errorf("likePullFilter = %v, want %v", filter, want)
	}

	update := likePullUpdate("u456")
	wantUpdate := bson.M{"$pull": bson.M{"likes": "u456"}}
	if !reflect.DeepEqual(update, wantUpdate) {
		t.Errorf("likePullUpdate = %v, want %v", update, wantUpdate)
	}
}

func TestLikeAddDocuments(t *testing.T) {
	filter := likeAddFilter("p123")
	want := bson.M{"postid": "p123"}
	if !reflect.DeepEqual(filter, want) {
		t.Errorf("likeAddFilter = %v, want %v", filter, want)
	}

	update := likeAddUpdate("u456")
	wantUpdate := bson.M{"$addToSet": bson.M{"likes": "u456"}}
	if !reflect.DeepEqual(update, wantUpdate) {
		t.Errorf("likeAddUpdate = %v, want %v", update, wantUpdate)
	}
}

// applyLikeToggle runs the toggle's decision logic against an in-memory
// likes list the way the two conditional updates behave on a document.
func applyLikeToggle(likes []string, userID string) []string {
	// $pull only matches when the like is present.
	present := false
	for _, id := range likes {
		if id == userID {
			present = true
			break
		}
	}
	if present {
		kept := []string{}
		for _, id := range likes {
			if id != userID {
				kept = append(kept, id)
			}
		}
		return kept
	}
	// $addToSet appends only if absent.
	return append(likes, userID)
}

func TestLikeToggleIsSelfInverse(t *testing.T) {
	tests := []struct {
		name   string
		likes  []string
		userID string
	}{
		{"not yet liked", []string{"u1", "u2"}, "u3"},
		{"already liked", []string{"u1", "u3", "u2"}, "u3"},
		{"empty list", []string{}, "u3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := applyLikeToggle(tt.likes, tt.userID)
			if reflect.DeepEqual(once, tt.likes) {
				t.Fatalf("first toggle did not change likes: %v", once)
			}
			twice := applyLikeToggle(once, tt.userID)

			wantSize := len(tt.likes)
			if len(twice) != wantSize {
				t.Errorf("two toggles changed likes count: got %v, want %v", twice, tt.likes)
			}
			for i, id := range tt.likes {
				if twice[i] != id {
					t.Errorf("two toggles reordered likes: got %v, want %v", twice, tt.likes)
					break
				}
			}
		})
	}
}

func TestCommentPushUpdate(t *testing.T) {
	comment := models.Comment{UserID: "u1", Text: "nice"}
	update := commentPushUpdate(comment)

	push, ok := update["$push"].(bson.M)
	if !ok {
		t.Fatalf("update missing $push: %v", update)
	}
	if got, ok := push["comments"].(models.Comment); !ok || got.UserID != "u1" || got.Text != "nice" {
		t.Errorf("$push.comments = %v, want the comment", push["comments"])
	}
	if len(push) != 1 {
		t.Errorf("$push touches extra fields: %v", push)
	}

	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatalf("update missing $set: %v", update)
	}
	if _, ok := set["updatedat"]; !ok || len(set) != 1 {
		t.Errorf("$set should only bump updatedat: %v", set)
	}
}

func TestEditFilterScopesToAuthor(t *testing.T) {
	filter := editFilter("p123", "u456")
	want := bson.M{"postid": "p123", "userid": "u456"}
	if !reflect.DeepEqual(filter, want) {
		t.Errorf("editFilter = %v, want %v", filter, want)
	}
}

func TestEditUpdateLeavesLikesAndCommentsAlone(t *testing.T) {
	update := editUpdate(EditPostRequest{
		TextContent:  "updated",
		ImageContent: "img.jpg",
		Tags:         "Go, Mongo",
	})

	if len(update) != 1 {
		t.Fatalf("edit should only carry $set: %v", update)
	}
	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatalf("update missing $set: %v", update)
	}

	for _, field := range []string{"textcontent", "imagecontent", "tags", "updatedat"} {
		if _, ok := set[field]; !ok {
			t.Errorf("$set missing %q: %v", field, set)
		}
	}
	if len(set) != 4 {
		t.Errorf("$set carries unexpected fields: %v", set)
	}
	for _, field := range []string{"likes", "comments"} {
		if _, ok := set[field]; ok {
			t.Errorf("$set must not touch %q", field)
		}
	}

	if tags, ok := set["tags"].([]string); !ok || !reflect.DeepEqual(tags, []string{"go", "mongo"}) {
		t.Errorf("tags = %v, want [go mongo]", set["tags"])
	}
}
