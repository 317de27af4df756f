package models

import "time"

type Post struct {
	PostID       string    `json:"postid" bson:"postid"`
	UserID       string    `json:"userid" bson:"userid"`
	TextContent  string    `json:"textContent,omitempty" bson:"textcontent,omitempty"`
	ImageContent string    `json:"imageContent,omitempty" bson:"imagecontent,omitempty"`
	Tags         []string  `json:"tags" bson:"tags"`
	Likes        []string  `json:"likes" bson:"likes"`
	Comments     []Comment `json:"comments" bson:"comments"`
	Donatable    bool      `json:"donatable" bson:"donatable"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdat"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedat"`
}

type Comment struct {
	UserID    string    `json:"userid" bson:"userid"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"createdAt" bson:"createdat"`
}

// FeedItem is a post joined with its author at query time.
type FeedItem struct {
	Post   `bson:",inline"`
	Author AuthorSummary `json:"author" bson:"author"`
}

// Index represents an indexing-related message published to the event bus.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id"`
	ItemType   string `json:"item_type"`
}
