package models

import "time"

type User struct {
	UserID              string    `json:"userid" bson:"userid"`
	FirstName           string    `json:"firstName" bson:"firstname"`
	LastName            string    `json:"lastName" bson:"lastname"`
	Email               string    `json:"email" bson:"email"`
	Password            string    `json:"-" bson:"password"`
	ImageURL            string    `json:"imageUrl,omitempty" bson:"imageurl,omitempty"`
	Headline            string    `json:"headline,omitempty" bson:"headline,omitempty"`
	IsAdmin             bool      `json:"isAdmin" bson:"isadmin"`
	IsWorkVerified      bool      `json:"isWorkVerified" bson:"isworkverified"`
	IsRecruiterVerified bool      `json:"isRecruiterVerified" bson:"isrecruiterverified"`
	Skills              []string  `json:"skills,omitempty" bson:"skills,omitempty"`
	Connections         []string  `json:"connections,omitempty" bson:"connections,omitempty"`
	RefreshToken        string    `json:"-" bson:"refreshtoken,omitempty"`
	RefreshExpiry       time.Time `json:"-" bson:"refreshexpiry,omitempty"`
	LastLogin           time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
	CreatedAt           time.Time `json:"createdAt" bson:"createdat"`
	UpdatedAt           time.Time `json:"updatedAt" bson:"updatedat"`
}

// AuthorSummary is the minimal author projection joined into feed items
// and connection listings.
type AuthorSummary struct {
	UserID    string `json:"userid" bson:"userid"`
	FirstName string `json:"firstName" bson:"firstname"`
	LastName  string `json:"lastName" bson:"lastname"`
	Email     string `json:"email" bson:"email"`
	ImageURL  string `json:"imageUrl,omitempty" bson:"imageurl,omitempty"`
}
