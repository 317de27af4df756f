package social

import (
	"errors"
	"strings"

	"linkhive/utils"
)

// Request bodies are decoded into typed structs and validated before any
// handler logic runs.

type CreatePostRequest struct {
	TextContent  string `json:"textContent,omitempty"`
	ImageContent string `json:"imageContent,omitempty"`
	Tags         string `json:"tags"`
	Donatable    bool   `json:"donatable,omitempty"`
}

// Validate splits the comma-separated tag string and rejects requests
// carrying no usable tag.
func (p *CreatePostRequest) Validate() ([]string, error) {
	tags := utils.SplitTags(p.Tags)
	if len(tags) == 0 {
		return nil, errors.New("at least one tag is required")
	}
	return tags, nil
}

type EditPostRequest struct {
	TextContent  string `json:"textContent,omitempty"`
	ImageContent string `json:"imageContent,omitempty"`
	Tags         string `json:"tags"`
}

type CommentRequest struct {
	Comment string `json:"comment"`
}

func (c *CommentRequest) Validate() error {
	if strings.TrimSpace(c.Comment) == "" {
		return errors.New("comment is required")
	}
	return nil
}

type ConnectionRequest struct {
	OtherUserID string `json:"otherUserId"`
}

func (c *ConnectionRequest) Validate() error {
	if strings.TrimSpace(c.OtherUserID) == "" {
		return errors.New("otherUserId is required")
	}
	return nil
}
