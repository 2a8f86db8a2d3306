package domain

import (
	"errors"
	"time"
)

var ErrFAQNotFound = errors.New("faq not found")

// FAQ is a question/answer pair shown on the public site.
type FAQ struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Question  string    `json:"question" bson:"question"`
	Answer    string    `json:"answer" bson:"answer"`
	Order     int       `json:"order" bson:"order"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
