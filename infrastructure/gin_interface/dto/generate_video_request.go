package dto

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const MinTopicLength = 3

type GenerateVideoRequest struct {
	Topic string `json:"topic"`
}

// Validate applies the inbound contract: the topic must be non-empty
// after trimming and at least MinTopicLength characters long.
func (r GenerateVideoRequest) Validate() error {
	topic := strings.TrimSpace(r.Topic)
	if topic == "" {
		return errors.New("'topic' is required and must be a non-empty string")
	}
	if utf8.RuneCountInString(topic) < MinTopicLength {
		return fmt.Errorf("'topic' must be at least %d characters long", MinTopicLength)
	}
	return nil
}
