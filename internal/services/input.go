package services

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	msgFieldRequired     = "This field is required."
	msgInvalidDiscussion = "Invalid discussion id."
	msgCourseNotUnique   = "The fields course_id, course_subject must make a unique set."
)

// DiscussionInput is the write payload for general discussions. CreatorID is
// kept raw so that malformed values can be normalized to null instead of
// failing the bind.
type DiscussionInput struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Author    string `json:"author"`
	CreatorID any    `json:"creator_id"`
}

type CommentInput struct {
	Discussion any    `json:"discussion"`
	Body       string `json:"body"`
	Author     string `json:"author"`
	CreatorID  any    `json:"creator_id"`
}

type CourseDiscussionInput struct {
	Title         string `json:"title"`
	Body          string `json:"body"`
	Author        string `json:"author"`
	CourseSubject string `json:"course_subject"`
	CourseID      string `json:"course_id"`
}

type CourseCommentInput struct {
	Discussion any    `json:"discussion"`
	Body       string `json:"body"`
	Author     string `json:"author"`
}

// coerceOptionalID normalizes an optional numeric field: integers, whole
// floats and numeric strings pass through, everything else becomes null.
// Malformed optional input is never a validation failure.
func coerceOptionalID(v any) *int64 {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		n := int64(t)
		if float64(n) != t {
			return nil
		}
		return &n
	case int64:
		n := t
		return &n
	case int:
		n := int64(t)
		return &n
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return nil
		}
		return &n
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

// coerceRequiredID is the strict counterpart used for foreign keys: it
// reports whether the value was present and parseable.
func coerceRequiredID(v any) (int64, bool) {
	if v == nil {
		return 0, false
	}
	id := coerceOptionalID(v)
	if id == nil {
		return 0, false
	}
	return *id, true
}

type fieldErrors map[string][]string

func (fe fieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

func (fe fieldErrors) requireString(field, value string) {
	if strings.TrimSpace(value) == "" {
		fe.add(field, msgFieldRequired)
	}
}
