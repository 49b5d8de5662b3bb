// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// ErrValidation is wrapped by every rule violation so transports can map
// all of them to a single client error.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName        = newRuleError("name must be 2-50 letters or spaces")
	ErrInvalidEmail       = newRuleError("email is not valid")
	ErrInvalidPassword    = newRuleError("password must be 1-72 bytes long")
	ErrInvalidPhoneNumber = newRuleError("phone number must be exactly 10 digits")
	ErrNoFieldsToUpdate   = newRuleError("at least one field must be provided for update")

	ErrDescriptionTooLong = newRuleError("description is too long")
	ErrNoMedia            = newRuleError("at least one media file is required")
	ErrInvalidMediaSet    = newRuleError("a post holds 1-3 images or exactly one video")
	ErrUnsupportedMedia   = newRuleError("media must be an image or a video")
	ErrEmptyContent       = newRuleError("content is required")
	ErrContentTooLong     = newRuleError("content must be at most 1000 characters")
	ErrEmptyTitle         = newRuleError("title is required")
	ErrTitleTooLong       = newRuleError("title must be at most 100 characters")
	ErrEmptyMilestone     = newRuleError("milestone needs a title or a description")
	ErrEmptyMessage       = newRuleError("message is required")
	ErrMessageTooLong     = newRuleError("message must be at most 500 characters")
	ErrEmptyDueDate       = newRuleError("due date is required")
	ErrInvalidTemplate    = newRuleError("unknown progress template")
	ErrEmptyFileName      = newRuleError("file name is required")
	ErrEmptyFile          = newRuleError("file is empty")
)

// ruleError is a client-facing rule violation. It matches [ErrValidation]
// with errors.Is.
type ruleError struct {
	msg string
}

func newRuleError(msg string) error {
	return &ruleError{msg: msg}
}

func (e *ruleError) Error() string { return e.msg }

func (e *ruleError) Is(target error) bool { return target == ErrValidation }
