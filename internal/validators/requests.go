package validators

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/inkspire/models"
)

// Field names accepted by [RequestValidator.Validate] for field-level
// scoping.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldPhoneNumber = "phone_number"
	FieldDescription = "description"
	FieldMedia       = "media"
	FieldContent     = "content"
	FieldTitle       = "title"
	FieldMilestones  = "milestones"
	FieldMessage     = "message"
	FieldDueDate     = "due_date"
	FieldTemplate    = "progress_template"
	FieldFile        = "file"
)

// Limits mirrored by the database column sizes.
const (
	maxPasswordBytes        = 72 // bcrypt ignores anything longer
	maxPostDescription      = 300
	maxCommentContent       = 1000
	maxPlanTitle            = 100
	maxPlanDescription      = 500
	maxMilestoneDescription = 500
	maxReminderMessage      = 500
	maxProgressDescription  = 1000
	maxImagesPerPost        = 3
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// RequestValidator implements [Validator] for the request models of the
// REST API. Both value and pointer forms are accepted.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. When fields is empty the
// default rule set of the type is applied.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	case models.ResetPasswordRequest:
		return v.validateResetPassword(value)
	case *models.ResetPasswordRequest:
		return v.validateResetPassword(*value)

	case models.ProfileUpdateRequest:
		return v.validateProfileUpdate(value)
	case *models.ProfileUpdateRequest:
		return v.validateProfileUpdate(*value)

	case models.NewPost:
		return v.validateNewPost(value, fields...)
	case *models.NewPost:
		return v.validateNewPost(*value, fields...)

	case models.UpdatePostRequest:
		return checkLength(value.Description, maxPostDescription, ErrDescriptionTooLong)
	case *models.UpdatePostRequest:
		return checkLength(value.Description, maxPostDescription, ErrDescriptionTooLong)

	case models.CommentRequest:
		return v.validateComment(value)
	case *models.CommentRequest:
		return v.validateComment(*value)

	case models.LearningPlanRequest:
		return v.validatePlan(value, fields...)
	case *models.LearningPlanRequest:
		return v.validatePlan(*value, fields...)

	case models.ReminderRequest:
		return v.validateReminder(value)
	case *models.ReminderRequest:
		return v.validateReminder(*value)

	case models.ProgressUpdateRequest:
		return v.validateProgressUpdate(value)
	case *models.ProgressUpdateRequest:
		return v.validateProgressUpdate(*value)

	case models.MediaFile:
		return v.validateFile(value)
	case *models.MediaFile:
		return v.validateFile(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldPhoneNumber}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !namePattern.MatchString(req.Name) {
				return ErrInvalidName
			}
		case FieldEmail:
			if !emailPattern.MatchString(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if !validPassword(req.Password) {
				return ErrInvalidPassword
			}
		case FieldPhoneNumber:
			if !phonePattern.MatchString(req.PhoneNumber) {
				return ErrInvalidPhoneNumber
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLogin only checks presence; wrong credentials are reported by the
// identity service without revealing which part was wrong.
func (v *RequestValidator) validateLogin(req models.LoginRequest) error {
	if req.Email == "" {
		return ErrInvalidEmail
	}
	if req.Password == "" {
		return ErrInvalidPassword
	}
	return nil
}

func (v *RequestValidator) validateResetPassword(req models.ResetPasswordRequest) error {
	if !emailPattern.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	if !validPassword(req.NewPassword) {
		return ErrInvalidPassword
	}
	return nil
}

func (v *RequestValidator) validateProfileUpdate(req models.ProfileUpdateRequest) error {
	if req.Name == nil && req.PhoneNumber == nil {
		return ErrNoFieldsToUpdate
	}
	if req.Name != nil && !namePattern.MatchString(*req.Name) {
		return ErrInvalidName
	}
	if req.PhoneNumber != nil && !phonePattern.MatchString(*req.PhoneNumber) {
		return ErrInvalidPhoneNumber
	}
	return nil
}

func (v *RequestValidator) validateNewPost(post models.NewPost, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDescription, FieldMedia}
	}

	for _, f := range fields {
		switch f {
		case FieldDescription:
			if err := checkLength(post.Description, maxPostDescription, ErrDescriptionTooLong); err != nil {
				return err
			}
		case FieldMedia:
			if err := validateMediaSet(post.Media); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMediaSet accepts one to three images or a single video.
func validateMediaSet(media []models.MediaFile) error {
	if len(media) == 0 {
		return ErrNoMedia
	}

	videos := 0
	for _, m := range media {
		switch {
		case m.IsVideo():
			videos++
		case m.IsImage():
		default:
			return ErrUnsupportedMedia
		}
	}

	if videos > 0 && len(media) != 1 {
		return ErrInvalidMediaSet
	}
	if len(media) > maxImagesPerPost {
		return ErrInvalidMediaSet
	}
	return nil
}

func (v *RequestValidator) validateComment(req models.CommentRequest) error {
	if req.Content == "" {
		return ErrEmptyContent
	}
	return checkLength(req.Content, maxCommentContent, ErrContentTooLong)
}

func (v *RequestValidator) validatePlan(req models.LearningPlanRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldMilestones}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if req.Title == "" {
				return ErrEmptyTitle
			}
			if err := checkLength(req.Title, maxPlanTitle, ErrTitleTooLong); err != nil {
				return err
			}
		case FieldDescription:
			if err := checkLength(req.Description, maxPlanDescription, ErrDescriptionTooLong); err != nil {
				return err
			}
		case FieldMilestones:
			for _, m := range req.Milestones {
				if m.Title == "" && m.Description == "" {
					return ErrEmptyMilestone
				}
				if err := checkLength(m.Title, maxPlanTitle, ErrTitleTooLong); err != nil {
					return err
				}
				if err := checkLength(m.Description, maxMilestoneDescription, ErrDescriptionTooLong); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateReminder(req models.ReminderRequest) error {
	if req.Message == "" {
		return ErrEmptyMessage
	}
	if err := checkLength(req.Message, maxReminderMessage, ErrMessageTooLong); err != nil {
		return err
	}
	if req.DueDate.IsZero() {
		return ErrEmptyDueDate
	}
	return nil
}

func (v *RequestValidator) validateProgressUpdate(req models.ProgressUpdateRequest) error {
	if !req.ProgressTemplate.Valid() {
		return ErrInvalidTemplate
	}
	return checkLength(req.Description, maxProgressDescription, ErrDescriptionTooLong)
}

func (v *RequestValidator) validateFile(file models.MediaFile) error {
	if file.FileName == "" {
		return ErrEmptyFileName
	}
	if file.Size <= 0 {
		return ErrEmptyFile
	}
	return nil
}

func validPassword(password string) bool {
	return password != "" && len(password) <= maxPasswordBytes
}

func checkLength(s string, limit int, err error) error {
	if utf8.RuneCountInString(s) > limit {
		return err
	}
	return nil
}
