package application

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	vo "minegate/internal/domain/application/valueobjects"
)

// FormDraft holds an applicant's in-progress answers. One draft exists per
// user and every answer is persisted as soon as it is given, so a restart
// loses at most the current unconfirmed prompt. The application row itself is
// not materialized until the draft is submitted.
type FormDraft struct {
	userID        int64
	step          vo.FormStep
	applicationID *uint // set when the draft resubmits an existing application
	profile       Profile
	media         []DraftMedia
	createdAt     time.Time
	updatedAt     time.Time
}

// DraftMedia is an attachment collected before submission.
type DraftMedia struct {
	FileID   string
	Kind     vo.MediaKind
	Category vo.MediaCategory
}

func NewFormDraft(userID int64) (*FormDraft, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	now := time.Now()
	return &FormDraft{
		userID:    userID,
		step:      vo.StepPolicy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewResubmissionDraft starts a draft that will overwrite an existing
// application on submit.
func NewResubmissionDraft(userID int64, applicationID uint) (*FormDraft, error) {
	d, err := NewFormDraft(userID)
	if err != nil {
		return nil, err
	}
	if applicationID == 0 {
		return nil, fmt.Errorf("application ID is required")
	}
	d.applicationID = &applicationID
	return d, nil
}

func ReconstructFormDraft(
	userID int64,
	step vo.FormStep,
	applicationID *uint,
	profile Profile,
	media []DraftMedia,
	createdAt, updatedAt time.Time,
) (*FormDraft, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !step.IsValid() {
		return nil, fmt.Errorf("invalid form step: %s", step)
	}
	return &FormDraft{
		userID:        userID,
		step:          step,
		applicationID: applicationID,
		profile:       profile,
		media:         media,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (d *FormDraft) UserID() int64         { return d.userID }
func (d *FormDraft) Step() vo.FormStep     { return d.step }
func (d *FormDraft) ApplicationID() *uint  { return d.applicationID }
func (d *FormDraft) Profile() Profile      { return d.profile }
func (d *FormDraft) Media() []DraftMedia   { return d.media }
func (d *FormDraft) CreatedAt() time.Time  { return d.createdAt }
func (d *FormDraft) UpdatedAt() time.Time  { return d.updatedAt }

// SetAnswer validates and stores the answer for the given field.
func (d *FormDraft) SetAnswer(field vo.Field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("answer cannot be empty")
	}

	switch field {
	case vo.FieldPlayerName:
		d.profile.PlayerName = value
	case vo.FieldAge:
		age, err := strconv.Atoi(value)
		if err != nil || age < 1 || age > 120 {
			return fmt.Errorf("age must be a number")
		}
		d.profile.Age = value
	case vo.FieldAbout:
		d.profile.About = value
	case vo.FieldPlans:
		d.profile.Plans = value
	case vo.FieldCommunity:
		d.profile.Community = value
	case vo.FieldPlatform:
		platform := vo.Platform(value)
		if !platform.IsValid() {
			return fmt.Errorf("invalid platform: %s", value)
		}
		d.profile.Platform = platform
	case vo.FieldJavaNickname:
		d.profile.JavaNickname = value
	case vo.FieldBedrockNickname:
		d.profile.BedrockNickname = value
	case vo.FieldReferral:
		d.profile.Referral = value
	default:
		return fmt.Errorf("unknown field: %s", field)
	}

	d.updatedAt = time.Now()
	return nil
}

// Advance moves to the next step, honoring the platform branch.
func (d *FormDraft) Advance() error {
	next, ok := vo.NextStep(d.step, d.profile.Platform)
	if !ok {
		return fmt.Errorf("no step after %s", d.step)
	}
	d.step = next
	d.updatedAt = time.Now()
	return nil
}

// Back moves to the immediately preceding step, honoring the branch that was
// actually taken.
func (d *FormDraft) Back() error {
	prev, ok := vo.PrevStep(d.step, d.profile.Platform)
	if !ok {
		return fmt.Errorf("no step before %s", d.step)
	}
	d.step = prev
	d.updatedAt = time.Now()
	return nil
}

// CountMedia returns the number of collected attachments in a category.
func (d *FormDraft) CountMedia(category vo.MediaCategory) int {
	n := 0
	for _, m := range d.media {
		if m.Category == category {
			n++
		}
	}
	return n
}

// AttachMedia records an attachment for the current upload step, enforcing
// the per-category cap.
func (d *FormDraft) AttachMedia(fileID string, kind vo.MediaKind) error {
	category, ok := d.step.UploadCategory()
	if !ok {
		return fmt.Errorf("step %s does not accept attachments", d.step)
	}
	if fileID == "" {
		return fmt.Errorf("file reference is required")
	}
	if !kind.IsValid() {
		return fmt.Errorf("invalid media kind: %s", kind)
	}
	if limit := category.Cap(); limit > 0 && d.CountMedia(category) >= limit {
		return fmt.Errorf("attachment limit reached for %s: %d", category, limit)
	}
	d.media = append(d.media, DraftMedia{FileID: fileID, Kind: kind, Category: category})
	d.updatedAt = time.Now()
	return nil
}

// CollectedProfile returns the completed profile for submission.
func (d *FormDraft) CollectedProfile() (Profile, error) {
	if d.step != vo.StepReview {
		return Profile{}, fmt.Errorf("form is not at the review step")
	}
	if d.profile.PlayerName == "" {
		return Profile{}, fmt.Errorf("player name missing")
	}
	if !d.profile.Platform.IsValid() {
		return Profile{}, fmt.Errorf("platform missing")
	}
	if d.profile.Platform.IncludesJava() && d.profile.JavaNickname == "" {
		return Profile{}, fmt.Errorf("java nickname missing")
	}
	if d.profile.Platform.IncludesBedrock() && d.profile.BedrockNickname == "" {
		return Profile{}, fmt.Errorf("bedrock nickname missing")
	}
	return d.profile, nil
}
