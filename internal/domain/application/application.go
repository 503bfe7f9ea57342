package application

import (
	"fmt"
	"time"

	vo "minegate/internal/domain/application/valueobjects"
)

// MaxEditCount is the number of resubmissions an applicant is allowed.
// At this count the application is edit-locked.
const MaxEditCount = 3

// Application is a submitted whitelist request tied to one user.
type Application struct {
	id              uint
	userID          int64
	status          vo.ApplicationStatus
	playerName      string
	age             string
	about           string
	plans           string
	community       string
	platform        vo.Platform
	javaNickname    string
	bedrockNickname string
	referral        string
	comment         string
	editCount       int
	createdAt       time.Time
	updatedAt       time.Time
}

// Profile carries the collected form answers into a new application.
type Profile struct {
	PlayerName      string
	Age             string
	About           string
	Plans           string
	Community       string
	Platform        vo.Platform
	JavaNickname    string
	BedrockNickname string
	Referral        string
}

func NewApplication(userID int64, profile Profile) (*Application, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if profile.PlayerName == "" {
		return nil, fmt.Errorf("player name is required")
	}
	if !profile.Platform.IsValid() {
		return nil, fmt.Errorf("invalid platform")
	}
	if profile.Platform.IncludesJava() && profile.JavaNickname == "" {
		return nil, fmt.Errorf("java nickname is required for platform %s", profile.Platform)
	}
	if profile.Platform.IncludesBedrock() && profile.BedrockNickname == "" {
		return nil, fmt.Errorf("bedrock nickname is required for platform %s", profile.Platform)
	}

	now := time.Now()
	return &Application{
		userID:          userID,
		status:          vo.StatusPending,
		playerName:      profile.PlayerName,
		age:             profile.Age,
		about:           profile.About,
		plans:           profile.Plans,
		community:       profile.Community,
		platform:        profile.Platform,
		javaNickname:    profile.JavaNickname,
		bedrockNickname: profile.BedrockNickname,
		referral:        profile.Referral,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructApplication(
	id uint,
	userID int64,
	status vo.ApplicationStatus,
	profile Profile,
	comment string,
	editCount int,
	createdAt, updatedAt time.Time,
) (*Application, error) {
	if id == 0 {
		return nil, fmt.Errorf("application ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if editCount < 0 || editCount > MaxEditCount {
		return nil, fmt.Errorf("edit count out of range: %d", editCount)
	}
	return &Application{
		id:              id,
		userID:          userID,
		status:          status,
		playerName:      profile.PlayerName,
		age:             profile.Age,
		about:           profile.About,
		plans:           profile.Plans,
		community:       profile.Community,
		platform:        profile.Platform,
		javaNickname:    profile.JavaNickname,
		bedrockNickname: profile.BedrockNickname,
		referral:        profile.Referral,
		comment:         comment,
		editCount:       editCount,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (a *Application) ID() uint                     { return a.id }
func (a *Application) UserID() int64                { return a.userID }
func (a *Application) Status() vo.ApplicationStatus { return a.status }
func (a *Application) PlayerName() string           { return a.playerName }
func (a *Application) Age() string                  { return a.age }
func (a *Application) About() string                { return a.about }
func (a *Application) Plans() string                { return a.plans }
func (a *Application) Community() string            { return a.community }
func (a *Application) Platform() vo.Platform        { return a.platform }
func (a *Application) JavaNickname() string         { return a.javaNickname }
func (a *Application) BedrockNickname() string      { return a.bedrockNickname }
func (a *Application) Referral() string             { return a.referral }
func (a *Application) Comment() string              { return a.comment }
func (a *Application) EditCount() int               { return a.editCount }
func (a *Application) CreatedAt() time.Time         { return a.createdAt }
func (a *Application) UpdatedAt() time.Time         { return a.updatedAt }

func (a *Application) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("ID already set")
	}
	a.id = id
	return nil
}

func (a *Application) IsPending() bool {
	return a.status == vo.StatusPending
}

// Approve transitions pending → approved. Approving an already-approved
// application is rejected so the caller can skip repeated side effects.
func (a *Application) Approve() error {
	if !a.status.CanTransitionTo(vo.StatusApproved) {
		return fmt.Errorf("cannot approve application in status %s", a.status)
	}
	a.status = vo.StatusApproved
	a.updatedAt = time.Now()
	return nil
}

// Reject transitions pending → rejected. Rejecting a non-pending application
// is refused; the caller reports the existing status instead.
func (a *Application) Reject(comment string) error {
	if !a.status.CanTransitionTo(vo.StatusRejected) {
		return fmt.Errorf("cannot reject application in status %s", a.status)
	}
	a.status = vo.StatusRejected
	if comment != "" {
		a.comment = comment
	}
	a.updatedAt = time.Now()
	return nil
}

// SetComment overwrites the admin comment. Allowed at any status.
func (a *Application) SetComment(comment string) {
	a.comment = comment
	a.updatedAt = time.Now()
}

// CanEdit reports whether the applicant still has edit allowance left.
func (a *Application) CanEdit() bool {
	return a.editCount < MaxEditCount
}

// GrantEdit consumes one edit and returns the application to pending so the
// resubmitted form goes through review again.
func (a *Application) GrantEdit() error {
	if !a.CanEdit() {
		return fmt.Errorf("edit count limit reached: %d", a.editCount)
	}
	a.editCount++
	a.status = vo.StatusPending
	a.updatedAt = time.Now()
	return nil
}

// ApplyProfile replaces the profile fields on resubmission.
func (a *Application) ApplyProfile(profile Profile) error {
	if profile.PlayerName == "" {
		return fmt.Errorf("player name is required")
	}
	if !profile.Platform.IsValid() {
		return fmt.Errorf("invalid platform")
	}
	a.playerName = profile.PlayerName
	a.age = profile.Age
	a.about = profile.About
	a.plans = profile.Plans
	a.community = profile.Community
	a.platform = profile.Platform
	a.javaNickname = profile.JavaNickname
	a.bedrockNickname = profile.BedrockNickname
	a.referral = profile.Referral
	a.updatedAt = time.Now()
	return nil
}

// ProfileSnapshot returns a copy of the profile fields.
func (a *Application) ProfileSnapshot() Profile {
	return Profile{
		PlayerName:      a.playerName,
		Age:             a.age,
		About:           a.about,
		Plans:           a.plans,
		Community:       a.community,
		Platform:        a.platform,
		JavaNickname:    a.javaNickname,
		BedrockNickname: a.bedrockNickname,
		Referral:        a.referral,
	}
}
