package valueobjects

// FormStep is the applicant's position in the intake form. The sequence is
// linear except for the platform branch: the nickname steps are entered only
// when the chosen platform includes the matching edition.
type FormStep string

const (
	StepPolicy          FormStep = "policy"
	StepPlayerName      FormStep = "player_name"
	StepAge             FormStep = "age"
	StepAbout           FormStep = "about"
	StepPlans           FormStep = "plans"
	StepCommunity       FormStep = "community"
	StepPlatform        FormStep = "platform"
	StepJavaNickname    FormStep = "nickname_java"
	StepBedrockNickname FormStep = "nickname_bedrock"
	StepSkinUpload      FormStep = "skin_upload"
	StepProjectUpload   FormStep = "project_upload"
	StepReferral        FormStep = "referral"
	StepReview          FormStep = "review"
)

var validFormSteps = map[FormStep]bool{
	StepPolicy:          true,
	StepPlayerName:      true,
	StepAge:             true,
	StepAbout:           true,
	StepPlans:           true,
	StepCommunity:       true,
	StepPlatform:        true,
	StepJavaNickname:    true,
	StepBedrockNickname: true,
	StepSkinUpload:      true,
	StepProjectUpload:   true,
	StepReferral:        true,
	StepReview:          true,
}

func (s FormStep) IsValid() bool {
	return validFormSteps[s]
}

func (s FormStep) String() string {
	return string(s)
}

// IsUploadStep reports whether the step accumulates media attachments and
// advances only on an explicit continue signal.
func (s FormStep) IsUploadStep() bool {
	return s == StepSkinUpload || s == StepProjectUpload
}

// UploadCategory returns the media category collected by an upload step.
func (s FormStep) UploadCategory() (MediaCategory, bool) {
	switch s {
	case StepSkinUpload:
		return CategorySkin, true
	case StepProjectUpload:
		return CategoryProject, true
	default:
		return "", false
	}
}

// NextStep computes the step after s for the given platform choice. The
// platform is only consulted after the platform step; before it, the branch
// has not been taken yet.
func NextStep(s FormStep, platform Platform) (FormStep, bool) {
	switch s {
	case StepPolicy:
		return StepPlayerName, true
	case StepPlayerName:
		return StepAge, true
	case StepAge:
		return StepAbout, true
	case StepAbout:
		return StepPlans, true
	case StepPlans:
		return StepCommunity, true
	case StepCommunity:
		return StepPlatform, true
	case StepPlatform:
		if platform.IncludesJava() {
			return StepJavaNickname, true
		}
		return StepBedrockNickname, true
	case StepJavaNickname:
		if platform.IncludesBedrock() {
			return StepBedrockNickname, true
		}
		return StepSkinUpload, true
	case StepBedrockNickname:
		return StepSkinUpload, true
	case StepSkinUpload:
		return StepProjectUpload, true
	case StepProjectUpload:
		return StepReferral, true
	case StepReferral:
		return StepReview, true
	default:
		return "", false
	}
}

// PrevStep computes the step before s, honoring the platform branch so that
// back-navigation from the step after the branch lands on the step that was
// actually shown, not a fixed linear predecessor.
func PrevStep(s FormStep, platform Platform) (FormStep, bool) {
	switch s {
	case StepPlayerName:
		return StepPolicy, true
	case StepAge:
		return StepPlayerName, true
	case StepAbout:
		return StepAge, true
	case StepPlans:
		return StepAbout, true
	case StepCommunity:
		return StepPlans, true
	case StepPlatform:
		return StepCommunity, true
	case StepJavaNickname:
		return StepPlatform, true
	case StepBedrockNickname:
		if platform.IncludesJava() {
			return StepJavaNickname, true
		}
		return StepPlatform, true
	case StepSkinUpload:
		if platform.IncludesBedrock() {
			return StepBedrockNickname, true
		}
		return StepJavaNickname, true
	case StepProjectUpload:
		return StepSkinUpload, true
	case StepReferral:
		return StepProjectUpload, true
	case StepReview:
		return StepReferral, true
	default:
		return "", false
	}
}

// AnswerField returns the profile field a text-answer step writes, if any.
func (s FormStep) AnswerField() (Field, bool) {
	switch s {
	case StepPlayerName:
		return FieldPlayerName, true
	case StepAge:
		return FieldAge, true
	case StepAbout:
		return FieldAbout, true
	case StepPlans:
		return FieldPlans, true
	case StepCommunity:
		return FieldCommunity, true
	case StepJavaNickname:
		return FieldJavaNickname, true
	case StepBedrockNickname:
		return FieldBedrockNickname, true
	case StepReferral:
		return FieldReferral, true
	default:
		return "", false
	}
}
