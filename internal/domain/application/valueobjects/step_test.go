package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStep_LinearSequence(t *testing.T) {
	tests := []struct {
		name     string
		from     FormStep
		platform Platform
		want     FormStep
	}{
		{"policy to player name", StepPolicy, "", StepPlayerName},
		{"player name to age", StepPlayerName, "", StepAge},
		{"age to about", StepAge, "", StepAbout},
		{"about to plans", StepAbout, "", StepPlans},
		{"plans to community", StepPlans, "", StepCommunity},
		{"community to platform", StepCommunity, "", StepPlatform},
		{"skin upload to project upload", StepSkinUpload, PlatformJava, StepProjectUpload},
		{"project upload to referral", StepProjectUpload, PlatformJava, StepReferral},
		{"referral to review", StepReferral, PlatformJava, StepReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextStep(tt.from, tt.platform)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextStep_PlatformBranch(t *testing.T) {
	tests := []struct {
		name     string
		from     FormStep
		platform Platform
		want     FormStep
	}{
		{"java goes to java nickname", StepPlatform, PlatformJava, StepJavaNickname},
		{"both goes to java nickname first", StepPlatform, PlatformBoth, StepJavaNickname},
		{"bedrock skips java nickname", StepPlatform, PlatformBedrock, StepBedrockNickname},
		{"java only skips bedrock nickname", StepJavaNickname, PlatformJava, StepSkinUpload},
		{"both enters bedrock nickname after java", StepJavaNickname, PlatformBoth, StepBedrockNickname},
		{"bedrock nickname goes to skin upload", StepBedrockNickname, PlatformBedrock, StepSkinUpload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextStep(tt.from, tt.platform)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextStep_NoStepAfterReview(t *testing.T) {
	_, ok := NextStep(StepReview, PlatformBoth)
	assert.False(t, ok)
}

func TestPrevStep_BranchAware(t *testing.T) {
	tests := []struct {
		name     string
		from     FormStep
		platform Platform
		want     FormStep
	}{
		{"java nickname back to platform", StepJavaNickname, PlatformJava, StepPlatform},
		{"bedrock nickname back to java when both", StepBedrockNickname, PlatformBoth, StepJavaNickname},
		{"bedrock nickname back to platform when bedrock only", StepBedrockNickname, PlatformBedrock, StepPlatform},
		{"skin back to bedrock nickname when both", StepSkinUpload, PlatformBoth, StepBedrockNickname},
		{"skin back to bedrock nickname when bedrock only", StepSkinUpload, PlatformBedrock, StepBedrockNickname},
		{"skin back to java nickname when java only", StepSkinUpload, PlatformJava, StepJavaNickname},
		{"review back to referral", StepReview, PlatformBoth, StepReferral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PrevStep(tt.from, tt.platform)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrevStep_NoStepBeforePolicy(t *testing.T) {
	_, ok := PrevStep(StepPolicy, PlatformJava)
	assert.False(t, ok)
}

func TestPrevStep_InvertsNextStep(t *testing.T) {
	for _, platform := range []Platform{PlatformJava, PlatformBedrock, PlatformBoth} {
		step := StepPolicy
		for {
			next, ok := NextStep(step, platform)
			if !ok {
				break
			}
			back, ok := PrevStep(next, platform)
			assert.True(t, ok)
			assert.Equal(t, step, back, "platform %s: back from %s", platform, next)
			step = next
		}
		assert.Equal(t, StepReview, step)
	}
}

func TestFormStep_UploadCategory(t *testing.T) {
	category, ok := StepSkinUpload.UploadCategory()
	assert.True(t, ok)
	assert.Equal(t, CategorySkin, category)
	assert.Equal(t, 2, category.Cap())

	category, ok = StepProjectUpload.UploadCategory()
	assert.True(t, ok)
	assert.Equal(t, CategoryProject, category)
	assert.Equal(t, 5, category.Cap())

	_, ok = StepAge.UploadCategory()
	assert.False(t, ok)
}

func TestFormStep_AnswerField(t *testing.T) {
	field, ok := StepAge.AnswerField()
	assert.True(t, ok)
	assert.Equal(t, FieldAge, field)

	for _, step := range []FormStep{StepPolicy, StepPlatform, StepSkinUpload, StepProjectUpload, StepReview} {
		_, ok := step.AnswerField()
		assert.False(t, ok, "step %s should not have an answer field", step)
	}
}
