package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "minegate/internal/domain/application/valueobjects"
)

func validProfile() Profile {
	return Profile{
		PlayerName:      "Alex",
		Age:             "21",
		About:           "builder",
		Plans:           "build a town",
		Community:       "respect",
		Platform:        vo.PlatformBoth,
		JavaNickname:    "alex_java",
		BedrockNickname: "alex_bedrock",
		Referral:        "a friend",
	}
}

func TestNewApplication_PlatformConditionalNicknames(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Profile)
		wantErr string
	}{
		{
			name:   "both platforms with both nicknames",
			mutate: func(p *Profile) {},
		},
		{
			name: "java only without bedrock nickname",
			mutate: func(p *Profile) {
				p.Platform = vo.PlatformJava
				p.BedrockNickname = ""
			},
		},
		{
			name: "bedrock only without java nickname",
			mutate: func(p *Profile) {
				p.Platform = vo.PlatformBedrock
				p.JavaNickname = ""
			},
		},
		{
			name: "java platform requires java nickname",
			mutate: func(p *Profile) {
				p.Platform = vo.PlatformJava
				p.JavaNickname = ""
			},
			wantErr: "java nickname is required",
		},
		{
			name: "both platforms require bedrock nickname",
			mutate: func(p *Profile) {
				p.BedrockNickname = ""
			},
			wantErr: "bedrock nickname is required",
		},
		{
			name: "invalid platform",
			mutate: func(p *Profile) {
				p.Platform = "switch"
			},
			wantErr: "invalid platform",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			tt.mutate(&profile)
			app, err := NewApplication(100, profile)
			if tt.wantErr != "" {
				assert.Nil(t, app)
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusPending, app.Status())
			assert.Equal(t, 0, app.EditCount())
		})
	}
}

func TestApplication_ApproveTransitions(t *testing.T) {
	app, err := NewApplication(100, validProfile())
	require.NoError(t, err)

	require.NoError(t, app.Approve())
	assert.Equal(t, vo.StatusApproved, app.Status())

	assert.Error(t, app.Approve(), "repeated approve must be rejected")
	assert.Error(t, app.Reject("late"), "approved application cannot be rejected")
}

func TestApplication_RejectKeepsExistingCommentOnEmpty(t *testing.T) {
	app, err := NewApplication(100, validProfile())
	require.NoError(t, err)
	app.SetComment("needs more detail")

	require.NoError(t, app.Reject(""))
	assert.Equal(t, vo.StatusRejected, app.Status())
	assert.Equal(t, "needs more detail", app.Comment())
}

func TestApplication_EditCountIsMonotonicAndCapped(t *testing.T) {
	app, err := NewApplication(100, validProfile())
	require.NoError(t, err)

	for i := 1; i <= MaxEditCount; i++ {
		require.NoError(t, app.Reject("try again"))
		require.NoError(t, app.GrantEdit())
		assert.Equal(t, i, app.EditCount())
		assert.Equal(t, vo.StatusPending, app.Status())
	}

	require.NoError(t, app.Reject("still no"))
	assert.False(t, app.CanEdit())
	assert.Error(t, app.GrantEdit())
	assert.Equal(t, MaxEditCount, app.EditCount(), "failed grant must not move the counter")
}

func TestApplication_ApplyProfileReplacesFields(t *testing.T) {
	app, err := NewApplication(100, validProfile())
	require.NoError(t, err)

	updated := validProfile()
	updated.PlayerName = "Steve"
	updated.Platform = vo.PlatformJava
	updated.BedrockNickname = ""

	require.NoError(t, app.ApplyProfile(updated))
	assert.Equal(t, "Steve", app.PlayerName())
	assert.Equal(t, vo.PlatformJava, app.Platform())
	assert.Equal(t, updated, app.ProfileSnapshot())
}

func TestReconstructApplication_RejectsOutOfRangeEditCount(t *testing.T) {
	_, err := ReconstructApplication(1, 100, vo.StatusPending, validProfile(), "", MaxEditCount+1, time.Now(), time.Now())
	assert.Error(t, err)
}
