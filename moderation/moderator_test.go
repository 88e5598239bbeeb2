package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModerator_Censor(t *testing.T) {
	moderator, err := NewModerator([]string{"idiot", "stupid"}, '*')
	require.NoError(t, err)

	tests := []struct {
		description string
		input       string
		want        string
		wantMasked  bool
	}{
		{
			"Should mask a plain forbidden word",
			"you are an idiot sometimes",
			"you are an ***** sometimes",
			true,
		},
		{
			"Should mask regardless of case",
			"STUPID question",
			"****** question",
			true,
		},
		{
			"Should mask leet substitutions",
			"such an 1d10t",
			"such an *****",
			true,
		},
		{
			"Should mask the whole span of a word split by punctuation",
			"s.t.u.p.i.d",
			"***********",
			true,
		},
		{
			"Should leave clean text untouched",
			"see you at the appointment",
			"see you at the appointment",
			false,
		},
		{
			"Should leave empty text untouched",
			"",
			"",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			got, masked := moderator.Censor(tt.input)
			req.Equal(tt.want, got)
			req.Equal(tt.wantMasked, masked)
		})
	}
}

func TestModerator_Empty_Word_List_Never_Censors(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator(nil, '*')
	req.NoError(err)

	got, masked := moderator.Censor("any idiot text goes through")
	req.Equal("any idiot text goes through", got)
	req.False(masked)
}

func TestDetectLanguage(t *testing.T) {
	req := require.New(t)

	req.Equal("en", DetectLanguage("Good morning, how did grandma sleep last night?"))
	req.Equal("fr", DetectLanguage("Bonjour, comment s'est passée la nuit de mamie ?"))
}
