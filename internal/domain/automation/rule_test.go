package automation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reputaai/reputaai/internal/domain/review"
)

func TestNewRule_Validation(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		threshold int
		action    string
		wantErr   string
	}{
		{"valid rating rule", ConditionRatingAtMost, 2, ActionEmailAlert, ""},
		{"valid comment rule", ConditionHasComment, 0, ActionAutoReply, ""},
		{"threshold too high", ConditionRatingAtLeast, 6, ActionAutoReply, "threshold"},
		{"threshold zero", ConditionRatingAtMost, 0, ActionAutoReply, "threshold"},
		{"bad condition", "rating_equals", 3, ActionAutoReply, "unknown condition"},
		{"bad action", ConditionHasComment, 0, "webhook", "unknown action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := NewRule("rule_abc", 1, "test", tt.condition, tt.threshold, tt.action, "")
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.True(t, rule.Enabled)
				assert.Equal(t, TriggerNewReview, rule.Trigger)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestRule_Matches(t *testing.T) {
	lowRating := &review.ExternalReview{Rating: 2, Comment: "bad service"}
	highRating := &review.ExternalReview{Rating: 5}
	unrated := &review.ExternalReview{Rating: 0, Comment: "no stars"}

	tests := []struct {
		name      string
		condition string
		threshold int
		rev       *review.ExternalReview
		want      bool
	}{
		{"at most matches low", ConditionRatingAtMost, 3, lowRating, true},
		{"at most skips high", ConditionRatingAtMost, 3, highRating, false},
		{"at most skips unrated", ConditionRatingAtMost, 3, unrated, false},
		{"at least matches high", ConditionRatingAtLeast, 4, highRating, true},
		{"at least skips low", ConditionRatingAtLeast, 4, lowRating, false},
		{"has comment", ConditionHasComment, 0, lowRating, true},
		{"has comment skips empty", ConditionHasComment, 0, highRating, false},
		{"no comment", ConditionNoComment, 0, highRating, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &Rule{Condition: tt.condition, Threshold: tt.threshold, Enabled: true}
			assert.Equal(t, tt.want, rule.Matches(tt.rev))
		})
	}
}

func TestRule_Matches_Disabled(t *testing.T) {
	rule := &Rule{Condition: ConditionHasComment, Enabled: false}
	assert.False(t, rule.Matches(&review.ExternalReview{Comment: "hello"}))
}
