// Package automation defines tenant-configured trigger/condition/action rules
// evaluated against newly synced reviews.
package automation

import (
	"context"
	"fmt"
	"time"

	"github.com/reputaai/reputaai/internal/domain/review"
)

// Trigger values. Only new reviews fire rules today.
const (
	TriggerNewReview = "new_review"
)

// Condition kinds.
const (
	ConditionRatingAtMost  = "rating_at_most"
	ConditionRatingAtLeast = "rating_at_least"
	ConditionHasComment    = "has_comment"
	ConditionNoComment     = "no_comment"
)

// Action kinds.
const (
	ActionAutoReply  = "auto_reply"
	ActionEmailAlert = "email_alert"
)

// Rule is a simple trigger/condition/action tuple. Matching is a linear scan
// with direct threshold checks, not a rule engine.
type Rule struct {
	ID          uint
	SID         string // public short ID, "rule_" prefixed
	BusinessID  uint
	Name        string
	Trigger     string
	Condition   string
	Threshold   int    // rating bound for the rating conditions
	Action      string
	ActionParam string // reply template or alert email address
	Enabled     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewRule(sid string, businessID uint, name, condition string, threshold int, action, actionParam string) (*Rule, error) {
	if sid == "" {
		return nil, fmt.Errorf("rule SID is required")
	}
	if businessID == 0 {
		return nil, fmt.Errorf("business ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("rule name is required")
	}
	switch condition {
	case ConditionRatingAtMost, ConditionRatingAtLeast:
		if threshold < 1 || threshold > 5 {
			return nil, fmt.Errorf("rating threshold must be between 1 and 5")
		}
	case ConditionHasComment, ConditionNoComment:
	default:
		return nil, fmt.Errorf("unknown condition: %s", condition)
	}
	switch action {
	case ActionAutoReply, ActionEmailAlert:
	default:
		return nil, fmt.Errorf("unknown action: %s", action)
	}

	now := time.Now()
	return &Rule{
		SID:         sid,
		BusinessID:  businessID,
		Name:        name,
		Trigger:     TriggerNewReview,
		Condition:   condition,
		Threshold:   threshold,
		Action:      action,
		ActionParam: actionParam,
		Enabled:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Matches reports whether the rule's condition holds for the given review.
func (r *Rule) Matches(rev *review.ExternalReview) bool {
	if !r.Enabled {
		return false
	}
	switch r.Condition {
	case ConditionRatingAtMost:
		return rev.Rating > 0 && rev.Rating <= r.Threshold
	case ConditionRatingAtLeast:
		return rev.Rating >= r.Threshold
	case ConditionHasComment:
		return rev.Comment != ""
	case ConditionNoComment:
		return rev.Comment == ""
	default:
		return false
	}
}

type Repository interface {
	Create(ctx context.Context, r *Rule) error
	GetBySID(ctx context.Context, sid string) (*Rule, error)
	ListByBusinessID(ctx context.Context, businessID uint) ([]*Rule, error)
	Update(ctx context.Context, r *Rule) error
	Delete(ctx context.Context, id uint) error
}
