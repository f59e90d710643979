package common

import (
	"context"
	"errors"
	"fmt"

	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/internal/repository"
	"github.com/citytrail/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// ApprovalVerifier checks that the request user holds an approved
// registration for an activity before playing in it.
type ApprovalVerifier struct {
	participantRepo repository.ParticipantRepository
}

func NewApprovalVerifier(participantRepo repository.ParticipantRepository) *ApprovalVerifier {
	return &ApprovalVerifier{participantRepo: participantRepo}
}

func (verifier *ApprovalVerifier) Verify(ctx context.Context, activityID string) error {
	userID := xcontext.RequestUserID(ctx)
	participant, err := verifier.participantRepo.Get(ctx, userID, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user did not register for this activity")
		}

		return err
	}

	if participant.Status != entity.ParticipantApproved {
		return fmt.Errorf("registration is %s", participant.Status)
	}

	return nil
}
