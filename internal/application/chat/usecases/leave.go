package usecases

import (
	"context"
	"strings"
	"time"

	"likenovel/internal/domain/chat"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/logger"
)

type LeaveRoomUseCase struct {
	repo   chat.Repository
	logger logger.Interface
	now    func() time.Time
}

func NewLeaveRoomUseCase(repo chat.Repository, logger logger.Interface) *LeaveRoomUseCase {
	return &LeaveRoomUseCase{repo: repo, logger: logger, now: biztime.Now}
}

// Execute hides the room for the caller only; the counterpart keeps it.
func (uc *LeaveRoomUseCase) Execute(ctx context.Context, roomID, userID int64) error {
	if _, err := requireMember(ctx, uc.repo, roomID, userID); err != nil {
		return err
	}
	if err := uc.repo.SetActive(ctx, roomID, userID, false, uc.now()); err != nil {
		return err
	}
	uc.logger.Infow("chat room left", "room_id", roomID, "user_id", userID)
	return nil
}

type ReportRoomCommand struct {
	RoomID int64
	UserID int64
	Reason string
	Detail *string
}

type ReportRoomUseCase struct {
	repo   chat.Repository
	logger logger.Interface
	now    func() time.Time
}

func NewReportRoomUseCase(repo chat.Repository, logger logger.Interface) *ReportRoomUseCase {
	return &ReportRoomUseCase{repo: repo, logger: logger, now: biztime.Now}
}

// Execute records at most one report per reporter and room; a repeat is accepted silently.
func (uc *ReportRoomUseCase) Execute(ctx context.Context, cmd ReportRoomCommand) error {
	reason, err := chat.ParseReportReason(cmd.Reason)
	if err != nil {
		return err
	}
	if _, err := requireMember(ctx, uc.repo, cmd.RoomID, cmd.UserID); err != nil {
		return err
	}

	var detail *string
	if cmd.Detail != nil {
		if d := strings.TrimSpace(*cmd.Detail); d != "" {
			detail = &d
		}
	}
	created, err := uc.repo.SaveReport(ctx, cmd.RoomID, cmd.UserID, reason, detail, uc.now())
	if err != nil {
		return err
	}
	uc.logger.Infow("chat room reported",
		"room_id", cmd.RoomID,
		"reporter_id", cmd.UserID,
		"reason", reason,
		"created", created)
	return nil
}
