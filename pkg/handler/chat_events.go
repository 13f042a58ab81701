// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"context"
	"errors"

	"github.com/AccelByte/extend-experience-tracker/pkg/common"
	"github.com/AccelByte/extend-experience-tracker/pkg/notify"
	pb "github.com/AccelByte/extend-experience-tracker/pkg/pb/experience/v1"
	"github.com/AccelByte/extend-experience-tracker/pkg/storage"
	"github.com/AccelByte/extend-experience-tracker/pkg/tracker"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// EventTracker is the part of the tracker the handler drives.
type EventTracker interface {
	OnMessage(ctx context.Context, msg tracker.Message) error
	OnGroupRenamed(ctx context.Context, groupID int64, oldName, newName string) error
	OnMemberJoined(ctx context.Context, groupID int64, memberCount int) error
	OnMemberLeft(ctx context.Context, groupID int64, memberCount int) error
	LogTransaction(ctx context.Context, tx notify.Transaction) error
}

// ChatEvents listens for chat platform events forwarded by the gateway
type ChatEvents struct {
	pb.UnimplementedChatEventServiceServer

	tracker EventTracker
}

// NewChatEvents creates a new chat event listener
func NewChatEvents(t EventTracker) *ChatEvents {
	return &ChatEvents{tracker: t}
}

// recoverEvent turns a panic in event processing into a dropped event.
func recoverEvent(scope *common.Scope, method string, resp **emptypb.Empty, err *error) {
	if r := recover(); r != nil {
		scope.Log.Errorf("%s panicked, event dropped: %v", method, r)
		*resp = &emptypb.Empty{}
		*err = nil
	}
}

// OnMessage handles a chat message. Failures are logged and the message is
// dropped; the gateway is never asked to retry.
func (h *ChatEvents) OnMessage(ctx context.Context, in *pb.ChatMessage) (resp *emptypb.Empty, err error) {
	scope := common.GetScopeFromContext(ctx, "ChatEvents.OnMessage")
	defer scope.Finish()
	defer recoverEvent(scope, "OnMessage", &resp, &err)

	if err := requireIDs(idField{FieldAuthorID, in.GetAuthorId()}, idField{FieldGroupID, in.GetGroupId()}); err != nil {
		return &emptypb.Empty{}, status.Errorf(codes.InvalidArgument, "invalid message event: %v", err)
	}

	// direct messages carry no channel
	msg := tracker.Message{
		AuthorID:   in.GetAuthorId(),
		AuthorName: in.GetAuthorName(),
		IsBot:      in.GetIsBot(),
		GroupID:    in.GetGroupId(),
		ChannelID:  in.GetChannelId(),
	}
	scope.SetID("author_id", msg.AuthorID)
	scope.SetID("group_id", msg.GroupID)
	scope.SetAttributes("is_bot", msg.IsBot)

	if err := h.tracker.OnMessage(scope.Ctx, msg); err != nil {
		scope.TraceError(err)
		scope.Log.Errorf("message of user %d dropped: %v", msg.AuthorID, err)
	}
	return &emptypb.Empty{}, nil
}

// OnGroupRenamed handles a group rename.
func (h *ChatEvents) OnGroupRenamed(ctx context.Context, in *pb.GroupRenamed) (resp *emptypb.Empty, err error) {
	scope := common.GetScopeFromContext(ctx, "ChatEvents.OnGroupRenamed")
	defer scope.Finish()
	defer recoverEvent(scope, "OnGroupRenamed", &resp, &err)

	groupID := in.GetGroupId()
	if err := requireIDs(idField{FieldGroupID, groupID}); err != nil {
		return &emptypb.Empty{}, status.Errorf(codes.InvalidArgument, "invalid rename event: %v", err)
	}
	scope.SetID("group_id", groupID)
	if in.GetNewName() == "" {
		return &emptypb.Empty{}, status.Errorf(codes.InvalidArgument, "invalid rename event: missing field %s", FieldNewName)
	}

	err = h.tracker.OnGroupRenamed(scope.Ctx, groupID, in.GetOldName(), in.GetNewName())
	if errors.Is(err, storage.ErrGroupNotFound) {
		scope.Log.Warnf("rename of unknown group %d ignored", groupID)
		return &emptypb.Empty{}, status.Errorf(codes.NotFound, "group %d has no experience yet", groupID)
	}
	if err != nil {
		scope.TraceError(err)
		scope.Log.Errorf("rename of group %d dropped: %v", groupID, err)
		return &emptypb.Empty{}, nil
	}
	scope.TraceEvent("group renamed")
	return &emptypb.Empty{}, nil
}

// OnMemberJoined handles a member joining a group.
func (h *ChatEvents) OnMemberJoined(ctx context.Context, in *pb.MemberCountChanged) (resp *emptypb.Empty, err error) {
	scope := common.GetScopeFromContext(ctx, "ChatEvents.OnMemberJoined")
	defer scope.Finish()
	defer recoverEvent(scope, "OnMemberJoined", &resp, &err)

	return h.memberCountChanged(scope, in, h.tracker.OnMemberJoined)
}

// OnMemberLeft handles a member leaving a group.
func (h *ChatEvents) OnMemberLeft(ctx context.Context, in *pb.MemberCountChanged) (resp *emptypb.Empty, err error) {
	scope := common.GetScopeFromContext(ctx, "ChatEvents.OnMemberLeft")
	defer scope.Finish()
	defer recoverEvent(scope, "OnMemberLeft", &resp, &err)

	return h.memberCountChanged(scope, in, h.tracker.OnMemberLeft)
}

func (h *ChatEvents) memberCountChanged(
	scope *common.Scope,
	in *pb.MemberCountChanged,
	store func(context.Context, int64, int) error,
) (*emptypb.Empty, error) {
	groupID := in.GetGroupId()
	if err := requireIDs(idField{FieldGroupID, groupID}); err != nil {
		return &emptypb.Empty{}, status.Errorf(codes.InvalidArgument, "invalid member event: %v", err)
	}
	scope.SetID("group_id", groupID)
	if in.GetMemberCount() < 0 {
		return &emptypb.Empty{}, status.Errorf(codes.InvalidArgument, "invalid member event: negative %s", FieldMemberCount)
	}

	if err := store(scope.Ctx, groupID, int(in.GetMemberCount())); err != nil {
		scope.TraceError(err)
		scope.Log.Errorf("member count of group %d dropped: %v", groupID, err)
	}
	return &emptypb.Empty{}, nil
}

// OnTransaction handles a currency transfer between two users.
func (h *ChatEvents) OnTransaction(ctx context.Context, in *pb.TransactionLogged) (resp *emptypb.Empty, err error) {
	scope := common.GetScopeFromContext(ctx, "ChatEvents.OnTransaction")
	defer scope.Finish()
	defer recoverEvent(scope, "OnTransaction", &resp, &err)

	if err := requireIDs(idField{FieldReceiverID, in.GetReceiverId()}, idField{FieldSenderID, in.GetSenderId()}); err != nil {
		return &emptypb.Empty{}, status.Errorf(codes.InvalidArgument, "invalid transaction event: %v", err)
	}

	tx := notify.Transaction{
		MessageID:  in.GetMessageId(),
		ChannelID:  in.GetChannelId(),
		ReceiverID: in.GetReceiverId(),
		SenderID:   in.GetSenderId(),
		Amount:     in.GetAmount(),
	}
	if err := h.tracker.LogTransaction(scope.Ctx, tx); err != nil {
		scope.TraceError(err)
		scope.Log.Errorf("transaction from %d to %d dropped: %v", tx.SenderID, tx.ReceiverID, err)
	}
	return &emptypb.Empty{}, nil
}
