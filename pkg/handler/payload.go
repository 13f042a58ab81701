// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"fmt"
)

// Field names of the event payloads, as declared in chat_event.proto.
const (
	FieldAuthorID    = "author_id"
	FieldGroupID     = "group_id"
	FieldNewName     = "new_name"
	FieldMemberCount = "member_count"
	FieldReceiverID  = "receiver_id"
	FieldSenderID    = "sender_id"
)

type idField struct {
	name  string
	value int64
}

// requireIDs rejects unset ids, which read as zero in proto3, and negative
// ids.
func requireIDs(fields ...idField) error {
	for _, f := range fields {
		if f.value == 0 {
			return fmt.Errorf("missing field %s", f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("field %s is not an id: %d", f.name, f.value)
		}
	}
	return nil
}
