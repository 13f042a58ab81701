// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"fmt"

	"github.com/AccelByte/extend-experience-tracker/internal/config"
	"github.com/AccelByte/extend-experience-tracker/pkg/notify"
	"github.com/sirupsen/logrus"
)

// InitNotifier creates the level-up notifier and registers observers in the
// given order.
//
// ============================================================
// DEVELOPER: Register custom observers here.
// ============================================================
// Observers receive every level-up (and, when they implement
// notify.TransactionObserver, every logged transfer). They run
// on the notifier goroutine, never on the message path.
//
// Steps to add a new observer:
// 1. Implement notify.Observer (ID + OnLevelUp)
// 2. Pass it to InitNotifier from internal/app/app.go
//
// Observers are invoked in registration order. A failing or
// panicking observer does not stop the ones after it.
// ============================================================
func InitNotifier(cfg *config.Config, observers ...notify.Observer) (*notify.Notifier, error) {
	notifier := notify.NewNotifier(cfg.NotifyQueueSize, cfg.NotifyTimeout)

	for _, o := range observers {
		if err := notifier.Register(o); err != nil {
			return nil, fmt.Errorf("failed to register observer %s: %w", o.ID(), err)
		}
	}

	logrus.Infof("initialized notifier with observers %v", notifier.Observers())

	return notifier, nil
}
