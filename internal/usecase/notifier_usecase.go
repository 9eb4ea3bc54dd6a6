package usecase

import (
	"context"

	"gatepass/internal/domain/entity"
)

// NotifierUsecase converts ingested records and inbound push payloads into
// device-level notifications. Both the live-subscription path and the
// out-of-process push path converge here.
type NotifierUsecase interface {
	// Show posts a device notification whose tap action stores the pending
	// deep link and foregrounds the app. A blank route falls back to the
	// generic detail route.
	Show(ctx context.Context, title, body, route, eventID string) error

	// ShowRecord posts a notification for an ingested record.
	ShowRecord(ctx context.Context, record *entity.NotificationRecord) error

	// HandlePushPayload posts a notification for an out-of-process push
	// delivery, applying the fixed title/body fallbacks.
	HandlePushPayload(ctx context.Context, payload entity.PushPayload) error

	// HandleTap records the tap signal of a posted notification as the
	// pending deep link. Safe to invoke from any goroutine.
	HandleTap(sig entity.LaunchSignal)
}
