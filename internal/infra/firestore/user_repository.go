package firestore

import (
	"context"

	"gatepass/config"
	"gatepass/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type userRepository struct {
	client     *firestore.Client
	collection string
}

// NewUserRepository creates a Firestore-backed user repository
func NewUserRepository(client *firestore.Client, cfg *config.Config) repository.UserRepository {
	return &userRepository{
		client:     client,
		collection: cfg.Notifications.UserCollection,
	}
}

// UpdatePushToken merge-writes the fcmToken field, leaving every other field
// on the user record untouched.
func (r *userRepository) UpdatePushToken(ctx context.Context, userID, token string) error {
	_, err := r.client.Collection(r.collection).Doc(userID).Set(ctx, map[string]any{
		"fcmToken": token,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Wrap(err, "failed to merge fcmToken")
	}

	return nil
}

// SetNotificationsEnabled merge-writes the notificationsEnabled field.
func (r *userRepository) SetNotificationsEnabled(ctx context.Context, userID string, enabled bool) error {
	_, err := r.client.Collection(r.collection).Doc(userID).Set(ctx, map[string]any{
		"notificationsEnabled": enabled,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Wrap(err, "failed to merge notificationsEnabled")
	}

	return nil
}

// GetNotificationsEnabled reads the stored flag. Absent records and absent
// fields both report true: users are opted in until they opt out.
func (r *userRepository) GetNotificationsEnabled(ctx context.Context, userID string) (bool, error) {
	snap, err := r.client.Collection(r.collection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return true, nil
		}

		return true, errors.Wrap(err, "failed to read user record")
	}

	value, err := snap.DataAt("notificationsEnabled")
	if err != nil {
		// Field not present on the record.
		return true, nil
	}

	enabled, ok := value.(bool)
	if !ok {
		return true, nil
	}

	return enabled, nil
}
