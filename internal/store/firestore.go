package store

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dateminder/internal/types"
)

// Collection and document names in the store. "wives" is the historical name
// of the people collection and is kept for data compatibility.
const (
	peopleCollection      = "wives"
	subscribersCollection = "subscribers"
	configCollection      = "config"
	emailConfigDoc        = "emailConfig"
)

// FirestoreStore implements Reader over a Cloud Firestore client. The client
// is constructed once at process start and passed in; the store never owns
// its lifecycle.
type FirestoreStore struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewFirestoreStore creates a FirestoreStore.
func NewFirestoreStore(client *firestore.Client, logger *slog.Logger) *FirestoreStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FirestoreStore{client: client, logger: logger}
}

// DeliveryConfig reads config/emailConfig. A missing document is not an
// error: it means the job has nothing to do.
func (s *FirestoreStore) DeliveryConfig(ctx context.Context) (*types.DeliveryConfig, error) {
	snap, err := s.client.Collection(configCollection).Doc(emailConfigDoc).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamStore,
			fmt.Sprintf("read %s/%s", configCollection, emailConfigDoc), err)
	}

	var cfg types.DeliveryConfig
	if err := snap.DataTo(&cfg); err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamStore,
			fmt.Sprintf("decode %s/%s", configCollection, emailConfigDoc), err)
	}
	return &cfg, nil
}

// People returns all person records from the historical "wives" collection.
func (s *FirestoreStore) People(ctx context.Context) ([]types.Person, error) {
	iter := s.client.Collection(peopleCollection).Documents(ctx)
	defer iter.Stop()

	var people []types.Person
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, types.NewAppError(types.ErrCodeUpstreamStore,
				fmt.Sprintf("read collection %s", peopleCollection), err)
		}

		var p types.Person
		if err := snap.DataTo(&p); err != nil {
			// A single unreadable record must not sink the whole run.
			s.logger.Warn("skipping undecodable person record",
				"doc_id", snap.Ref.ID, "error", err)
			continue
		}
		people = append(people, p)
	}
	return people, nil
}

// Subscribers returns all subscriber records in store order.
func (s *FirestoreStore) Subscribers(ctx context.Context) ([]types.Subscriber, error) {
	iter := s.client.Collection(subscribersCollection).Documents(ctx)
	defer iter.Stop()

	var subs []types.Subscriber
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, types.NewAppError(types.ErrCodeUpstreamStore,
				fmt.Sprintf("read collection %s", subscribersCollection), err)
		}

		var sub types.Subscriber
		if err := snap.DataTo(&sub); err != nil {
			s.logger.Warn("skipping undecodable subscriber record",
				"doc_id", snap.Ref.ID, "error", err)
			continue
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// Compile-time assertion that FirestoreStore satisfies Reader.
var _ Reader = (*FirestoreStore)(nil)
