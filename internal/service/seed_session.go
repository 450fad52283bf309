package service

import (
	"context"

	"wanderlust-seed/internal/db"
	"wanderlust-seed/internal/models"
	"wanderlust-seed/internal/repository"
)

type ListingStore interface {
	DeleteAll(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, listings []models.Listing) (int, error)
	Count(ctx context.Context) (int64, error)
}

type ReviewStore interface {
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// Session es la conexión abierta durante una corrida. Run la cierra siempre.
type Session interface {
	Listings() ListingStore
	Reviews() ReviewStore
	Close(ctx context.Context) error
}

// Dialer abre la sesión. Es el primer paso del pipeline.
type Dialer func(ctx context.Context) (Session, error)

type mongoSession struct {
	conn     *db.Mongo
	listings *repository.ListingRepository
	reviews  *repository.ReviewRepository
}

func (s *mongoSession) Listings() ListingStore { return s.listings }
func (s *mongoSession) Reviews() ReviewStore   { return s.reviews }

func (s *mongoSession) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}

// MongoDialer conecta a uri (mongodb://host:port/db) y arma los repos sobre esa DB.
func MongoDialer(uri string) Dialer {
	return func(ctx context.Context) (Session, error) {
		conn, err := db.Connect(ctx, uri)
		if err != nil {
			return nil, err
		}
		return &mongoSession{
			conn:     conn,
			listings: repository.NewListingRepository(conn.DB),
			reviews:  repository.NewReviewRepository(conn.DB),
		}, nil
	}
}
