package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"wanderlust-seed/internal/models"
)

const closeTimeout = 5 * time.Second

// ErrCountMismatch: después del insert las colecciones no quedaron como el dataset.
var ErrCountMismatch = errors.New("conteo inesperado tras el seed")

// Report resume una corrida.
type Report struct {
	State           State         `json:"state"`
	FailedAt        State         `json:"failedAt,omitempty"`
	DeletedListings int64         `json:"deletedListings"`
	DeletedReviews  int64         `json:"deletedReviews"`
	Inserted        int           `json:"inserted"`
	Duration        time.Duration `json:"duration"`
	FinishedAt      time.Time     `json:"finishedAt"`
}

// SeedService borra listings y reviews y vuelve a cargar el dataset con el owner fijo.
// Cada Run es un reseed completo: dos corridas seguidas dejan el mismo contenido.
type SeedService struct {
	dial    Dialer
	dataset []models.Listing
	owner   any
}

func NewSeedService(dial Dialer, dataset []models.Listing, ownerID string) *SeedService {
	return &SeedService{
		dial:    dial,
		dataset: dataset,
		owner:   models.OwnerRef(ownerID),
	}
}

type seedStep struct {
	state State
	run   func(ctx context.Context) error
}

// Run ejecuta connect -> reset -> transform -> load en orden y corta en el primer error,
// que vuelve envuelto en *StepError. La sesión se cierra en todos los caminos.
func (s *SeedService) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	rep := &Report{State: StateDisconnected}

	var (
		sess        Session
		transformed []models.Listing
	)

	defer func() {
		if sess != nil {
			closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
			if err := sess.Close(closeCtx); err != nil {
				log.Printf("[seed] error cerrando la conexión: %v", err)
			}
			cancel()
		}
	}()

	steps := []seedStep{
		{StateConnecting, func(ctx context.Context) error {
			if s.dial == nil {
				return errors.New("sin dialer configurado")
			}
			conn, err := s.dial(ctx)
			if err != nil {
				return err
			}
			sess = conn
			s.enter(rep, StateConnected)
			return nil
		}},
		{StateResetting, func(ctx context.Context) error {
			var err error
			rep.DeletedListings, rep.DeletedReviews, err = s.Reset(ctx, sess)
			return err
		}},
		{StateTransforming, func(ctx context.Context) error {
			transformed = AttachOwner(s.dataset, s.owner)
			return nil
		}},
		{StateLoading, func(ctx context.Context) error {
			var err error
			rep.Inserted, err = s.Load(ctx, sess.Listings(), transformed)
			if err != nil {
				return err
			}
			return s.Verify(ctx, sess, rep.Inserted)
		}},
	}

	for _, st := range steps {
		s.enter(rep, st.state)
		if err := st.run(ctx); err != nil {
			rep.FailedAt = st.state
			s.finish(rep, StateFailed, start)
			return rep, &StepError{Step: st.state, Err: err}
		}
	}

	s.finish(rep, StateDone, start)
	log.Printf("[seed] datos inicializados: %d listings (borrados: %d listings, %d reviews) en %s",
		rep.Inserted, rep.DeletedListings, rep.DeletedReviews, rep.Duration)
	return rep, nil
}

// Reset borra listings y después reviews, sin filtro. Si falla listings no toca reviews.
func (s *SeedService) Reset(ctx context.Context, sess Session) (listings, reviews int64, err error) {
	listings, err = sess.Listings().DeleteAll(ctx)
	if err != nil {
		return 0, 0, err
	}
	log.Printf("[seed] %s: %d documentos borrados", models.ListingsCollection, listings)

	reviews, err = sess.Reviews().DeleteAll(ctx)
	if err != nil {
		return listings, 0, err
	}
	log.Printf("[seed] %s: %d documentos borrados", models.ReviewsCollection, reviews)
	return listings, reviews, nil
}

// Load inserta todo en un solo bulk insert. No es idempotente: llamarlo dos veces
// sin Reset en el medio duplica los listings.
func (s *SeedService) Load(ctx context.Context, store ListingStore, listings []models.Listing) (int, error) {
	n, err := store.InsertMany(ctx, listings)
	if err != nil {
		return 0, err
	}
	log.Printf("[seed] %s: %d documentos insertados", models.ListingsCollection, n)
	return n, nil
}

// Verify chequea que listings tenga exactamente lo insertado y reviews quede vacía.
func (s *SeedService) Verify(ctx context.Context, sess Session, inserted int) error {
	listings, err := sess.Listings().Count(ctx)
	if err != nil {
		return err
	}
	reviews, err := sess.Reviews().Count(ctx)
	if err != nil {
		return err
	}
	log.Printf("[seed] conteo final: %s=%d %s=%d", models.ListingsCollection, listings, models.ReviewsCollection, reviews)

	if listings != int64(inserted) || reviews != 0 {
		return fmt.Errorf("%w: %s=%d (esperados %d), %s=%d",
			ErrCountMismatch, models.ListingsCollection, listings, inserted, models.ReviewsCollection, reviews)
	}
	return nil
}

func (s *SeedService) enter(rep *Report, st State) {
	rep.State = st
	log.Printf("[seed] estado: %s", st)
}

func (s *SeedService) finish(rep *Report, st State, start time.Time) {
	rep.Duration = time.Since(start)
	rep.FinishedAt = time.Now()
	s.enter(rep, st)
}
