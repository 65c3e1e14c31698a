package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"incorply/internal/catalog"
)

var (
	ErrIncompleteOrder  = errors.New("incorporation selection incomplete")
	ErrAlreadyCompleted = errors.New("order already completed")
	ErrNoPaymentMethod  = errors.New("payment method required")
)

type Service struct {
	repo    Repository
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewService(repo Repository, cat *catalog.Catalog, logger *zap.Logger) *Service {
	return &Service{repo: repo, catalog: cat, logger: logger}
}

// Catalog exposes the static configuration the service was built with.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// CreateOrder starts a new wizard session with the default snapshot.
func (s *Service) CreateOrder(ctx context.Context) (string, State, error) {
	st := NewState(s.catalog)

	id, err := s.repo.Create(ctx, st)
	if err != nil {
		return "", State{}, err
	}

	s.logger.Info("order session created", zap.String("session_id", id))
	return id, st, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (State, error) {
	return s.repo.Get(ctx, id)
}

// DeleteOrder discards the session and everything it accumulated.
func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("order session deleted", zap.String("session_id", id))
	return nil
}

// ApplyPatch merges a partial update into the session snapshot. The merge and
// the re-derivation that follows are one serialized step per session.
func (s *Service) ApplyPatch(ctx context.Context, id string, p Patch) (State, error) {
	return s.repo.Update(ctx, id, func(cur State) (State, error) {
		return Apply(cur, p, s.catalog), nil
	})
}

// ApplyUpdateFn is the functional form: fn sees the current snapshot and
// returns the patch to apply.
func (s *Service) ApplyUpdateFn(ctx context.Context, id string, fn UpdateFn) (State, error) {
	return s.repo.Update(ctx, id, func(cur State) (State, error) {
		return ApplyFunc(cur, fn, s.catalog), nil
	})
}

// Items derives the billable lines for the current snapshot.
func (s *Service) Items(ctx context.Context, id string) ([]Item, float64, error) {
	st, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	items := DeriveItems(st, s.catalog)
	return items, Total(items), nil
}

// Checkout runs the mock payment step: no gateway is involved, the order is
// marked paid (or completed free of charge) and stamped with an order id.
func (s *Service) Checkout(ctx context.Context, id, paymentMethod string) (State, []Item, error) {
	var items []Item

	st, err := s.repo.Update(ctx, id, func(cur State) (State, error) {
		if cur.OrderStatus == StatusSuccess || cur.OrderStatus == StatusCompletedFree {
			return State{}, ErrAlreadyCompleted
		}

		// The selection must derive an incorporation service line. A bare
		// jurisdiction/companyType check is not enough: a USA selection
		// without a state derives nothing and must not check out.
		items = DeriveItems(cur, s.catalog)
		if !hasIncorporationItem(items) {
			return State{}, ErrIncompleteOrder
		}
		total := Total(items)

		status := StatusSuccess
		if total == 0 {
			status = StatusCompletedFree
		} else if paymentMethod == "" {
			return State{}, ErrNoPaymentMethod
		}

		now := time.Now().UTC()
		orderID := uuid.New().String()

		return Apply(cur, Patch{
			PaymentMethod: &paymentMethod,
			OrderID:       &orderID,
			OrderStatus:   &status,
			PaymentDate:   &now,
		}, s.catalog), nil
	})
	if err != nil {
		return State{}, nil, err
	}

	s.logger.Info("order checked out",
		zap.String("session_id", id),
		zap.String("order_id", st.OrderID),
		zap.String("status", string(st.OrderStatus)),
		zap.Float64("total", Total(items)),
	)

	return st, items, nil
}

func hasIncorporationItem(items []Item) bool {
	for _, it := range items {
		if it.ID == ItemIncorporationService {
			return true
		}
	}
	return false
}
