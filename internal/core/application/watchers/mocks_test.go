package watchers_test

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) GetForUpdate(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

type MockAlertPublisher struct{ mock.Mock }

func (m *MockAlertPublisher) Publish(ctx context.Context, alert ports.Alert) error {
	return m.Called(ctx, alert).Error(0)
}

// scriptedFeed sends its changes and then waits for cancellation, or
// returns err right away when set.
type scriptedFeed struct {
	changes []ports.Change
	err     error
}

func (f scriptedFeed) Run(ctx context.Context, out chan<- ports.Change) error {
	if f.err != nil {
		return f.err
	}
	for _, c := range f.changes {
		select {
		case out <- c:
		case <-ctx.Done():
			return nil
		}
	}
	<-ctx.Done()
	return nil
}
