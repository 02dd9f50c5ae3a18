package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"giftlink_backend/internal/feature/gifts/domain/entity"
	"giftlink_backend/internal/feature/gifts/usecase"
)

// mockGiftRepository is a mock implementation of the GiftRepository interface.
type mockGiftRepository struct {
	listFn     func(ctx context.Context) ([]entity.Gift, error)
	findByIDFn func(ctx context.Context, id uint) (*entity.Gift, error)
	searchFn   func(ctx context.Context, q usecase.SearchQuery) ([]entity.Gift, error)
	createFn   func(ctx context.Context, gift *entity.Gift) error
}

func (m *mockGiftRepository) List(ctx context.Context) ([]entity.Gift, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockGiftRepository) FindByID(ctx context.Context, id uint) (*entity.Gift, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, usecase.ErrGiftNotFound
}

func (m *mockGiftRepository) Search(ctx context.Context, q usecase.SearchQuery) ([]entity.Gift, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return nil, nil
}

func (m *mockGiftRepository) Create(ctx context.Context, gift *entity.Gift) error {
	if m.createFn != nil {
		return m.createFn(ctx, gift)
	}
	return nil
}

// fixtureGifts returns a deterministic listing for cache round-trips.
func fixtureGifts() []entity.Gift {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []entity.Gift{
		{ID: 1, Name: "Wooden chair", Category: "Furniture", CreatedAt: created},
		{ID: 2, Name: "Desk lamp", Category: "Household", CreatedAt: created.Add(time.Hour)},
	}
}

func TestNewCachingGiftRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "gifts",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "gifts",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingGiftRepository(nil, tt.ttl, &mockGiftRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

func TestCachingGiftRepository_List_NilRedis(t *testing.T) {
	t.Parallel()

	innerCalled := false
	inner := &mockGiftRepository{
		listFn: func(ctx context.Context) ([]entity.Gift, error) {
			innerCalled = true
			return fixtureGifts(), nil
		},
	}

	repo := NewCachingGiftRepository(nil, time.Minute, inner, "gifts")
	gifts, err := repo.List(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !innerCalled {
		t.Error("inner repository was not called")
	}
	if len(gifts) != 2 {
		t.Errorf("expected 2 gifts, got %d", len(gifts))
	}
}

func TestCachingGiftRepository_List_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	cached, _ := json.Marshal(fixtureGifts())
	mock.ExpectGet("gifts:all").SetVal(string(cached))

	inner := &mockGiftRepository{
		listFn: func(ctx context.Context) ([]entity.Gift, error) {
			t.Error("inner repository must not be called on a cache hit")
			return nil, nil
		},
	}

	repo := NewCachingGiftRepository(rdb, time.Minute, inner, "gifts")
	gifts, err := repo.List(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gifts) != 2 || gifts[0].Name != "Wooden chair" {
		t.Errorf("unexpected cached result: %+v", gifts)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("redis expectations not met: %v", err)
	}
}

func TestCachingGiftRepository_List_CacheMiss(t *testing.T) {
	t.Parallel()

	gifts := fixtureGifts()
	marshaled, _ := json.Marshal(gifts)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("gifts:all").RedisNil()
	mock.ExpectSet("gifts:all", marshaled, time.Minute).SetVal("OK")

	inner := &mockGiftRepository{
		listFn: func(ctx context.Context) ([]entity.Gift, error) {
			return gifts, nil
		},
	}

	repo := NewCachingGiftRepository(rdb, time.Minute, inner, "gifts")
	out, err := repo.List(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("expected 2 gifts, got %d", len(out))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("redis expectations not met: %v", err)
	}
}

func TestCachingGiftRepository_FindByID(t *testing.T) {
	t.Parallel()

	t.Run("cache miss stores the gift", func(t *testing.T) {
		t.Parallel()

		gift := fixtureGifts()[0]
		marshaled, _ := json.Marshal(&gift)

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("gifts:id:1").RedisNil()
		mock.ExpectSet("gifts:id:1", marshaled, time.Minute).SetVal("OK")

		inner := &mockGiftRepository{
			findByIDFn: func(ctx context.Context, id uint) (*entity.Gift, error) {
				return &gift, nil
			},
		}

		repo := NewCachingGiftRepository(rdb, time.Minute, inner, "gifts")
		out, err := repo.FindByID(context.Background(), 1)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Name != "Wooden chair" {
			t.Errorf("unexpected gift: %+v", out)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("redis expectations not met: %v", err)
		}
	})

	t.Run("not-found is not cached", func(t *testing.T) {
		t.Parallel()

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("gifts:id:999").RedisNil()

		repo := NewCachingGiftRepository(rdb, time.Minute, &mockGiftRepository{}, "gifts")
		_, err := repo.FindByID(context.Background(), 999)

		if !errors.Is(err, usecase.ErrGiftNotFound) {
			t.Errorf("expected ErrGiftNotFound, got: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("redis expectations not met: %v", err)
		}
	})
}

func TestCachingGiftRepository_Create_InvalidatesCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectScan(0, "gifts:*", 200).SetVal([]string{"gifts:all", "gifts:id:1"}, 0)
	mock.ExpectDel("gifts:all", "gifts:id:1").SetVal(2)

	created := false
	inner := &mockGiftRepository{
		createFn: func(ctx context.Context, gift *entity.Gift) error {
			created = true
			return nil
		},
	}

	repo := NewCachingGiftRepository(rdb, time.Minute, inner, "gifts")
	err := repo.Create(context.Background(), &entity.Gift{Name: "Desk lamp"})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("inner repository was not called")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("redis expectations not met: %v", err)
	}
}

func TestCachingGiftRepository_Create_InnerFailureSkipsInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()

	innerErr := errors.New("insert failed")
	inner := &mockGiftRepository{
		createFn: func(ctx context.Context, gift *entity.Gift) error {
			return innerErr
		},
	}

	repo := NewCachingGiftRepository(rdb, time.Minute, inner, "gifts")
	err := repo.Create(context.Background(), &entity.Gift{Name: "Desk lamp"})

	if !errors.Is(err, innerErr) {
		t.Errorf("expected inner error, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("redis expectations not met: %v", err)
	}
}
