package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"astro_backend/internal/feature/astronomy/domain/entity"
)

// mockAstronomyRepository はテスト用のAstronomyRepositoryモック実装です。
type mockAstronomyRepository struct {
	fetchFn func(ctx context.Context, lat, long float64) (*entity.Astronomy, error)
}

// Fetch はモックのFetch関数を呼び出します。
func (m *mockAstronomyRepository) Fetch(ctx context.Context, lat, long float64) (*entity.Astronomy, error) {
	if m.fetchFn != nil {
		return m.fetchFn(ctx, lat, long)
	}
	return nil, nil
}

// TestNewCachingAstronomyRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingAstronomyRepository_Defaults(t *testing.T) {
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
			expectedTTL:       60 * time.Second,
			expectedNamespace: "astronomy",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       60 * time.Second,
			expectedNamespace: "astronomy",
		},
		{
			name:              "custom values preserved",
			ttl:               5 * time.Minute,
			namespace:         "custom",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingAstronomyRepository(nil, tt.ttl, &mockAstronomyRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

// TestCachingAstronomyRepository_Fetch_NilRedis はRedisがnilの場合にキャッシュをバイパスして内部リポジトリを直接呼び出すことを検証します。
func TestCachingAstronomyRepository_Fetch_NilRedis(t *testing.T) {
	t.Parallel()

	expected := &entity.Astronomy{Sunrise: "07:12", Sunset: "16:45"}

	inner := &mockAstronomyRepository{
		fetchFn: func(ctx context.Context, lat, long float64) (*entity.Astronomy, error) {
			return expected, nil
		},
	}

	// Redis is nil - should bypass cache and call inner directly
	repo := NewCachingAstronomyRepository(nil, 60*time.Second, inner, "astronomy")

	got, err := repo.Fetch(context.Background(), 52.52, 13.405)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Sunrise != expected.Sunrise {
		t.Errorf("expected sunrise %q, got %q", expected.Sunrise, got.Sunrise)
	}
}

// TestCachingAstronomyRepository_Fetch_CacheHit はキャッシュヒット時にRedisからデータを返し、内部リポジトリを呼ばないことを検証します。
func TestCachingAstronomyRepository_Fetch_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached := &entity.Astronomy{Sunrise: "07:12", Sunset: "16:45"}
	cachedJSON, _ := json.Marshal(cached)

	mock.ExpectGet("astronomy:52.5200:13.4050").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockAstronomyRepository{
		fetchFn: func(ctx context.Context, lat, long float64) (*entity.Astronomy, error) {
			innerCalled = true
			return nil, nil
		},
	}

	repo := NewCachingAstronomyRepository(rdb, 60*time.Second, inner, "astronomy")
	got, err := repo.Fetch(context.Background(), 52.52, 13.405)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if got.Sunrise != "07:12" {
		t.Errorf("expected sunrise %q, got %q", "07:12", got.Sunrise)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingAstronomyRepository_Fetch_CacheMiss はキャッシュミス時に上流からデータを取得し、キャッシュに保存することを検証します。
func TestCachingAstronomyRepository_Fetch_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := &entity.Astronomy{Sunrise: "07:12", Sunset: "16:45"}
	expectedJSON, _ := json.Marshal(expected)

	// Cache miss
	mock.ExpectGet("astronomy:52.5200:13.4050").RedisNil()
	// Set cache after fetching from inner
	mock.ExpectSet("astronomy:52.5200:13.4050", expectedJSON, 60*time.Second).SetVal("OK")

	inner := &mockAstronomyRepository{
		fetchFn: func(ctx context.Context, lat, long float64) (*entity.Astronomy, error) {
			return expected, nil
		},
	}

	repo := NewCachingAstronomyRepository(rdb, 60*time.Second, inner, "astronomy")
	got, err := repo.Fetch(context.Background(), 52.52, 13.405)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Sunset != "16:45" {
		t.Errorf("expected sunset %q, got %q", "16:45", got.Sunset)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingAstronomyRepository_Fetch_InnerError は内部リポジトリがエラーを返した場合にそのエラーが伝播され、キャッシュされないことを検証します。
func TestCachingAstronomyRepository_Fetch_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("ipgeolocation http 503")

	mock.ExpectGet("astronomy:52.5200:13.4050").RedisNil()

	inner := &mockAstronomyRepository{
		fetchFn: func(ctx context.Context, lat, long float64) (*entity.Astronomy, error) {
			return nil, expectedErr
		},
	}

	repo := NewCachingAstronomyRepository(rdb, 60*time.Second, inner, "astronomy")
	_, err := repo.Fetch(context.Background(), 52.52, 13.405)

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingAstronomyRepository_Fetch_CorruptedCache は破損したキャッシュを検出・削除し、上流にフォールバックすることを検証します。
func TestCachingAstronomyRepository_Fetch_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := &entity.Astronomy{Sunrise: "07:12"}
	expectedJSON, _ := json.Marshal(expected)

	// Return invalid JSON from cache
	mock.ExpectGet("astronomy:52.5200:13.4050").SetVal("invalid json")
	// Delete corrupted cache
	mock.ExpectDel("astronomy:52.5200:13.4050").SetVal(1)
	// Set new cache after fetching from inner
	mock.ExpectSet("astronomy:52.5200:13.4050", expectedJSON, 60*time.Second).SetVal("OK")

	inner := &mockAstronomyRepository{
		fetchFn: func(ctx context.Context, lat, long float64) (*entity.Astronomy, error) {
			return expected, nil
		},
	}

	repo := NewCachingAstronomyRepository(rdb, 60*time.Second, inner, "astronomy")
	got, err := repo.Fetch(context.Background(), 52.52, 13.405)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Sunrise != "07:12" {
		t.Errorf("expected sunrise %q, got %q", "07:12", got.Sunrise)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingAstronomyRepository_CacheKey は座標が4桁に丸められたキーを生成することを検証します。
func TestCachingAstronomyRepository_CacheKey(t *testing.T) {
	t.Parallel()

	repo := NewCachingAstronomyRepository(nil, 0, &mockAstronomyRepository{}, "")

	tests := []struct {
		lat      float64
		long     float64
		expected string
	}{
		{52.52, 13.405, "astronomy:52.5200:13.4050"},
		{0, 0, "astronomy:0.0000:0.0000"},
		{-33.86785, 151.20732, "astronomy:-33.8679:151.2073"},
	}

	for _, tt := range tests {
		if got := repo.cacheKey(tt.lat, tt.long); got != tt.expected {
			t.Errorf("cacheKey(%v, %v) = %q, expected %q", tt.lat, tt.long, got, tt.expected)
		}
	}
}
