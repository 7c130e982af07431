package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/angelmondragon/mentormatch-backend/pkg/config"
	redislib "github.com/redis/go-redis/v9"
)

type mockStore struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (m *mockStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = fmt.Sprint(value)
	m.ttls[key] = ttl
	return nil
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return val, nil
}

func (m *mockStore) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mockStore) AccessSessionKey(accessID string) string {
	return fmt.Sprintf("sess:%s", accessID)
}

func newTestManager() (*Manager, *mockStore) {
	store := newMockStore()
	return &Manager{store: store, keyer: store, ttl: time.Hour}, store
}

func TestManagerSessionLifecycle(t *testing.T) {
	manager, store := newTestManager()
	ctx := context.Background()
	accessID := NewAccessID()

	if err := manager.Generate(ctx, accessID, 42); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if ttl := store.ttls[store.AccessSessionKey(accessID)]; ttl != time.Hour {
		t.Fatalf("expected session ttl 1h, got %v", ttl)
	}

	ok, err := manager.HasSession(ctx, accessID)
	if err != nil || !ok {
		t.Fatalf("expected live session, ok=%v err=%v", ok, err)
	}
	owner, err := manager.Owner(ctx, accessID)
	if err != nil || owner != 42 {
		t.Fatalf("expected owner 42, got %d err=%v", owner, err)
	}

	if err := manager.Revoke(ctx, accessID); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	ok, err = manager.HasSession(ctx, accessID)
	if err != nil || ok {
		t.Fatalf("expected revoked session, ok=%v err=%v", ok, err)
	}
	if _, err := manager.Owner(ctx, accessID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestManagerRejectsBlankInput(t *testing.T) {
	manager, _ := newTestManager()
	ctx := context.Background()

	if err := manager.Generate(ctx, " ", 1); err == nil {
		t.Fatal("expected blank access id to fail")
	}
	if err := manager.Generate(ctx, "abc", 0); err == nil {
		t.Fatal("expected missing user id to fail")
	}
	if _, err := manager.HasSession(ctx, ""); err == nil {
		t.Fatal("expected blank access id to fail")
	}
	if err := manager.Revoke(ctx, ""); err == nil {
		t.Fatal("expected blank access id to fail")
	}
}

func TestNewManagerRequiresClient(t *testing.T) {
	if _, err := NewManager(nil, testJWT()); err == nil {
		t.Fatal("expected nil client to fail")
	}
}

func testJWT() config.JWTConfig {
	return config.JWTConfig{Secret: "s", Issuer: "mentormatch", ExpirationMinutes: 60}
}
