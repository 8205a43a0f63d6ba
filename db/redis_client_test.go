package db_test

import (
	"context"
	"sort"
	"testing"

	"oh-server/db"
)

func TestMockRedisClient_SetAndGet(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	key := "test-key"
	value := "test-value"

	if err := client.Set(key, value); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	retrieved, err := client.Get(key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if retrieved != value {
		t.Errorf("Expected %s, got %s", value, retrieved)
	}
}

func TestMockRedisClient_GetMissingKey(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	if _, err := client.Get("absent"); err == nil {
		t.Error("Expected an error for a missing key, got nil")
	}
}

func TestMockRedisClient_KeysMatchesPrefix(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	_ = client.Set("venue_hours_v1:a", "1")
	_ = client.Set("venue_hours_v1:b", "2")
	_ = client.Set("venue_status_v1:a", "3")

	keys, err := client.Keys("venue_hours_v1:*")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}

	sort.Strings(keys)
	expected := []string{"venue_hours_v1:a", "venue_hours_v1:b"}
	if len(keys) != len(expected) {
		t.Fatalf("Expected %d keys, got %d", len(expected), len(keys))
	}
	for i := range expected {
		if keys[i] != expected[i] {
			t.Errorf("Expected key %s, got %s", expected[i], keys[i])
		}
	}
}

func TestMockRedisClient_Del(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	_ = client.Set("doomed", "x")
	if err := client.Del("doomed"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}

	if _, err := client.Get("doomed"); err == nil {
		t.Error("Expected deleted key to be missing")
	}
}

func TestMockRedisClient_Ping(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	if err := client.Ping(); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
