package session

import (
	"testing"

	"github.com/example/cardbot/pkg/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	key := Key{UserID: 1, ChatID: 10}

	if _, ok := store.Get(key); ok {
		t.Fatal("expected no payload for a fresh key")
	}

	target := models.Word{ID: 5, English: "hello", Russian: "привет"}
	store.Set(key, Data{State: AwaitingAnswer, Target: &target, StoreID: 42})

	data, ok := store.Get(key)
	if !ok {
		t.Fatal("expected payload after Set")
	}
	if data.State != AwaitingAnswer || data.Target.English != "hello" || data.StoreID != 42 {
		t.Fatalf("payload mangled: %+v", data)
	}

	store.Clear(key)
	if _, ok := store.Get(key); ok {
		t.Fatal("expected no payload after Clear")
	}
}

func TestMemoryStoreKeysAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	a := Key{UserID: 1, ChatID: 10}
	b := Key{UserID: 1, ChatID: 11}

	store.Set(a, Data{State: AwaitingEnglish, PendingEnglish: "cat"})
	store.Set(b, Data{State: AwaitingDeleteChoice})

	dataA, _ := store.Get(a)
	if dataA.State != AwaitingEnglish || dataA.PendingEnglish != "cat" {
		t.Fatalf("chat state leaked across keys: %+v", dataA)
	}

	store.Clear(a)
	if _, ok := store.Get(b); !ok {
		t.Fatal("clearing one conversation dropped another")
	}
}
