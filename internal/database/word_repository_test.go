package database

import "testing"

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	setupTestDB(t)
	words := NewWordRepository()

	if err := words.SeedDefaults(DefaultCatalog); err != nil {
		t.Fatalf("first seeding failed: %v", err)
	}
	if err := words.SeedDefaults(DefaultCatalog); err != nil {
		t.Fatalf("second seeding failed: %v", err)
	}

	defaults, err := words.AllDefaults()
	if err != nil {
		t.Fatalf("AllDefaults failed: %v", err)
	}
	if len(defaults) != len(DefaultCatalog) {
		t.Fatalf("expected %d default words, got %d", len(DefaultCatalog), len(defaults))
	}
}

func TestAddToUserNormalizesAndDeduplicates(t *testing.T) {
	setupTestDB(t)
	users := NewUserRepository()
	words := NewWordRepository()

	user, err := users.GetOrCreate(1, "", "", "")
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	first, err := words.AddToUser(user.ID, "Hello ", " Hi")
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if first.Outcome != OutcomeAdded {
		t.Fatalf("expected OutcomeAdded, got %v", first.Outcome)
	}
	if first.English != "hello" || first.Russian != "hi" {
		t.Fatalf("expected canonical text, got %q / %q", first.English, first.Russian)
	}

	second, err := words.AddToUser(user.ID, "hello", "hi")
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if second.Outcome != OutcomeAlreadyPresent {
		t.Fatalf("expected OutcomeAlreadyPresent, got %v", second.Outcome)
	}

	var wordRows int
	if err := DB.Get(&wordRows, "SELECT COUNT(*) FROM words WHERE english = ? AND russian = ?", "hello", "hi"); err != nil {
		t.Fatalf("failed to count words: %v", err)
	}
	if wordRows != 1 {
		t.Fatalf("expected exactly one word row, got %d", wordRows)
	}
}

func TestAddToUserSharesExistingWord(t *testing.T) {
	setupTestDB(t)
	users := NewUserRepository()
	words := NewWordRepository()

	alice, _ := users.GetOrCreate(1, "", "", "")
	bob, _ := users.GetOrCreate(2, "", "", "")

	if _, err := words.AddToUser(alice.ID, "cat", "кошка"); err != nil {
		t.Fatalf("add for alice failed: %v", err)
	}
	if _, err := words.AddToUser(bob.ID, "CAT", " кошка "); err != nil {
		t.Fatalf("add for bob failed: %v", err)
	}

	var wordRows int
	if err := DB.Get(&wordRows, "SELECT COUNT(*) FROM words WHERE english = ?", "cat"); err != nil {
		t.Fatalf("failed to count words: %v", err)
	}
	if wordRows != 1 {
		t.Fatalf("word ownership should be shared, got %d rows", wordRows)
	}
}

func TestSoftDeleteThenAddRestores(t *testing.T) {
	setupTestDB(t)
	users := NewUserRepository()
	words := NewWordRepository()

	user, _ := users.GetOrCreate(1, "", "", "")

	if _, err := words.AddToUser(user.ID, "dog", "собака"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	custom, err := words.ListByUser(user.ID, false, false)
	if err != nil || len(custom) != 1 {
		t.Fatalf("expected one custom word, got %d (err %v)", len(custom), err)
	}

	ok, _, err := words.SoftDelete(user.ID, custom[0].ID)
	if err != nil || !ok {
		t.Fatalf("soft delete failed: ok=%v err=%v", ok, err)
	}

	restored, err := words.AddToUser(user.ID, "dog", "собака")
	if err != nil {
		t.Fatalf("re-add failed: %v", err)
	}
	if restored.Outcome != OutcomeRestored {
		t.Fatalf("expected OutcomeRestored, got %v", restored.Outcome)
	}

	var linkRows int
	if err := DB.Get(&linkRows, "SELECT COUNT(*) FROM user_words WHERE user_id = ? AND word_id = ?", user.ID, custom[0].ID); err != nil {
		t.Fatalf("failed to count memberships: %v", err)
	}
	if linkRows != 1 {
		t.Fatalf("restore must reuse the membership row, got %d rows", linkRows)
	}
}

func TestSoftDeletePolicy(t *testing.T) {
	setupTestDB(t)
	users := NewUserRepository()
	words := NewWordRepository()

	if err := words.SeedDefaults(DefaultCatalog); err != nil {
		t.Fatalf("seeding failed: %v", err)
	}
	alice, _ := users.GetOrCreate(1, "", "", "")
	bob, _ := users.GetOrCreate(2, "", "", "")

	// Default words are never user-deletable, membership or not
	defaults, _ := words.DefaultsForUser(alice.ID)
	ok, _, err := words.SoftDelete(alice.ID, defaults[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("deleting a default word must fail")
	}

	// Unknown word
	ok, _, err = words.SoftDelete(alice.ID, 99999)
	if err != nil || ok {
		t.Fatalf("deleting an unknown word must fail, ok=%v err=%v", ok, err)
	}

	// A word the user has no active membership for
	if _, err := words.AddToUser(bob.ID, "fox", "лиса"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	bobWords, _ := words.ListByUser(bob.ID, false, false)
	ok, _, err = words.SoftDelete(alice.ID, bobWords[0].ID)
	if err != nil || ok {
		t.Fatalf("deleting an unowned word must fail, ok=%v err=%v", ok, err)
	}

	// Double delete: second call finds no active membership
	ok, _, _ = words.SoftDelete(bob.ID, bobWords[0].ID)
	if !ok {
		t.Fatal("first delete should succeed")
	}
	ok, _, _ = words.SoftDelete(bob.ID, bobWords[0].ID)
	if ok {
		t.Fatal("second delete should fail, membership is no longer active")
	}
}

func TestListByUserFilterPatterns(t *testing.T) {
	setupTestDB(t)
	users := NewUserRepository()
	words := NewWordRepository()

	if err := words.SeedDefaults(DefaultCatalog); err != nil {
		t.Fatalf("seeding failed: %v", err)
	}
	user, _ := users.GetOrCreate(1, "", "", "")

	if _, err := words.AddToUser(user.ID, "one", "один"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := words.AddToUser(user.ID, "two", "два"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	custom, _ := words.ListByUser(user.ID, false, false)
	if ok, _, err := words.SoftDelete(user.ID, custom[0].ID); err != nil || !ok {
		t.Fatalf("delete failed: ok=%v err=%v", ok, err)
	}

	activeCustom, err := words.ListByUser(user.ID, false, false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(activeCustom) != 1 {
		t.Errorf("expected 1 active custom word, got %d", len(activeCustom))
	}

	allCustom, err := words.ListByUser(user.ID, true, false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(allCustom) != 2 {
		t.Errorf("expected 2 custom words including deleted, got %d", len(allCustom))
	}

	allActive, err := words.AllActiveForUser(user.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(allActive) != len(DefaultCatalog)+1 {
		t.Errorf("expected %d active words, got %d", len(DefaultCatalog)+1, len(allActive))
	}

	defaults, err := words.DefaultsForUser(user.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(defaults) != len(DefaultCatalog) {
		t.Errorf("expected %d default words, got %d", len(DefaultCatalog), len(defaults))
	}
}
