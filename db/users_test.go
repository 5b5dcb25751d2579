// ABOUTME: Tests for user account database operations
// ABOUTME: Covers creation, lookup, and the unique email constraint
package db

import (
	"testing"

	"github.com/Jeonsowon/Portfolio-Project/models"
)

func TestCreateAndGetUser(t *testing.T) {
	database := setupTestDB(t)

	user := &models.User{Name: "Sowon", Email: "sowon@example.com", PasswordHash: "$2a$10$fakehash"}
	if err := CreateUser(database, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected an assigned id")
	}

	got, err := GetUser(database, user.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected user, got nil")
	}
	if got.Email != "sowon@example.com" || got.PasswordHash != "$2a$10$fakehash" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestGetUserByEmail(t *testing.T) {
	database := setupTestDB(t)

	user := &models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "h"}
	if err := CreateUser(database, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, err := GetUserByEmail(database, "ann@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if got == nil || got.ID != user.ID {
		t.Errorf("expected user %d, got %+v", user.ID, got)
	}

	missing, err := GetUserByEmail(database, "nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown email")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	database := setupTestDB(t)

	if err := CreateUser(database, &models.User{Name: "A", Email: "dup@example.com", PasswordHash: "a"}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := CreateUser(database, &models.User{Name: "B", Email: "dup@example.com", PasswordHash: "b"}); err == nil {
		t.Error("expected unique constraint violation for duplicate email")
	}
}
