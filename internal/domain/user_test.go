package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	// Test valid user creation
	validUsername := "testuser"
	validPassword := "password123"

	user, err := NewUser(validUsername, validPassword)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Username != validUsername {
		t.Errorf("Expected username %s, got %s", validUsername, user.Username)
	}

	if user.Password != validPassword {
		t.Errorf("Expected password %s, got %s", validPassword, user.Password)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Test invalid username
	_, err = NewUser("", validPassword)
	if err != ErrEmptyUsername {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	_, err = NewUser("ab", validPassword)
	if err != ErrUsernameTooShort {
		t.Errorf("Expected error %v, got %v", ErrUsernameTooShort, err)
	}

	// Test invalid password
	_, err = NewUser(validUsername, "short")
	if err != ErrPasswordTooShort {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooShort, err)
	}
}

func TestNewUserUsernameLengthIsInCharacters(t *testing.T) {
	// 20 characters but 60 bytes; must pass the 50-character cap.
	_, err := NewUser(strings.Repeat("日", 20), "password123")
	if err != nil {
		t.Errorf("Expected no error for 20-character multibyte username, got %v", err)
	}

	// 51 characters is too long regardless of encoding.
	_, err = NewUser(strings.Repeat("日", 51), "password123")
	if err != ErrUsernameTooLong {
		t.Errorf("Expected error %v, got %v", ErrUsernameTooLong, err)
	}
}

func TestUserValidate(t *testing.T) {
	validUser := User{
		ID:             uuid.New(),
		Username:       "testuser",
		HashedPassword: "hashedpassword123",
	}

	// Test valid user loaded from the store (hash only, no plaintext)
	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid ID
	invalidUser := validUser
	invalidUser.ID = uuid.Nil
	if err := invalidUser.Validate(); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	// Test invalid username
	invalidUser = validUser
	invalidUser.Username = ""
	if err := invalidUser.Validate(); err != ErrEmptyUsername {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	// Test missing credential entirely
	invalidUser = validUser
	invalidUser.HashedPassword = ""
	if err := invalidUser.Validate(); err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}

	// Test overlong plaintext password
	invalidUser = validUser
	invalidUser.Password = string(make([]byte, 73))
	if err := invalidUser.Validate(); err != ErrPasswordTooLong {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooLong, err)
	}
}
