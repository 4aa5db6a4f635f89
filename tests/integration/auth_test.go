package integration

import (
	"net/http"
	"testing"
)

func TestAuthFlow_SignUpLoginProfile(t *testing.T) {
	app := setupApp(t)

	// Step 1: Sign up
	token, userID := app.signUpUser(t, "auth@test.com", "password123")
	if token == "" {
		t.Fatal("expected non-empty session token from sign-up")
	}
	if userID == "" {
		t.Fatal("expected non-empty user ID")
	}

	// Step 2: Login with same credentials
	loginToken := app.loginUser(t, "auth@test.com", "password123")
	if loginToken == "" {
		t.Fatal("expected non-empty session token from login")
	}

	// Step 3: Access profile with the login token
	rec := app.request("GET", "/api/v1/profile", "", loginToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["data"].(map[string]interface{})
	if user["email"] != "auth@test.com" {
		t.Errorf("expected email auth@test.com, got %v", user["email"])
	}
	if user["id"] != userID {
		t.Errorf("expected user ID %s, got %v", userID, user["id"])
	}
}

func TestAuthFlow_SignUpDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	app.signUpUser(t, "dup@test.com", "password123")

	// Try to sign up again with same email
	rec := app.request("POST", "/api/v1/auth/sign-up",
		`{"email":"dup@test.com","password":"password123","name":"Second"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["error"] != "A user with this email already exists" {
		t.Errorf("unexpected error message: %v", result["error"])
	}
}

func TestAuthFlow_LoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	app.signUpUser(t, "wrong@test.com", "password123")

	rec := app.request("POST", "/api/v1/auth/login",
		`{"email":"wrong@test.com","password":"wrongpassword"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["error"] != "Invalid email or password" {
		t.Errorf("unexpected error message: %v", result["error"])
	}
}

func TestAuthFlow_LoginUnknownEmail(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/auth/login",
		`{"email":"ghost@test.com","password":"password123"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	// Same message as a wrong password; existence of the email is not revealed
	result := parseJSON(t, rec)
	if result["error"] != "Invalid email or password" {
		t.Errorf("unexpected error message: %v", result["error"])
	}
}

func TestAuthFlow_ProfileWithoutAuth(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/profile", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthFlow_ProfileWithInvalidToken(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/profile", "", "invalid-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
