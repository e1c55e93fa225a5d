package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/farhanhr/cinema-booking-api/internal/config"
	"github.com/farhanhr/cinema-booking-api/internal/repository"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func testConfig() config.Config {
	return config.Config{
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 30,
		BcryptCost:     bcrypt.MinCost,
	}
}

// newJSONContext builds an echo context carrying a JSON body, with the
// validator installed the way main wires it.
func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newAuthHandler(db *sql.DB) *AuthHandler {
	return NewAuthHandler(testConfig(), repository.NewUserRepo(db), repository.NewTokenRepo(db))
}

func TestRegisterSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	h := newAuthHandler(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("Budi", "budi@example.com", sqlmock.AnyArg(), "user").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec("INSERT INTO refresh_tokens").
		WillReturnResult(sqlmock.NewResult(1, 1))

	c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/register",
		`{"name":"Budi","email":"BUDI@example.com","password":"secretpass"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		User struct {
			ID    uint64 `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
		Refresh struct {
			Token string `json:"token"`
		} `json:"refresh"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User.ID != 3 || resp.User.Email != "budi@example.com" || resp.User.Role != "user" {
		t.Errorf("unexpected user part: %+v", resp.User)
	}
	if resp.Access.Token == "" || resp.Refresh.Token == "" {
		t.Error("token pair missing from response")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	h := newAuthHandler(db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errDuplicate1062())

	c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/register",
		`{"name":"Budi","email":"budi@example.com","password":"secretpass"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	db, _ := newMockDB(t)
	h := newAuthHandler(db)

	cases := []struct{ name, body string }{
		{"short name", `{"name":"Bo","email":"budi@example.com","password":"secretpass"}`},
		{"bad email", `{"name":"Budi","email":"not-an-email","password":"secretpass"}`},
		{"short password", `{"name":"Budi","email":"budi@example.com","password":"short"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/register", tc.body)
			if err := h.Register(c); err != nil {
				t.Fatalf("Register: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	h := newAuthHandler(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WithArgs("budi@example.com").
		WillReturnRows(userRow(3, "Budi", "budi@example.com", string(hash), "user"))

	c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"budi@example.com","password":"wrongpassword"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	db, mock := newMockDB(t)
	h := newAuthHandler(db)

	mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"ghost@example.com","password":"whatever123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLoginSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	h := newAuthHandler(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WithArgs("admin@example.com").
		WillReturnRows(userRow(1, "Admin", "admin@example.com", string(hash), "admin"))
	mock.ExpectExec("INSERT INTO refresh_tokens").
		WillReturnResult(sqlmock.NewResult(1, 1))

	c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"admin@example.com","password":"rightpassword"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User.Role != "admin" {
		t.Errorf("role = %q, want admin", resp.User.Role)
	}
}

func TestLogoutWithoutCredentials(t *testing.T) {
	db, _ := newMockDB(t)
	h := newAuthHandler(db)

	c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/logout", `{}`)
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
