package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CagilDisbudak/MoviePage/internal/repo"
	"github.com/DATA-DOG/go-sqlmock"
)

func TestUserHandler_ListUsers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, role`).
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role"}).
			AddRow(1, "alice", "user").
			AddRow(2, "bob", "admin"))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	h := &UserHandler{Repo: repo.NewUserRepo(db)}

	req := httptest.NewRequest("GET", "/users", nil)
	rr := httptest.NewRecorder()
	h.ListUsers(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("ListUsers status: got %d, want 200", rr.Code)
	}
	var page struct {
		Items []struct {
			Username string `json:"username"`
		} `json:"items"`
		Total int `json:"total"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&page); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(page.Items) != 2 || page.Total != 2 {
		t.Errorf("unexpected page: %+v", page)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, password_hash, role`).
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	h := &UserHandler{Repo: repo.NewUserRepo(db)}

	req := withURLParam(httptest.NewRequest("GET", "/users/999", nil), "id", "999")
	rr := httptest.NewRecorder()
	h.GetUser(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("GetUser status: got %d, want 404", rr.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

// Listing must never expose password hashes.
func TestUserHandler_GetUser_HidesHash(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, password_hash, role`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role"}).
			AddRow(1, "alice", "$2a$10$fakehash", "user"))

	h := &UserHandler{Repo: repo.NewUserRepo(db)}

	req := withURLParam(httptest.NewRequest("GET", "/users/1", nil), "id", "1")
	rr := httptest.NewRecorder()
	h.GetUser(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("GetUser status: got %d, want 200", rr.Code)
	}
	if body := rr.Body.String(); body == "" || strings.Contains(body, "fakehash") {
		t.Errorf("response leaks password hash: %s", body)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
