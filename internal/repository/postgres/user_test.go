package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"toolcrib-backend/internal/domain"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "identification", "role", "password_hash", "created_on"})
}

func TestUserRepository_GetByIdentification(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)

	rows := userRows().
		AddRow(3, "Rosa", "rosa@shop.test", "900123", "standard", "x", "2026-01-15")

	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE identification = \\$1").
		WithArgs("900123").
		WillReturnRows(rows)

	user, err := repo.GetByIdentification(context.Background(), "900123")
	assert.NoError(t, err)
	assert.Equal(t, int32(3), user.ID)
	assert.Equal(t, domain.RoleStandard, user.Role)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)

	rows := userRows().
		AddRow(7, "Luis", "luis@shop.test", "", "admin", "hash", "2026-01-15")

	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE email = \\$1").
		WithArgs("luis@shop.test").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), "luis@shop.test")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.Equal(t, "hash", user.PasswordHash)
}
