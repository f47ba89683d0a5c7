//go:build integration

package database

import (
	"context"
	"testing"
	"time"

	"gym-backend/internal/domain/analytics"
	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/domain/attendance"
	"gym-backend/internal/domain/members"
	"gym-backend/internal/lib/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func TestPostgresLifecycle(t *testing.T) {
	ctx := context.Background()
	password.Cost = bcrypt.MinCost

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("gym"),
		postgres.WithUsername("gym"),
		postgres.WithPassword("gym"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open("postgres", connStr)
	require.NoError(t, err)

	cat, err := members.LoadCatalog("")
	require.NoError(t, err)
	now := time.Now()

	m, err := members.Enroll(db, cat, members.EnrollInput{
		FullName: "Asha", Email: "asha@example.com", Phone: "1", Plan: "Monthly", Amount: 1500, DefaultPassword: "123456",
	}, now)
	require.NoError(t, err)

	t.Run("duplicate email rolls back", func(t *testing.T) {
		_, err := members.Enroll(db, cat, members.EnrollInput{
			FullName: "Asha", Email: "asha@example.com", Phone: "1", Plan: "Monthly", Amount: 1500, DefaultPassword: "123456",
		}, now)
		assert.ErrorIs(t, err, apperr.ErrDuplicateEmail)
	})

	t.Run("unique day index", func(t *testing.T) {
		_, err := attendance.MarkPresent(db, m.ID, "", now)
		require.NoError(t, err)
		_, err = attendance.MarkPresent(db, m.ID, "", now.Add(time.Second))
		assert.ErrorIs(t, err, apperr.ErrAlreadyMarked)
	})

	t.Run("stats", func(t *testing.T) {
		stats, err := analytics.ComputeDashboardStats(db, now, 7*24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.TotalMembers)
		assert.Equal(t, 1500.0, stats.TotalRevenue)
		assert.Equal(t, 1, stats.WeeklyFootfall[6])
	})
}
