package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/demo-api/internal/domain"
	"github.com/jhoicas/demo-api/internal/domain/entity"
	"github.com/jhoicas/demo-api/internal/domain/repository"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNewSeeded_CuatroUsuarios(t *testing.T) {
	s := NewSeeded()

	users, err := s.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, users, 4)
	assert.Equal(t, "John Doe", users[0].Name)
	assert.Equal(t, entity.RoleAdmin, users[0].Role)
}

func TestStore_EmailDuplicado(t *testing.T) {
	s := NewSeeded()

	err := s.Create(context.Background(), &entity.User{Name: "Otro", Email: "john@example.com", Role: "user"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestStore_IDsNoSeReutilizan(t *testing.T) {
	s := New()
	ctx := context.Background()

	seen := map[int64]bool{}
	for i := 0; i < 20; i++ {
		u := &entity.User{Name: "u", Email: string(rune('a'+i)) + "@example.com"}
		require.NoError(t, s.Create(ctx, u))
		assert.False(t, seen[u.ID], "id %d repetido", u.ID)
		seen[u.ID] = true
	}
}

func TestStore_ListPorRolExacto(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, &entity.User{Name: "Admin2", Email: "a2@example.com", Role: "Admin"}))

	admins, err := s.List(ctx, "admin")
	require.NoError(t, err)
	require.Len(t, admins, 1, "'Admin' con mayúscula no debe coincidir")
	assert.Equal(t, "admin", admins[0].Role)
}

func TestStore_FiltroDeProductos(t *testing.T) {
	repo := NewSeeded().ProductRepository()
	ctx := context.Background()

	band, err := repo.List(ctx, repository.ProductFilter{MinPrice: dec("100"), MaxPrice: dec("200")})
	require.NoError(t, err)
	require.NotEmpty(t, band)
	for _, p := range band {
		assert.True(t, p.Price.GreaterThanOrEqual(decimal.NewFromInt(100)), p.Name)
		assert.True(t, p.Price.LessThanOrEqual(decimal.NewFromInt(200)), p.Name)
	}

	kitchen, err := repo.List(ctx, repository.ProductFilter{Category: "KITCHEN"})
	require.NoError(t, err)
	require.Len(t, kitchen, 1)
	assert.Equal(t, "Coffee Maker", kitchen[0].Name)

	both, err := repo.List(ctx, repository.ProductFilter{Category: "electro", MaxPrice: dec("100")})
	require.NoError(t, err)
	assert.Len(t, both, 2, "Wireless Mouse y Mechanical Keyboard (límite inclusivo)")
}

func TestStore_CountOrdersSince(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	orders := s.OrderRepository()

	require.NoError(t, orders.Create(ctx, &entity.Order{UserID: 1, Total: decimal.NewFromInt(10), CreatedAt: now.Add(-10 * 24 * time.Hour)}))
	require.NoError(t, orders.Create(ctx, &entity.Order{UserID: 1, Total: decimal.NewFromInt(10), CreatedAt: now.Add(-time.Hour)}))

	total, err := s.CountOrders(ctx)
	require.NoError(t, err)
	recent, err := s.CountOrdersSince(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	assert.Equal(t, int64(1), recent)
}
