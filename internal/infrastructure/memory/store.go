// Package memory implementa los puertos de persistencia en memoria del proceso.
// Se usa con STORE_DRIVER=memory y como fixture en los tests de casos de uso y handlers.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/demo-api/internal/application/usecase"
	"github.com/jhoicas/demo-api/internal/domain"
	"github.com/jhoicas/demo-api/internal/domain/entity"
	"github.com/jhoicas/demo-api/internal/domain/repository"
)

var (
	_ repository.UserRepository      = (*Store)(nil)
	_ repository.AnalyticsRepository = (*Store)(nil)
	_ repository.Pinger              = (*Store)(nil)
	_ repository.ProductRepository   = productView{}
	_ repository.OrderRepository     = orderView{}
	_ usecase.OrderTxRunner          = (*Store)(nil)
)

// Store guarda usuarios, productos y órdenes en mapas protegidos por un RWMutex.
// Los IDs son secuenciales por entidad y nunca se reutilizan.
type Store struct {
	mu sync.RWMutex

	users    map[int64]entity.User
	products map[int64]entity.Product
	orders   map[int64]entity.Order

	nextUserID    int64
	nextProductID int64
	nextOrderID   int64

	now func() time.Time
}

// New crea un store vacío.
func New() *Store {
	return &Store{
		users:         make(map[int64]entity.User),
		products:      make(map[int64]entity.Product),
		orders:        make(map[int64]entity.Order),
		nextUserID:    1,
		nextProductID: 1,
		nextOrderID:   1,
		now:           time.Now,
	}
}

// NewSeeded crea un store con los mismos datos que la migración de seed.
func NewSeeded() *Store {
	s := New()
	ctx := context.Background()
	for _, u := range SeedUsers() {
		u := u
		_ = s.Create(ctx, &u)
	}
	for _, p := range SeedProducts() {
		p := p
		_ = s.CreateProduct(ctx, &p)
	}
	return s
}

// Ping siempre responde.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// ── Users ─────────────────────────────────────────────────────────────────────

// Create persiste un usuario. El email debe ser único (comparación exacta).
func (s *Store) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	user.ID = s.nextUserID
	s.nextUserID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now().UTC()
	}
	s.users[user.ID] = *user
	return nil
}

// GetByID devuelve (nil, nil) si el usuario no existe.
func (s *Store) GetByID(_ context.Context, id int64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// List devuelve los usuarios ordenados por ID, filtrando por rol exacto.
func (s *Store) List(_ context.Context, role string) ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*entity.User, 0, len(s.users))
	for _, u := range s.users {
		if role != "" && u.Role != role {
			continue
		}
		u := u
		res = append(res, &u)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

// ── Products ──────────────────────────────────────────────────────────────────

// ProductRepository expone el store con la firma List del puerto de productos.
func (s *Store) ProductRepository() repository.ProductRepository { return productView{s} }

// OrderRepository expone el store con la firma Create del puerto de órdenes.
func (s *Store) OrderRepository() repository.OrderRepository { return orderView{s} }

// CreateProduct persiste un producto.
func (s *Store) CreateProduct(_ context.Context, p *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextProductID
	s.nextProductID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now().UTC()
	}
	s.products[p.ID] = *p
	return nil
}

// ListProducts aplica los filtros de forma conjuntiva.
func (s *Store) ListProducts(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category := strings.ToLower(f.Category)
	res := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && !strings.Contains(strings.ToLower(p.Category), category) {
			continue
		}
		if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		p := p
		res = append(res, &p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

// ── Orders ────────────────────────────────────────────────────────────────────

// CreateOrder persiste una orden. No verifica la existencia del usuario (igual que el schema SQL).
func (s *Store) CreateOrder(_ context.Context, o *entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.nextOrderID
	s.nextOrderID++
	if o.Status == "" {
		o.Status = entity.OrderStatusPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = s.now().UTC()
	}
	s.orders[o.ID] = *o
	return nil
}

// ── Analytics ─────────────────────────────────────────────────────────────────

// CountUsers total de usuarios.
func (s *Store) CountUsers(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

// CountProducts total de productos.
func (s *Store) CountProducts(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.products)), nil
}

// CountOrders total de órdenes.
func (s *Store) CountOrders(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.orders)), nil
}

// CountOrdersSince órdenes con CreatedAt >= since.
func (s *Store) CountOrdersSince(_ context.Context, since time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, o := range s.orders {
		if !o.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// productView y orderView resuelven el choque de nombres de List/Create entre puertos.
type productView struct{ s *Store }

func (v productView) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	return v.s.ListProducts(ctx, f)
}

type orderView struct{ s *Store }

func (v orderView) Create(ctx context.Context, o *entity.Order) error {
	return v.s.CreateOrder(ctx, o)
}

// RunOrder ejecuta fn con el store. Sin aislamiento real: cada operación toma su propio lock.
func (s *Store) RunOrder(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(s, orderView{s})
}
