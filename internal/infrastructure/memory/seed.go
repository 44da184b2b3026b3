package memory

import (
	"github.com/jhoicas/demo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SeedUsers usuarios de demo. Debe coincidir con migrations/000002_seed_demo_data.up.sql.
func SeedUsers() []entity.User {
	return []entity.User{
		{Name: "John Doe", Email: "john@example.com", Role: entity.RoleAdmin},
		{Name: "Jane Smith", Email: "jane@example.com", Role: entity.RoleUser},
		{Name: "Bob Wilson", Email: "bob@example.com", Role: entity.RoleUser},
		{Name: "Alice Brown", Email: "alice@example.com", Role: entity.RoleModerator},
	}
}

// SeedProducts productos de demo, con precios a ambos lados de la banda 100–200.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{Name: "Laptop", Price: decimal.RequireFromString("999.99"), Category: "Electronics", Stock: 10},
		{Name: "Wireless Mouse", Price: decimal.RequireFromString("29.99"), Category: "Electronics", Stock: 50},
		{Name: "Office Chair", Price: decimal.RequireFromString("199.99"), Category: "Furniture", Stock: 15},
		{Name: "Standing Desk", Price: decimal.RequireFromString("449.00"), Category: "Furniture", Stock: 5},
		{Name: "Coffee Maker", Price: decimal.RequireFromString("129.50"), Category: "Kitchen Appliances", Stock: 20},
		{Name: "Mechanical Keyboard", Price: decimal.RequireFromString("100.00"), Category: "Electronics", Stock: 30},
	}
}
