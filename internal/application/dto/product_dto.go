package dto

import "time"

// ListProductsRequest parámetros de GET /api/products. Los precios llegan como texto y se validan en el caso de uso.
type ListProductsRequest struct {
	Category string `query:"category"`
	MinPrice string `query:"min_price"`
	MaxPrice string `query:"max_price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
}
