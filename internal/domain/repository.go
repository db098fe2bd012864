package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Catalog defines read-only access to the static option tables
type Catalog interface {
	Products() []Product
	Product(family string) (*Product, error)
	OptionsInGroup(family, group string) ([]Option, error)
	OptionByID(family, group, id string) (Option, error)
}
