package activity

import "context"

type Repository interface {
	Create(ctx context.Context, log Log) error
	List(ctx context.Context, filter LogFilter) ([]Log, int64, error)
}
