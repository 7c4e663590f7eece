package activity

import "context"

type Service interface {
	Record(ctx context.Context, log Log) error
	List(ctx context.Context, filter LogFilter) (ListLogResponse, error)
}
