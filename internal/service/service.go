// Package service holds the application use cases. Services run their
// writes inside a transaction and publish the domain events recorded by the
// aggregates once that transaction has committed.
package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"socialapi/internal/apperr"
	"socialapi/internal/model"
	"socialapi/internal/repository"
)

// Transactor runs fn inside a database transaction carried by ctx.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher hands committed domain events to their subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, evs ...model.Event)
}

// ListResult is the service-level DTO for paginated lists.
type ListResult[T any] struct {
	Items []T `json:"data"`
	Total int `json:"total"`
}

func pageQuery(limit, offset int) repository.PageQuery {
	return repository.PageQuery{Limit: limit, Offset: offset}.Normalize()
}

func listResult[T any](res *repository.PageResult[T]) *ListResult[T] {
	return &ListResult[T]{Items: res.Items, Total: res.Total}
}

// notFound maps sql.ErrNoRows to the domain's not-found error.
func notFound(err error, sentinel *apperr.Error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel
	}
	return err
}

// inTx runs fn in a transaction and publishes the events it collected only
// after a successful commit.
func inTx(ctx context.Context, tx Transactor, pub EventPublisher, fn func(ctx context.Context, collect func(...model.Event)) error) error {
	var pending []model.Event
	collect := func(evs ...model.Event) { pending = append(pending, evs...) }

	if err := tx.WithinTx(ctx, func(ctx context.Context) error {
		return fn(ctx, collect)
	}); err != nil {
		return err
	}
	if len(pending) > 0 {
		pub.Publish(ctx, pending...)
	}
	return nil
}

func utcNow() time.Time { return time.Now().UTC() }
