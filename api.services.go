package main

import (
	"context"

	"go.uber.org/zap"
)

var _ BookServiceProvider = (*BookService)(nil) // ensure BookService implements BookServiceProvider.

// BookService serves books without any backing store.
// Every lookup answers with the same catalog record.
type BookService struct {
	logger *zap.Logger
}

func NewBookService(logger *zap.Logger) *BookService {
	return &BookService{
		logger: logger,
	}
}

// GetOne builds the book for the given id. The id is echoed back as is.
func (bs *BookService) GetOne(_ context.Context, id uint64) (Book, error) {
	bs.logger.Debug("service: catalog book served", zap.Uint64("book.id", id))
	return Book{
		ID:     id,
		Title:  CatalogBookTitle,
		Author: CatalogBookAuthor,
	}, nil
}
