package main

import "context"

const (
	CatalogBookTitle  = "Solaris"
	CatalogBookAuthor = "Stanisław Lem"
)

// Book represents a book entity.
type Book struct {
	ID     uint64 `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// BookServiceProvider defines possible operations on book entity.
type BookServiceProvider interface {
	GetOne(ctx context.Context, id uint64) (Book, error)
}
