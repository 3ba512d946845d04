package db

import (
	"context"

	"quizhub/models"
)

// Store is the persistence contract for the quiz state document.
//
// Read fails open: a missing or unreadable store yields the empty default
// document, never an error the caller has to handle as fatal. Write errors
// propagate, since a submission must be durably recorded before it is
// acknowledged.
type Store interface {
	Read(ctx context.Context) (*models.StoreDocument, error)
	Write(ctx context.Context, doc *models.StoreDocument) error
}
