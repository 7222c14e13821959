package mongo

import (
	"errors"
	"fmt"

	"alcyxob/gymflow/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}

// duplicate maps duplicate-key write errors to repository.ErrDuplicate.
func duplicate(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", repository.ErrDuplicate, err)
	}
	return err
}
