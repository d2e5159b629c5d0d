package todo

import "github.com/google/uuid"

// IDGenerator produces ids for new tasks.
type IDGenerator interface {
	NewID() ID
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() ID

// NewID calls f.
func (f IDGeneratorFunc) NewID() ID { return f() }

// UUIDGenerator returns a generator of time-ordered UUIDv7 ids.
func UUIDGenerator() IDGenerator {
	return IDGeneratorFunc(func() ID {
		return ID(uuid.Must(uuid.NewV7()).String())
	})
}
