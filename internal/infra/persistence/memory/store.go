// Package memory is a process-local implementation of the persistence layer for development and tests.
// Every transaction works on a private copy of the data that replaces the committed copy on success,
// so committed state is never mutated and snapshots are free.
package memory

import (
	"context"
	"maps"
	"sync"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrReadOnly is returned when a snapshot repository is asked to write.
var ErrReadOnly = errors.New("memory store: write inside a read-only snapshot")

type state struct {
	companies map[uuid.UUID]entity.Company
	users     map[uuid.UUID]entity.User
	products  map[uuid.UUID]entity.Product
	sales     map[uuid.UUID]entity.SaleRecord
	offers    map[uuid.UUID]entity.Offer
	runs      []entity.TrainingRun
}

func newState() *state {
	return &state{
		companies: make(map[uuid.UUID]entity.Company),
		users:     make(map[uuid.UUID]entity.User),
		products:  make(map[uuid.UUID]entity.Product),
		sales:     make(map[uuid.UUID]entity.SaleRecord),
		offers:    make(map[uuid.UUID]entity.Offer),
	}
}

// clone copies the maps; values are copied on every read and write so sharing them is safe.
func (s *state) clone() *state {
	return &state{
		companies: maps.Clone(s.companies),
		users:     maps.Clone(s.users),
		products:  maps.Clone(s.products),
		sales:     maps.Clone(s.sales),
		offers:    maps.Clone(s.offers),
		runs:      append([]entity.TrainingRun(nil), s.runs...),
	}
}

// Store holds the committed state. Writers are serialized; readers never block writers.
type Store struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	current *state
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{current: newState()}
}

func (s *Store) committed() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// NewTransactionManager exposes the store through the domain's TransactionManager interface.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return store
}

// Execute runs fn against a private copy and publishes it only when fn succeeds.
func (s *Store) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	work := s.committed().clone()
	if err := fn(&repositoryFactory{state: work}); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = work
	s.mu.Unlock()

	return nil
}

// ReadSnapshot runs fn against the state committed when it starts.
func (s *Store) ReadSnapshot(ctx context.Context, fn func(snapshot repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	return fn(&repositoryFactory{state: s.committed(), readOnly: true})
}

type repositoryFactory struct {
	state    *state
	readOnly bool
}

func (f *repositoryFactory) CompanyRepo() repository.CompanyRepository {
	return &companyRepository{repositoryFactory: f}
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{repositoryFactory: f}
}

func (f *repositoryFactory) ProductRepo() repository.ProductRepository {
	return &productRepository{repositoryFactory: f}
}

func (f *repositoryFactory) SaleRepo() repository.SaleRepository {
	return &saleRepository{repositoryFactory: f}
}

func (f *repositoryFactory) OfferRepo() repository.OfferRepository {
	return &offerRepository{repositoryFactory: f}
}

func (f *repositoryFactory) TrainingRunRepo() repository.TrainingRunRepository {
	return &trainingRunRepository{repositoryFactory: f}
}

func (f *repositoryFactory) writable() error {
	if f.readOnly {
		return ErrReadOnly
	}

	return nil
}
