package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"coursebay/internal/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	accountRepo  repositories.AccountRepository
	courseRepo   repositories.CourseRepository
	purchaseRepo repositories.PurchaseRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		accountRepo:  NewAccountRepository(pool),
		courseRepo:   NewCourseRepository(pool),
		purchaseRepo: NewPurchaseRepository(pool),
	}
}

// AccountRepository возвращает репозиторий учетных записей.
func (f *RepositoryFactory) AccountRepository() repositories.AccountRepository {
	return f.accountRepo
}

// CourseRepository возвращает репозиторий курсов.
func (f *RepositoryFactory) CourseRepository() repositories.CourseRepository {
	return f.courseRepo
}

// PurchaseRepository возвращает репозиторий покупок.
func (f *RepositoryFactory) PurchaseRepository() repositories.PurchaseRepository {
	return f.purchaseRepo
}
