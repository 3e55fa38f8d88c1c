// Package entities определяет доменные сущности каталога курсов.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена учетных записей.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmptyAccountID  = errors.New("account ID cannot be empty")
)

// ActorKind определяет вид учетной записи: покупатель или автор курсов.
// Каждый вид живет в собственной таблице, уникальность email действует
// только внутри вида.
type ActorKind string

// Поддерживаемые виды учетных записей.
const (
	KindUser    ActorKind = "user"
	KindCreator ActorKind = "creator"
)

// Account представляет учетную запись покупателя или автора.
type Account struct {
	ID           string
	Kind         ActorKind
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
