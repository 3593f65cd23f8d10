//go:generate go run go.uber.org/mock/mockgen -source=credential.go -destination=../mocks/mock_credential_repository.go -package=mocks
package repositories

import (
	"chat-sync/errors"
	"chat-sync/infrastructure/docstore"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type ICredentialRepository interface {
	CreateCredential(email, passwordHash string) (string, error)
	GetCredential(email string) (Credential, error)
}

// CredentialRepository is the identity provider side of the store.
// Credentials live outside the document collections, under "cred:{email}".
type CredentialRepository struct {
	db *badger.DB
}

func NewCredentialRepository(db *badger.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Credential binds an email to the principal it authenticates.
type Credential struct {
	PrincipalID  string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

func credentialKey(email string) []byte {
	return []byte("cred:" + strings.ToLower(strings.TrimSpace(email)))
}

// CreateCredential persists a new credential and returns the principal id
// minted for it. The email check and the write share one transaction.
func (r CredentialRepository) CreateCredential(email, passwordHash string) (string, error) {
	principalID := uuid.NewString()
	data, err := docstore.Encode(map[string]any{
		"userId":       principalID,
		"email":        email,
		"passwordHash": passwordHash,
		"createdAt":    FormatTimestamp(time.Now()),
	})
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		key := credentialKey(email)
		if _, err := txn.Get(key); err == nil {
			return errors.New(errors.ErrDuplicate, "Email already registered")
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return "", err
	}
	return principalID, nil
}

func (r CredentialRepository) GetCredential(email string) (Credential, error) {
	var fields map[string]any
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(credentialKey(email))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			fields, err = docstore.Decode(val)
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Credential{}, errors.ErrNotFound
	}
	if err != nil {
		return Credential{}, remote("Can not read credentials", err)
	}

	credential := Credential{}
	credential.PrincipalID, _ = optionalString(fields, "userId")
	credential.Email, _ = optionalString(fields, "email")
	credential.PasswordHash, _ = optionalString(fields, "passwordHash")
	if raw, _ := optionalString(fields, "createdAt"); raw != "" {
		credential.CreatedAt, _ = ParseTimestamp(raw)
	}
	return credential, nil
}
