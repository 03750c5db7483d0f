package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/fastygo/quantix/internal/infrastructure/localstore"
)

// IdentityStore is the slice of the local store device identity needs.
type IdentityStore interface {
	Load(key localstore.Key, dst any) error
	Save(key localstore.Key, value any) error
}

// EnsureDeviceID returns the device identity. An explicit override wins;
// otherwise the persisted id is reused, or a new one is generated and saved.
func EnsureDeviceID(store IdentityStore, override string) (string, error) {
	if id := strings.TrimSpace(override); id != "" {
		return id, nil
	}

	var id string
	if err := store.Load(localstore.KeyDeviceID, &id); err != nil && !isNotFound(err) {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	id = uuid.NewString()
	if err := store.Save(localstore.KeyDeviceID, id); err != nil {
		return "", err
	}
	return id, nil
}
