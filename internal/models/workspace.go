package models

import (
	"fmt"
	"time"
)

// StorageLimit is the storage quota, in MB, every generated workspace gets.
const StorageLimit = 1000

type Workspace struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Status       WorkspaceStatus `json:"status"`
	Industry     Industry        `json:"industry"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	UsersCount   int             `json:"usersCount"`
	StorageUsed  int             `json:"storageUsed"`
	StorageLimit int             `json:"storageLimit"`
	Owner        User            `json:"owner"`
}

func (w Workspace) EntityID() string { return w.ID }

func (w Workspace) Clone() Workspace { return w }

func (w Workspace) Validate() error {
	if !w.Status.Valid() {
		return fmt.Errorf("workspace %s: status %q: %w", w.ID, w.Status, ErrInvalidEnum)
	}
	if !w.Industry.Valid() {
		return fmt.Errorf("workspace %s: industry %q: %w", w.ID, w.Industry, ErrInvalidEnum)
	}
	if w.UpdatedAt.Before(w.CreatedAt) {
		return fmt.Errorf("workspace %s: updatedAt before createdAt: %w", w.ID, ErrInvariant)
	}
	if w.StorageUsed > w.StorageLimit {
		return fmt.Errorf("workspace %s: storageUsed %d exceeds limit %d: %w", w.ID, w.StorageUsed, w.StorageLimit, ErrInvariant)
	}
	if err := w.Owner.Validate(); err != nil {
		return fmt.Errorf("workspace %s owner: %w", w.ID, err)
	}
	return nil
}

// WorkspacePatch mirrors the editable workspace fields; nil means untouched.
type WorkspacePatch struct {
	ID          string
	Name        *string
	Description *string
	Status      *WorkspaceStatus
	Industry    *Industry
	UpdatedAt   *time.Time
	UsersCount  *int
	StorageUsed *int
	Owner       *User
}

func (p WorkspacePatch) PatchID() string { return p.ID }

func (p WorkspacePatch) Apply(w *Workspace) {
	set(p.Name, &w.Name)
	set(p.Description, &w.Description)
	set(p.Status, &w.Status)
	set(p.Industry, &w.Industry)
	set(p.UpdatedAt, &w.UpdatedAt)
	set(p.UsersCount, &w.UsersCount)
	set(p.StorageUsed, &w.StorageUsed)
	set(p.Owner, &w.Owner)
}
