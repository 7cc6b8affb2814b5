package todotxt

import "context"

// Repository defines persistent storage for task lists.
type Repository interface {
	// Load reads the active task list. A missing backing file yields
	// an empty list, not an error.
	Load(ctx context.Context) (*List, error)

	// Save writes the active task list, replacing what was stored.
	Save(ctx context.Context, list *List) error

	// LoadArchive reads the archived task list.
	LoadArchive(ctx context.Context) (*List, error)

	// AppendArchive appends tasks to the archive without touching the
	// active list.
	AppendArchive(ctx context.Context, tasks []*Task) error
}
