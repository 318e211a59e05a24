package directory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"

	"github.com/frisklabs/frisk/api"
	"github.com/frisklabs/frisk/aplog"
	"github.com/frisklabs/frisk/httpf"
	"github.com/frisklabs/frisk/models"
)

const usersPath = "/api/v1/users"

// D is the session user directory. It is populated once near session start
// and read-mostly afterwards; lookups that miss are normal and simply
// return ok=false.
type D interface {
	// Load fetches the full user list from the review service and replaces the directory contents.
	Load(ctx context.Context) error

	// Get resolves a user id. ok is false when the id is unknown.
	Get(id string) (models.User, bool)

	// All returns the users currently in the directory, in no particular order.
	All() []models.User
}

type directory struct {
	client *resty.Client
	logger *slog.Logger

	mu    sync.RWMutex
	users map[string]models.User
}

func New(f httpf.F, logBuilder aplog.Builder) (D, error) {
	client, err := f.NewClient()
	if err != nil {
		return nil, err
	}

	return &directory{
		client: client,
		logger: logBuilder.WithComponent("directory").Build(),
		users:  make(map[string]models.User),
	}, nil
}

// NewForTest builds a directory pre-populated with the passed users and no
// API client. Lookups work; Load panics.
func NewForTest(users ...models.User) D {
	d := &directory{
		users: make(map[string]models.User, len(users)),
	}
	for _, u := range users {
		d.users[u.ID] = u
	}

	return d
}

func (d *directory) Load(ctx context.Context) error {
	raw, err := api.GetJSON[[]api.RawUser](ctx, d.client, "loading users", usersPath, nil)
	if err != nil {
		d.logger.Error("failed to load user directory", "error", err)
		return errors.Wrap(err, "failed to load user directory")
	}

	users := make(map[string]models.User, len(raw))
	for _, r := range raw {
		users[r.UserID] = models.User{
			ID:       r.UserID,
			Name:     r.DisplayName,
			Email:    r.Mail,
			ImageUrl: r.ImageUrl,
		}
	}

	d.mu.Lock()
	d.users = users
	d.mu.Unlock()

	d.logger.Debug("user directory loaded", "count", len(users))
	return nil
}

func (d *directory) Get(id string) (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[id]
	return u, ok
}

func (d *directory) All() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.User, 0, len(d.users))
	for _, u := range d.users {
		out = append(out, u)
	}

	return out
}

var _ D = &directory{}
