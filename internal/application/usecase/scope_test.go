package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/usecase"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/access"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/entity"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/repository"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/infrastructure/memory"
)

// ─────────────────────────────────────────────────────────────
// Dobles de prueba
// ─────────────────────────────────────────────────────────────

// fakeUserRepo implementa repository.UserRepository sobre un mapa.
type fakeUserRepo struct {
	profiles map[string]*entity.UserProfile
	failUID  bool
}

func newFakeUserRepo(profiles ...*entity.UserProfile) *fakeUserRepo {
	r := &fakeUserRepo{profiles: make(map[string]*entity.UserProfile)}
	for _, p := range profiles {
		r.profiles[p.UID] = p
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.UserProfile) error {
	r.profiles[user.UID] = user
	return nil
}

func (r *fakeUserRepo) GetByUID(_ context.Context, uid string) (*entity.UserProfile, error) {
	if r.failUID {
		return nil, errors.New("almacén caído")
	}
	return r.profiles[uid], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.UserProfile, error) {
	for _, p := range r.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.UserProfile) error {
	r.profiles[user.UID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, uid string) error {
	delete(r.profiles, uid)
	return nil
}

// countingStore envuelve un DocumentStore contando las lecturas de listado.
type countingStore struct {
	repository.DocumentStore
	listCalls int
}

func (s *countingStore) ListAll(ctx context.Context, collection string) ([]*repository.Document, error) {
	s.listCalls++
	return s.DocumentStore.ListAll(ctx, collection)
}

func (s *countingStore) ListByOwner(ctx context.Context, collection, ownerID string) ([]*repository.Document, error) {
	s.listCalls++
	return s.DocumentStore.ListByOwner(ctx, collection, ownerID)
}

// ─────────────────────────────────────────────────────────────
// ScopeResolver
// ─────────────────────────────────────────────────────────────

func TestScopeResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("sin identidad devuelve Nobody", func(t *testing.T) {
		r := usecase.NewScopeResolver(newFakeUserRepo(), nil)
		sc := r.Resolve(ctx, "", "")
		assert.True(t, sc.Empty())
		assert.False(t, sc.CanAccess("cualquiera"), "Nobody no puede tocar ningún registro")
	})

	t.Run("el rol explícito del token tiene prioridad", func(t *testing.T) {
		// El perfil almacenado dice user, pero el token trae admin.
		repo := newFakeUserRepo(&entity.UserProfile{UID: "u1", Role: entity.RoleUser})
		r := usecase.NewScopeResolver(repo, nil)
		assert.True(t, r.Resolve(ctx, "u1", entity.RoleAdmin).IsAdmin())
	})

	t.Run("sin rol explícito consulta el perfil", func(t *testing.T) {
		repo := newFakeUserRepo(
			&entity.UserProfile{UID: "jefa", Role: entity.RoleAdmin},
			&entity.UserProfile{UID: "u2", Role: entity.RoleUser},
		)
		r := usecase.NewScopeResolver(repo, nil)

		assert.True(t, r.Resolve(ctx, "jefa", "").IsAdmin())

		sc := r.Resolve(ctx, "u2", "")
		assert.False(t, sc.IsAdmin())
		assert.Equal(t, "u2", sc.OwnerID())
	})

	t.Run("lookup fallido degrada a usuario común", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.failUID = true
		r := usecase.NewScopeResolver(repo, nil)
		sc := r.Resolve(ctx, "u3", "")
		assert.False(t, sc.IsAdmin(), "ante la duda nunca se escala a admin")
		assert.Equal(t, "u3", sc.OwnerID())
	})

	t.Run("perfil inexistente asume usuario común", func(t *testing.T) {
		r := usecase.NewScopeResolver(newFakeUserRepo(), nil)
		sc := r.Resolve(ctx, "fantasma", "")
		assert.False(t, sc.IsAdmin())
		assert.Equal(t, "fantasma", sc.OwnerID())
	})
}

// ─────────────────────────────────────────────────────────────
// ListScoped
// ─────────────────────────────────────────────────────────────

func seedDocs(t *testing.T, store repository.DocumentStore, collection string, owners ...string) {
	t.Helper()
	ctx := context.Background()
	for i, owner := range owners {
		err := store.Insert(ctx, collection, &repository.Document{
			ID:      string(rune('a' + i)),
			OwnerID: owner,
			Data:    []byte(`{}`),
		})
		require.NoError(t, err)
	}
}

func TestListScoped(t *testing.T) {
	ctx := context.Background()

	t.Run("admin lee todos los registros", func(t *testing.T) {
		store := memory.NewDocumentStore()
		seedDocs(t, store, repository.CollectionGarments, "ana", "ana", "maria")

		docs, err := usecase.ListScoped(ctx, store, repository.CollectionGarments, access.Admin())
		require.NoError(t, err)
		assert.Len(t, docs, 3)
	})

	t.Run("dueño lee solo lo propio", func(t *testing.T) {
		store := memory.NewDocumentStore()
		seedDocs(t, store, repository.CollectionOrders, "ana", "ana", "maria")

		docs, err := usecase.ListScoped(ctx, store, repository.CollectionOrders, access.Owner("ana"))
		require.NoError(t, err)
		require.Len(t, docs, 2)
		for _, d := range docs {
			assert.Equal(t, "ana", d.OwnerID)
		}
	})

	t.Run("sin identidad devuelve vacío sin tocar el almacén", func(t *testing.T) {
		store := &countingStore{DocumentStore: memory.NewDocumentStore()}
		seedDocs(t, store.DocumentStore, repository.CollectionClients, "ana")

		docs, err := usecase.ListScoped(ctx, store, repository.CollectionClients, access.Nobody())
		require.NoError(t, err)
		assert.Empty(t, docs)
		assert.Zero(t, store.listCalls, "Nobody no debe disparar ninguna consulta")
	})
}
