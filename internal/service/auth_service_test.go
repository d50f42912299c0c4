package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Juan-204/evc-backend/internal/config"
	"github.com/Juan-204/evc-backend/internal/dto"
	"github.com/Juan-204/evc-backend/internal/model"
	"github.com/Juan-204/evc-backend/internal/repository"
	"github.com/Juan-204/evc-backend/internal/service"
)

type stubUsuarioRepo struct {
	users map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Username == username && u.Activo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Activo = false
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func authConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
}

func seedUser(t *testing.T, repo *stubUsuarioRepo, username, password, rol string) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.Usuario{
		ID: uuid.New(), Username: username, Nombre: "Test " + username,
		PasswordHash: string(hash), Rol: rol, Activo: true,
	}
	repo.users[u.ID] = u
	return u
}

func TestLogin(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUser(t, repo, "operario1", "secreta123", "operario")
	svc := service.NewAuthService(repo, authConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "operario1", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "operario", resp.User.Rol)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "operario1", Password: "otra"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "secreta123"})
	assert.Error(t, err)
}

func TestRefresh(t *testing.T) {
	repo := newStubUsuarioRepo()
	user := seedUser(t, repo, "admin1", "secreta123", "administrador")
	svc := service.NewAuthService(repo, authConfig())

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin1", Password: "secreta123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), refreshed.User.ID)

	// Deactivated users cannot refresh
	require.NoError(t, svc.DesactivarUsuario(context.Background(), user.ID))
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.Error(t, err)

	_, err = svc.Refresh(context.Background(), "no-es-un-token")
	assert.Error(t, err)
}

func TestCrearUsuario(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, authConfig())

	resp, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "nuevo", Nombre: "Nuevo Operario", Password: "clave-larga", Rol: "operario",
	})
	require.NoError(t, err)
	assert.True(t, resp.Activo)

	// Stored hash verifies, plaintext is never kept
	created, err := repo.FindByUsername(context.Background(), "nuevo")
	require.NoError(t, err)
	assert.NotEqual(t, "clave-larga", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("clave-larga")))
}
