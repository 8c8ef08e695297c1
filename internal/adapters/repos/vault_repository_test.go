package repos_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/architeacher/device-registry/internal/adapters/repos"
	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/suite"
)

type VaultRepositoryTestSuite struct {
	suite.Suite
	server *httptest.Server
	mu     sync.Mutex
	token  string
	repo   *repos.VaultRepository
}

func TestVaultRepositoryTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(VaultRepositoryTestSuite))
}

func (s *VaultRepositoryTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.token = r.Header.Get("X-Vault-Token")
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/v1/apps/data/device-registry":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"data":     map[string]any{"POSTGRES_PASSWORD": "s3cret"},
					"metadata": map[string]any{"version": 2},
				},
			})
		case "/v1/auth/approle/login":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"auth": map[string]any{"client_token": "issued-token"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[]}`))
		}
	}))

	cfg := api.DefaultConfig()
	cfg.Address = s.server.URL

	client, err := api.NewClient(cfg)
	s.Require().NoError(err)

	s.repo = repos.NewVaultRepository(client)
}

func (s *VaultRepositoryTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *VaultRepositoryTestSuite) TestGetSecrets_SendsToken() {
	s.repo.SetToken("test-token")

	secret, err := s.repo.GetSecrets(context.Background(), "apps/data/device-registry")
	s.Require().NoError(err)
	s.Require().NotNil(secret)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().Equal("test-token", s.token)

	data, ok := secret.Data["data"].(map[string]any)
	s.Require().True(ok)
	s.Require().Equal("s3cret", data["POSTGRES_PASSWORD"])
}

func (s *VaultRepositoryTestSuite) TestGetSecrets_MissingPath() {
	s.repo.SetToken("test-token")

	secret, err := s.repo.GetSecrets(context.Background(), "apps/data/unknown")
	s.Require().NoError(err)
	s.Require().Nil(secret)
}

func (s *VaultRepositoryTestSuite) TestWriteWithContext() {
	secret, err := s.repo.WriteWithContext(context.Background(), "auth/approle/login", map[string]any{
		"role_id":   "role",
		"secret_id": "secret",
	})
	s.Require().NoError(err)
	s.Require().NotNil(secret.Auth)
	s.Require().Equal("issued-token", secret.Auth.ClientToken)
}
