package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nikolayk812/foodcart-demo/internal/port"
	"github.com/nikolayk812/foodcart-demo/internal/repository"
)

type kvRepositorySuite struct {
	suite.Suite

	repo port.KVStore
	pool *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestKVRepositorySuite(t *testing.T) {
	suite.Run(t, new(kvRepositorySuite))
}

// before all tests in the suite
func (suite *kvRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo = repository.NewKV(suite.pool)
}

// after all tests in the suite
func (suite *kvRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *kvRepositorySuite) TestSetGet() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		key       string
		value     string
		wantError string
	}{
		{
			name:  "set and get value: ok",
			key:   gofakeit.UUID(),
			value: gofakeit.Sentence(5),
		},
		{
			name:  "set empty value: ok",
			key:   gofakeit.UUID(),
			value: "",
		},
		{
			name:      "set with empty key: error",
			key:       "",
			value:     "whatever",
			wantError: "key is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			err := suite.repo.Set(ctx, tt.key, tt.value)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			got, ok, err := suite.repo.Get(ctx, tt.key)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.value, got)
		})
	}
}

func (suite *kvRepositorySuite) TestSetOverwrites() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	key := gofakeit.UUID()

	require.NoError(t, suite.repo.Set(ctx, key, "first"))
	require.NoError(t, suite.repo.Set(ctx, key, "second"))

	got, ok, err := suite.repo.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", got)
}

func (suite *kvRepositorySuite) TestGetAbsent() {
	t := suite.T()
	ctx := t.Context()

	_, ok, err := suite.repo.Get(ctx, gofakeit.UUID())
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = suite.repo.Get(ctx, "")
	require.EqualError(t, err, "key is empty")
}

func (suite *kvRepositorySuite) TestRemove() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	key := gofakeit.UUID()

	require.NoError(t, suite.repo.Set(ctx, key, "value"))
	require.NoError(t, suite.repo.Remove(ctx, key))

	_, ok, err := suite.repo.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	// removing an absent key is not an error
	require.NoError(t, suite.repo.Remove(ctx, key))

	require.EqualError(t, suite.repo.Remove(ctx, ""), "key is empty")
}

func (suite *kvRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE kv_store")
	suite.NoError(err)
}
