package profile_test

import (
	"context"
	"errors"
	"testing"

	"go-japastel-api/internal/profile"

	"github.com/stretchr/testify/assert"
)

type fakeNameStore struct {
	names map[string]string
	err   error
}

func (f *fakeNameStore) DisplayName(ctx context.Context, sessionID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.names[sessionID], nil
}

func TestProfileService_DisplayName(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := profile.NewService(profile.Deps{
			Store: &fakeNameStore{names: map[string]string{"sess-1": "Sergio"}},
		})

		res, err := svc.DisplayName(ctx, "sess-1")
		assert.NoError(t, err)
		assert.Equal(t, "Sergio", res.Name)
	})

	t.Run("missing_name_is_empty_not_an_error", func(t *testing.T) {
		svc := profile.NewService(profile.Deps{Store: &fakeNameStore{}})

		res, err := svc.DisplayName(ctx, "anon")
		assert.NoError(t, err)
		assert.Empty(t, res.Name)
	})

	t.Run("store_error_propagates", func(t *testing.T) {
		svc := profile.NewService(profile.Deps{
			Store: &fakeNameStore{err: errors.New("connection refused")},
		})

		_, err := svc.DisplayName(ctx, "sess-1")
		assert.Error(t, err)
	})
}
