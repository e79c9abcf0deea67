package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"secretarium/internal/infrastructure/kv/memory"
)

var secretConfig = Config{
	Name:             "Secret",
	SearchableFields: []string{"name", "username", "notes", "url", "tags"},
	SensitiveFields:  []SensitiveField{{Name: "password"}},
	WorkspaceScoped:  true,
	DefaultSort:      "-updatedAt,name",
}

var cardConfig = Config{
	Name:             "Bank card",
	SearchableFields: []string{"cardholderName", "brand", "tags"},
	SensitiveFields: []SensitiveField{
		{Name: "cardNumber", Mask: CardNumberMask},
		{Name: "cvv"},
	},
	WorkspaceScoped: true,
	DefaultSort:     "-updatedAt,cardholderName",
}

// newTestService wires a service to a fresh in-memory collection with a
// deterministic clock and id sequence.
func newTestService(t *testing.T, cfg Config) (*Service, *time.Time) {
	t.Helper()

	store := memory.New()
	t.Cleanup(func() { _ = store.Close() })

	svc := NewService(store.Collection("test"), cfg, slog.Default())

	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}

	return svc, &clock
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id, timestamps and empty tags", func(t *testing.T) {
		svc, _ := newTestService(t, secretConfig)

		created, err := svc.Create(ctx, Record{
			"name":        "GitHub",
			"password":    "p@ss",
			"workspaceId": "ws-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "id-1", created.ID())
		assert.Equal(t, "2024-05-01T12:00:00.000Z", created["createdAt"])
		assert.Equal(t, created["createdAt"], created["updatedAt"])
		assert.Equal(t, []any{}, created["tags"])
	})

	t.Run("returns masked copy but stores plaintext", func(t *testing.T) {
		svc, _ := newTestService(t, secretConfig)

		created, err := svc.Create(ctx, Record{
			"name":        "GitHub",
			"password":    "p@ss",
			"workspaceId": "ws-1",
		})

		require.NoError(t, err)
		assert.Equal(t, Placeholder, created["password"])

		raw, err := svc.col.Get(ctx, created.ID())
		require.NoError(t, err)
		var stored Record
		require.NoError(t, json.Unmarshal(raw, &stored))
		assert.Equal(t, "p@ss", stored["password"])
	})

	t.Run("requires workspaceId for scoped kinds", func(t *testing.T) {
		svc, _ := newTestService(t, secretConfig)

		_, err := svc.Create(ctx, Record{"name": "GitHub", "password": "p@ss"})

		assert.True(t, IsBadRequest(err))
	})

	t.Run("unscoped kinds need no workspaceId", func(t *testing.T) {
		cfg := secretConfig
		cfg.WorkspaceScoped = false
		svc, _ := newTestService(t, cfg)

		_, err := svc.Create(ctx, Record{"name": "Workspace-less"})

		assert.NoError(t, err)
	})

	t.Run("does not mutate the input record", func(t *testing.T) {
		svc, _ := newTestService(t, secretConfig)
		input := Record{"name": "GitHub", "password": "p@ss", "workspaceId": "ws-1"}

		_, err := svc.Create(ctx, input)

		require.NoError(t, err)
		assert.NotContains(t, input, "id")
		assert.Equal(t, "p@ss", input["password"])
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, cardConfig)

	created, err := svc.Create(ctx, Record{
		"cardholderName": "Alex Doe",
		"cardNumber":     "4111111111114242",
		"cvv":            "123",
		"workspaceId":    "ws-1",
	})
	require.NoError(t, err)

	t.Run("masks card number and cvv", func(t *testing.T) {
		got, err := svc.GetByID(ctx, created.ID())

		require.NoError(t, err)
		assert.Equal(t, "**** 4242", got["cardNumber"])
		assert.Equal(t, Placeholder, got["cvv"])
		assert.Equal(t, "Alex Doe", got["cardholderName"])
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "missing")

		assert.True(t, IsNotFound(err))
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("merges partial input and restamps updatedAt", func(t *testing.T) {
		svc, clock := newTestService(t, secretConfig)

		created, err := svc.Create(ctx, Record{
			"name":        "GitHub",
			"username":    "octocat",
			"password":    "p@ss",
			"workspaceId": "ws-1",
		})
		require.NoError(t, err)

		*clock = clock.Add(time.Hour)
		updated, err := svc.Update(ctx, created.ID(), Record{"notes": "rotated"})

		require.NoError(t, err)
		assert.Equal(t, "rotated", updated["notes"])
		assert.Equal(t, "octocat", updated["username"])
		assert.Equal(t, created["createdAt"], updated["createdAt"])
		assert.Equal(t, "2024-05-01T13:00:00.000Z", updated["updatedAt"])

		// Untouched sensitive fields keep their stored plaintext.
		plain, err := svc.CopyField(ctx, created.ID(), "password")
		require.NoError(t, err)
		assert.Equal(t, "p@ss", plain)
	})

	t.Run("id and createdAt are immutable", func(t *testing.T) {
		svc, _ := newTestService(t, secretConfig)

		created, err := svc.Create(ctx, Record{"name": "GitHub", "workspaceId": "ws-1"})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID(), Record{
			"id":        "hijacked",
			"createdAt": "1999-01-01T00:00:00.000Z",
		})

		require.NoError(t, err)
		assert.Equal(t, created.ID(), updated.ID())
		assert.Equal(t, created["createdAt"], updated["createdAt"])
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		svc, _ := newTestService(t, secretConfig)

		_, err := svc.Update(ctx, "missing", Record{"name": "x"})

		assert.True(t, IsNotFound(err))
	})
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, secretConfig)

	created, err := svc.Create(ctx, Record{"name": "GitHub", "workspaceId": "ws-1"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, created.ID()))

	_, err = svc.GetByID(ctx, created.ID())
	assert.True(t, IsNotFound(err))

	// Deleting again is a no-op.
	assert.NoError(t, svc.Remove(ctx, created.ID()))
}

func TestService_CopyField(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, secretConfig)

	created, err := svc.Create(ctx, Record{
		"name":        "GitHub",
		"password":    "p@ss",
		"workspaceId": "ws-1",
	})
	require.NoError(t, err)

	t.Run("returns plaintext", func(t *testing.T) {
		plain, err := svc.CopyField(ctx, created.ID(), "password")

		require.NoError(t, err)
		assert.Equal(t, "p@ss", plain)
	})

	t.Run("absent field is a bad request", func(t *testing.T) {
		_, err := svc.CopyField(ctx, created.ID(), "otpSecret")

		assert.True(t, IsBadRequest(err))
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := svc.CopyField(ctx, "missing", "password")

		assert.True(t, IsNotFound(err))
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	seedSecrets := func(t *testing.T, svc *Service, clock *time.Time) {
		t.Helper()
		secrets := []Record{
			{"name": "GitHub", "username": "octocat", "password": "a", "workspaceId": "ws-1", "tags": []any{"dev"}},
			{"name": "Stripe", "notes": "payments key", "password": "b", "workspaceId": "ws-1", "tags": []any{"prod", "payments"}},
			{"name": "AWS Root", "password": "c", "workspaceId": "ws-2", "tags": []any{"prod"}},
		}
		for _, rec := range secrets {
			_, err := svc.Create(ctx, rec)
			require.NoError(t, err)
			*clock = clock.Add(time.Minute)
		}
	}

	t.Run("workspace isolation", func(t *testing.T) {
		svc, clock := newTestService(t, secretConfig)
		seedSecrets(t, svc, clock)

		result, err := svc.List(ctx, ListParams{WorkspaceID: "ws-1"})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Meta.Total)
		for _, rec := range result.Data {
			assert.Equal(t, "ws-1", rec["workspaceId"])
		}
	})

	t.Run("every listed record is masked", func(t *testing.T) {
		svc, clock := newTestService(t, secretConfig)
		seedSecrets(t, svc, clock)

		result, err := svc.List(ctx, ListParams{})

		require.NoError(t, err)
		require.Len(t, result.Data, 3)
		for _, rec := range result.Data {
			assert.Equal(t, Placeholder, rec["password"])
		}
	})

	t.Run("default sort puts the freshest record first", func(t *testing.T) {
		svc, clock := newTestService(t, secretConfig)
		seedSecrets(t, svc, clock)

		result, err := svc.List(ctx, ListParams{})

		require.NoError(t, err)
		assert.Equal(t, "AWS Root", result.Data[0]["name"])
	})

	t.Run("search and tags combine", func(t *testing.T) {
		svc, clock := newTestService(t, secretConfig)
		seedSecrets(t, svc, clock)

		result, err := svc.List(ctx, ListParams{Q: "payments", Tags: []string{"prod"}})

		require.NoError(t, err)
		require.Len(t, result.Data, 1)
		assert.Equal(t, "Stripe", result.Data[0]["name"])
	})

	t.Run("empty result is an empty page", func(t *testing.T) {
		svc, _ := newTestService(t, secretConfig)

		result, err := svc.List(ctx, ListParams{})

		require.NoError(t, err)
		assert.NotNil(t, result.Data)
		assert.Empty(t, result.Data)
		assert.Equal(t, Meta{Total: 0, Page: 1, Limit: 25, TotalPages: 1, HasMore: false}, result.Meta)
	})

	t.Run("pagination walks the whole set", func(t *testing.T) {
		svc, clock := newTestService(t, secretConfig)
		for i := 0; i < 60; i++ {
			_, err := svc.Create(ctx, Record{
				"name":        fmt.Sprintf("secret-%02d", i),
				"workspaceId": "ws-1",
			})
			require.NoError(t, err)
			*clock = clock.Add(time.Second)
		}

		first, err := svc.List(ctx, ListParams{Page: 1, Limit: 25})
		require.NoError(t, err)
		last, err := svc.List(ctx, ListParams{Page: 3, Limit: 25})
		require.NoError(t, err)

		assert.Equal(t, Meta{Total: 60, Page: 1, Limit: 25, TotalPages: 3, HasMore: true}, first.Meta)
		assert.Len(t, last.Data, 10)
		assert.False(t, last.Meta.HasMore)
	})
}
