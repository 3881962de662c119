package imagecache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

func TestCache_Miss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet("image:accommodations/1/a.jpg").RedisNil()

	file, ok, err := New(client, time.Minute).Get(context.Background(), "accommodations/1/a.jpg")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, file)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_SetThenHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := New(client, 30*time.Minute)

	stored := `{"content_type":"image/png","etag":"\"e1\"","body":"cG5n"}`
	mock.ExpectSet("image:k.png", stored, 30*time.Minute).SetVal("OK")
	mock.ExpectGet("image:k.png").SetVal(stored)

	require.NoError(t, cache.Set(context.Background(), "k.png", &domain.ImageFile{
		ContentType: "image/png",
		ETag:        `"e1"`,
		Body:        []byte("png"),
	}))

	file, ok, err := cache.Get(context.Background(), "k.png")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("png"), file.Body)
	assert.Equal(t, `"e1"`, file.ETag)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_GetError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet("image:k").SetErr(errors.New("connection refused"))

	_, _, err := New(client, time.Minute).Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrCacheUnavailable)
}

func TestCache_Invalidate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectDel("image:k").SetVal(1)

	require.NoError(t, New(client, time.Minute).Invalidate(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
