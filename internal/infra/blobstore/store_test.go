package blobstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects      map[string][]byte
	contentTypes map[string]string
	failPut      bool
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, contentTypes: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.failPut {
		return nil, errors.New("connection reset")
	}
	body, _ := io.ReadAll(in.Body)
	f.objects[*in.Key] = body
	f.contentTypes[*in.Key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body:        io.NopCloser(bytes.NewReader(body)),
		ContentType: aws.String(f.contentTypes[*in.Key]),
		ETag:        aws.String(`"abc"`),
	}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestStore_RoundTrip(t *testing.T) {
	fake := newFakeS3()
	store := New(fake, "images")
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "accommodations/1/a.jpg", "image/jpeg", []byte("jpeg")))

	file, err := store.Get(ctx, "accommodations/1/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", file.ContentType)
	assert.Equal(t, `"abc"`, file.ETag)
	assert.Equal(t, []byte("jpeg"), file.Body)

	require.NoError(t, store.Delete(ctx, "accommodations/1/a.jpg"))

	_, err = store.Get(ctx, "accommodations/1/a.jpg")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestStore_PutFailure(t *testing.T) {
	fake := newFakeS3()
	fake.failPut = true

	err := New(fake, "images").Put(context.Background(), "k", "image/png", []byte("x"))
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestNewImageKey(t *testing.T) {
	now := time.UnixMilli(1767225600000)

	key, err := NewImageKey(2, "image/png", now)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "accommodations/2/1767225600000-"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)
	assert.Equal(t, "/api/v1/images/file/"+key, PublicURL(key))
}

func TestExtensionFor(t *testing.T) {
	ext, err := ExtensionFor("image/JPEG; charset=binary")
	require.NoError(t, err)
	assert.Equal(t, "jpg", ext)

	_, err = ExtensionFor("application/pdf")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
