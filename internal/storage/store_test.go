package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/urban_incident_system/internal/storage"
	"github.com/shenikar/urban_incident_system/internal/storage/mocks"
)

const baseURL = "https://project.supabase.co/storage/v1/object/public"

func newTestStore(t *testing.T) (*storage.Store, *mocks.MockObjectClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockObjectClient(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return storage.NewStore(client, baseURL+"/", logger), client
}

func notFound() error {
	return minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404, Message: "The specified key does not exist."}
}

func TestPublicURL(t *testing.T) {
	store, _ := newTestStore(t)

	got := store.PublicURL("yolo_model", "user123_1699999999.jpg")

	assert.Equal(t, baseURL+"/yolo_model/user123_1699999999.jpg", got)
}

func TestRelativePath_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	cases := []struct{ bucket, path string }{
		{"yolo_model", "user123_1699999999.jpg"},
		{"incidents", "2025/11/550e8400.png"},
		{"avatars", "public/nested/public.jpg"},
		{"attachments", "a-b_c.d.jpeg"},
		{"yolo_model", "x#y_1.jpg"},
		{"yolo_model", "q?y_1.jpg"},
		{"yolo_model", "a%20b_1.jpg"},
		{"yolo_model", "with space_1.png"},
		{"yolo_model", "semi;colon,comma_1.jpg"},
	}

	for _, c := range cases {
		rel, ok := store.RelativePathFromURL(store.PublicURL(c.bucket, c.path))
		require.True(t, ok, c.path)
		assert.Equal(t, c.path, rel)
	}
}

func TestRelativePath_RoundTripWithBaseOverride(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	bases := []string{
		"https://cdn.example.com/media",
		"https://cdn.example.com",
		"https://account.blob.core.windows.net/container/",
	}
	paths := []string{"user-1_1700000000000.jpg", "x#y_1.jpg", "dir/a%20b_1.png"}

	for _, base := range bases {
		store := storage.NewStore(nil, base, logger)
		for _, path := range paths {
			publicURL := store.PublicURL("yolo_model", path)

			rel, ok := store.RelativePathFromURL(publicURL)

			require.True(t, ok, publicURL)
			assert.Equal(t, path, rel, publicURL)
		}
	}
}

func TestRelativePathFromURL_ForeignURLFallsBackToMarker(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	store := storage.NewStore(nil, "https://cdn.example.com/media", logger)

	rel, ok := store.RelativePathFromURL("https://project.supabase.co/storage/v1/object/public/yolo_model/u_1.jpg")
	require.True(t, ok)
	assert.Equal(t, "u_1.jpg", rel)

	_, ok = store.RelativePathFromURL("https://cdn.example.com/other/u_1.jpg")
	assert.False(t, ok)

	_, ok = store.RelativePathFromURL("https://cdn.example.com/media/yolo_model/")
	assert.False(t, ok)
}

func TestPublicURL_EscapesSegments(t *testing.T) {
	store, _ := newTestStore(t)

	got := store.PublicURL("yolo_model", "x#y?z_1.jpg")

	assert.Equal(t, baseURL+"/yolo_model/x%23y%3Fz_1.jpg", got)
}

func TestRelativePath_Malformed(t *testing.T) {
	cases := []string{
		"",
		"not a url",
		"/storage/v1/object/public/yolo_model/a.jpg",
		"https://cdn.example.com/images/a.jpg",
		"https://project.supabase.co/storage/v1/object/public",
		"https://project.supabase.co/storage/v1/object/public/yolo_model",
		"https://project.supabase.co/storage/v1/object/public/yolo_model/",
		"://missing-scheme",
	}

	for _, raw := range cases {
		rel, ok := storage.RelativePath(raw)
		assert.False(t, ok, raw)
		assert.Empty(t, rel, raw)
	}
}

func TestPut_Success(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()
	data := []byte("jpeg-bytes")

	client.EXPECT().
		StatObject(ctx, "yolo_model", "u_1.jpg", gomock.Any()).
		Return(minio.ObjectInfo{}, notFound()).
		Times(1)
	client.EXPECT().
		PutObject(ctx, "yolo_model", "u_1.jpg", gomock.Any(), int64(len(data)), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, r io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			body, err := io.ReadAll(r)
			assert.NoError(t, err)
			assert.Equal(t, data, body)
			assert.Equal(t, "image/jpeg", opts.ContentType)
			return minio.UploadInfo{Bucket: "yolo_model", Key: "u_1.jpg"}, nil
		}).Times(1)

	obj, err := store.Put(ctx, "yolo_model", "u_1.jpg", data, "image/jpeg", false)

	require.NoError(t, err)
	assert.Equal(t, "u_1.jpg", obj.RelativePath)
	assert.Equal(t, baseURL+"/yolo_model/u_1.jpg", obj.PublicURL)
}

func TestPut_ExistingObjectWithoutOverwrite(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()

	client.EXPECT().StatObject(ctx, "yolo_model", "u_1.jpg", gomock.Any()).Return(minio.ObjectInfo{Key: "u_1.jpg"}, nil).Times(1)
	client.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := store.Put(ctx, "yolo_model", "u_1.jpg", []byte("x"), "image/jpeg", false)

	var writeErr *storage.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.ErrorIs(t, err, storage.ErrObjectExists)
}

func TestPut_OverwriteSkipsExistenceCheck(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()

	client.EXPECT().StatObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	client.EXPECT().PutObject(ctx, "yolo_model", "u_1.jpg", gomock.Any(), int64(1), gomock.Any()).Return(minio.UploadInfo{}, nil).Times(1)

	_, err := store.Put(ctx, "yolo_model", "u_1.jpg", []byte("x"), "image/jpeg", true)

	require.NoError(t, err)
}

func TestPut_RemoteFailure(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()
	remoteErr := errors.New("connection reset")

	client.EXPECT().StatObject(ctx, "yolo_model", "u_1.jpg", gomock.Any()).Return(minio.ObjectInfo{}, notFound()).Times(1)
	client.EXPECT().PutObject(ctx, "yolo_model", "u_1.jpg", gomock.Any(), int64(1), gomock.Any()).Return(minio.UploadInfo{}, remoteErr).Times(1)

	_, err := store.Put(ctx, "yolo_model", "u_1.jpg", []byte("x"), "image/jpeg", false)

	var writeErr *storage.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.ErrorIs(t, err, remoteErr)
}

func TestDelete(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()

	client.EXPECT().RemoveObject(ctx, "yolo_model", "u_1.jpg", gomock.Any()).Return(nil).Times(1)

	require.NoError(t, store.Delete(ctx, "yolo_model", "u_1.jpg"))
}

func TestDelete_RemoteFailure(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()

	client.EXPECT().RemoveObject(ctx, "yolo_model", "u_1.jpg", gomock.Any()).Return(errors.New("access denied")).Times(1)

	err := store.Delete(ctx, "yolo_model", "u_1.jpg")

	var deleteErr *storage.DeleteError
	require.ErrorAs(t, err, &deleteErr)
	assert.Equal(t, "u_1.jpg", deleteErr.Path)
}
