// Package storage - адаптер объектного хранилища для фотографий инцидентов.
//
// В базе данных хранится только относительный путь объекта внутри бакета; публичный URL
// собирается как {base_url}/{bucket}/{relative_path} и разбирается обратно по сегменту "public".
package storage

//go:generate mockgen -source=store.go -destination=mocks/store_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

const publicMarker = "public"

var ErrObjectExists = errors.New("storage: object already exists")

// WriteError - ошибка записи объекта
type WriteError struct {
	Bucket string
	Path   string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("storage: write %s/%s: %v", e.Bucket, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// DeleteError - ошибка удаления объекта
type DeleteError struct {
	Bucket string
	Path   string
	Err    error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("storage: delete %s/%s: %v", e.Bucket, e.Path, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// ObjectClient - подмножество *minio.Client, используемое адаптером
type ObjectClient interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// Object - ссылка на сохраненный объект
type Object struct {
	Bucket       string
	RelativePath string
	PublicURL    string
}

// Store - адаптер объектного хранилища
type Store struct {
	client  ObjectClient
	baseURL string
	base    *url.URL
	logger  *logrus.Logger
}

// NewStore создает адаптер; baseURL - публичный префикс, к которому добавляется {bucket}/{path}
func NewStore(client ObjectClient, baseURL string, logger *logrus.Logger) *Store {
	s := &Store{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
	if u, err := url.Parse(s.baseURL); err == nil && u.Scheme != "" && u.Host != "" {
		s.base = u
	}
	return s
}

// Put сохраняет объект. При overwrite == false существующий объект не перезаписывается.
func (s *Store) Put(ctx context.Context, bucket, relativePath string, data []byte, contentType string, overwrite bool) (*Object, error) {
	log := s.logger.WithFields(logrus.Fields{
		"component": "storage",
		"bucket":    bucket,
		"path":      relativePath,
	})
	log.Info("Uploading object")

	if !overwrite {
		_, err := s.client.StatObject(ctx, bucket, relativePath, minio.StatObjectOptions{})
		switch {
		case err == nil:
			return nil, &WriteError{Bucket: bucket, Path: relativePath, Err: ErrObjectExists}
		case !isNotFound(err):
			log.WithError(err).Error("Failed to check object existence")
			return nil, &WriteError{Bucket: bucket, Path: relativePath, Err: err}
		}
	}

	_, err := s.client.PutObject(ctx, bucket, relativePath, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		log.WithError(err).Error("Failed to upload object")
		return nil, &WriteError{Bucket: bucket, Path: relativePath, Err: err}
	}

	obj := &Object{
		Bucket:       bucket,
		RelativePath: relativePath,
		PublicURL:    s.PublicURL(bucket, relativePath),
	}
	log.WithField("public_url", obj.PublicURL).Info("Object uploaded successfully")
	return obj, nil
}

// Delete удаляет объект
func (s *Store) Delete(ctx context.Context, bucket, relativePath string) error {
	log := s.logger.WithFields(logrus.Fields{
		"component": "storage",
		"bucket":    bucket,
		"path":      relativePath,
	})
	log.Info("Deleting object")

	if err := s.client.RemoveObject(ctx, bucket, relativePath, minio.RemoveObjectOptions{}); err != nil {
		log.WithError(err).Error("Failed to delete object")
		return &DeleteError{Bucket: bucket, Path: relativePath, Err: err}
	}
	return nil
}

// PublicURL собирает публичный URL объекта без сетевых вызовов
func (s *Store) PublicURL(bucket, relativePath string) string {
	return BuildPublicURL(s.baseURL, bucket, relativePath)
}

// RelativePathFromURL извлекает относительный путь из публичного URL.
// URL под настроенным базовым префиксом разбирается как {base}/{bucket}/{path};
// остальные - по сегменту "public".
func (s *Store) RelativePathFromURL(publicURL string) (string, bool) {
	u, err := url.Parse(publicURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}

	if s.base != nil && strings.EqualFold(u.Scheme, s.base.Scheme) && strings.EqualFold(u.Host, s.base.Host) {
		basePath := strings.TrimSuffix(s.base.EscapedPath(), "/")
		if rest, ok := strings.CutPrefix(u.EscapedPath(), basePath+"/"); ok {
			return objectPath(strings.Split(rest, "/"))
		}
	}
	return relativeFromMarker(u)
}

// BuildPublicURL возвращает {baseURL}/{bucket}/{relativePath}; каждый сегмент экранируется
func BuildPublicURL(baseURL, bucket, relativePath string) string {
	segments := strings.Split(strings.TrimPrefix(relativePath, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + url.PathEscape(bucket) + "/" + strings.Join(segments, "/")
}

// RelativePath находит сегмент "public" в пути URL и возвращает все, что идет после
// следующего за ним сегмента (бакета). Для URL другой формы возвращает false.
func RelativePath(publicURL string) (string, bool) {
	u, err := url.Parse(publicURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	return relativeFromMarker(u)
}

func relativeFromMarker(u *url.URL) (string, bool) {
	parts := strings.Split(u.EscapedPath(), "/")
	for i, p := range parts {
		if p == publicMarker {
			return objectPath(parts[i+1:])
		}
	}
	return "", false
}

// objectPath принимает экранированные сегменты {bucket}/{path...} и возвращает
// раскодированный путь объекта без бакета
func objectPath(escaped []string) (string, bool) {
	if len(escaped) < 2 || escaped[0] == "" {
		return "", false
	}

	segments := make([]string, 0, len(escaped)-1)
	for _, seg := range escaped[1:] {
		decoded, err := url.PathUnescape(seg)
		if err != nil {
			return "", false
		}
		segments = append(segments, decoded)
	}

	rel := strings.Join(segments, "/")
	if rel == "" || strings.HasSuffix(rel, "/") {
		return "", false
	}
	return rel, true
}

func isNotFound(err error) bool {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NotFound":
		return true
	}
	return false
}
