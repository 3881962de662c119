package blobstore

import "errors"

var (
	ErrObjectNotFound     = errors.New("blobstore: object not found")
	ErrUnsupportedType    = errors.New("blobstore: unsupported content type")
	ErrStorageUnavailable = errors.New("blobstore: storage request failed")
)
