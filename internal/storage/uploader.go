// Package storage recebe fotos enviadas pelo painel, normaliza e guarda
// no bucket.
package storage

import (
	"context"
	"errors"
	"io"
)

type Folder string

const (
	FolderBarbers  Folder = "barbeiros"
	FolderProducts Folder = "produtos"
)

// Image identifica o arquivo publicado: URL pública e chave no bucket.
type Image struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}

type Uploader interface {
	Upload(ctx context.Context, folder Folder, src io.Reader) (*Image, error)
}

var ErrUploadDisabled = errors.New("image storage is not configured")

// Disabled recusa qualquer upload. Usado quando S3 não está configurado.
type Disabled struct{}

func (Disabled) Upload(context.Context, Folder, io.Reader) (*Image, error) {
	return nil, ErrUploadDisabled
}
