package storage

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-admin/internal/config"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalize_ProducesSquareWebp(t *testing.T) {
	out, err := Normalize(bytes.NewReader(pngBytes(t, 640, 320)))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
}

func TestNormalize_RejectsGarbage(t *testing.T) {
	_, err := Normalize(strings.NewReader("não é imagem"))
	assert.Error(t, err)
}

// pngHeader devolve só a assinatura e o IHDR de um PNG w x h RGBA, o
// suficiente para image.DecodeConfig.
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], w)
	binary.BigEndian.PutUint32(ihdr[4:8], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // RGBA

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestNormalize_RejectsHugeDimensionsBeforeDecoding(t *testing.T) {
	_, err := Normalize(bytes.NewReader(pngHeader(20000, 20000)))
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = Normalize(bytes.NewReader(pngHeader(100, 100)))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrImageTooLarge)
}

func TestCenterSquare(t *testing.T) {
	assert.Equal(t, image.Rect(160, 0, 480, 320), centerSquare(image.Rect(0, 0, 640, 320)))
	assert.Equal(t, image.Rect(0, 50, 100, 150), centerSquare(image.Rect(0, 0, 100, 200)))
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Uploader_Upload(t *testing.T) {
	p := &fakePutter{}
	u := newS3Uploader(p, "fotos", "https://cdn.barber.com/")
	u.newID = func() string { return "abc" }

	img, err := u.Upload(context.Background(), FolderBarbers, bytes.NewReader(pngBytes(t, 50, 50)))
	require.NoError(t, err)

	assert.Equal(t, "barbeiros/abc.webp", img.ID)
	assert.Equal(t, "https://cdn.barber.com/barbeiros/abc.webp", img.URL)
	assert.Equal(t, "fotos", aws.ToString(p.input.Bucket))
	assert.Equal(t, "image/webp", aws.ToString(p.input.ContentType))
	assert.NotEmpty(t, p.body)
}

func TestS3Uploader_PutFailure(t *testing.T) {
	u := newS3Uploader(&fakePutter{err: errors.New("timeout")}, "fotos", "https://cdn")

	_, err := u.Upload(context.Background(), FolderProducts, bytes.NewReader(pngBytes(t, 10, 10)))
	assert.Error(t, err)
}

func TestFromConfig(t *testing.T) {
	_, disabled := FromConfig(config.S3Config{}).(Disabled)
	assert.True(t, disabled)

	_, err := Disabled{}.Upload(context.Background(), FolderBarbers, nil)
	assert.ErrorIs(t, err, ErrUploadDisabled)

	up := FromConfig(config.S3Config{Bucket: "b", Region: "us-east-1", AccessKeyID: "k", SecretAccessKey: "s", Endpoint: "http://minio:9000"})
	s3u, ok := up.(*S3Uploader)
	require.True(t, ok)
	assert.Equal(t, "http://minio:9000/b", s3u.publicBase)
}
