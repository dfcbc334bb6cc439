package services

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHTTPClient struct{}

func (failingHTTPClient) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("dial blocked")
}

type recordingFile struct {
	*bytes.Reader
	closed bool
}

func (f *recordingFile) Close() error {
	f.closed = true
	return nil
}

func TestUploadFileClosesSourceOnFailure(t *testing.T) {
	svc := &S3Service{
		BucketName: "assets",
		Client: s3.New(s3.Options{
			Region:     "us-east-1",
			HTTPClient: failingHTTPClient{},
		}),
	}

	file := &recordingFile{Reader: bytes.NewReader([]byte("png-bytes"))}
	header := &multipart.FileHeader{
		Filename: "banner.png",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}

	_, err := svc.UploadFile(file, header)
	require.Error(t, err)
	assert.True(t, file.closed)
}
