package stores

import (
	"EchoVoice/pkg/util"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tencentyun/cos-go-sdk-v5"
)

// CosStore backs the reference bucket with Tencent COS. Selected with
// STORAGE_DRIVER=cos.
type CosStore struct {
	BucketURL string `env:"COS_BUCKET_URL"`
	SecretID  string `env:"COS_SECRET_ID"`
	SecretKey string `env:"COS_SECRET_KEY"`
}

func NewCosStore() Store {
	return &CosStore{
		BucketURL: util.GetEnv("COS_BUCKET_URL"),
		SecretID:  util.GetEnv("COS_SECRET_ID"),
		SecretKey: util.GetEnv("COS_SECRET_KEY"),
	}
}

func (s *CosStore) client() (*cos.Client, error) {
	u, err := url.Parse(s.BucketURL)
	if err != nil {
		return nil, err
	}
	return cos.NewClient(&cos.BaseURL{BucketURL: u}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  s.SecretID,
			SecretKey: s.SecretKey,
		},
	}), nil
}

func (s *CosStore) Read(key string) (io.ReadCloser, int64, error) {
	cli, err := s.client()
	if err != nil {
		return nil, 0, err
	}
	resp, err := cli.Object.Get(context.Background(), key, nil)
	if err != nil {
		return nil, 0, err
	}
	return resp.Body, resp.ContentLength, nil
}

func (s *CosStore) Write(key string, r io.Reader, size int64, contentType string) error {
	cli, err := s.client()
	if err != nil {
		return err
	}
	opt := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   contentType,
			ContentLength: size,
		},
	}
	_, err = cli.Object.Put(context.Background(), key, r, opt)
	return err
}

func (s *CosStore) Delete(key string) error {
	cli, err := s.client()
	if err != nil {
		return err
	}
	_, err = cli.Object.Delete(context.Background(), key)
	return err
}

func (s *CosStore) Exists(key string) (bool, error) {
	cli, err := s.client()
	if err != nil {
		return false, err
	}
	return cli.Object.IsExist(context.Background(), key)
}

func (s *CosStore) List(prefix string) ([]ObjectInfo, error) {
	cli, err := s.client()
	if err != nil {
		return nil, err
	}

	var out []ObjectInfo
	marker := ""
	for {
		res, _, err := cli.Bucket.Get(context.Background(), &cos.BucketGetOptions{
			Prefix:  prefix,
			Marker:  marker,
			MaxKeys: 1000,
		})
		if err != nil {
			return nil, err
		}
		for _, obj := range res.Contents {
			modified, _ := time.Parse(time.RFC3339, obj.LastModified)
			out = append(out, ObjectInfo{Key: obj.Key, Size: obj.Size, LastModified: modified})
		}
		if !res.IsTruncated {
			break
		}
		marker = res.NextMarker
	}
	return out, nil
}

func (s *CosStore) PublicURL(key string) string {
	return strings.TrimRight(s.BucketURL, "/") + "/" + key
}
