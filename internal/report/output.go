package report

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/storage"
)

// OpenFileOrGSWriter opens a local file, or a Cloud Storage object for gs://bucket/path destinations.
func OpenFileOrGSWriter(ctx context.Context, f string) (io.WriteCloser, error) {
	u, err := url.Parse(f)
	if err != nil {
		return nil, err
	}
	var w io.WriteCloser
	switch u.Scheme {
	case "gs":
		gsClient, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		bucket := gsClient.Bucket(u.Host)
		// URL path has leading slash, but GS expects path relative to bucket.
		path := strings.TrimPrefix(u.Path, "/")
		obj := bucket.Object(path)
		ow := obj.NewWriter(ctx)
		ow.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		w = &gsWriter{Writer: ow, client: gsClient}

	case "file":
		fallthrough
	case "":
		w, err = os.Create(u.Path)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unable to determine how to open '%s'", f)
	}

	return w, nil
}

// gsWriter closes the storage client once the object is committed.
type gsWriter struct {
	*storage.Writer
	client *storage.Client
}

func (w *gsWriter) Close() error {
	err := w.Writer.Close()
	if cerr := w.client.Close(); err == nil {
		err = cerr
	}
	return err
}

// OpenFileOrGSReader opens a local file, or a Cloud Storage object for gs://bucket/path sources.
func OpenFileOrGSReader(ctx context.Context, f string) (io.ReadCloser, error) {
	u, err := url.Parse(f)
	if err != nil {
		return nil, err
	}
	var r io.ReadCloser
	switch u.Scheme {
	case "gs":
		gsClient, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		obj := gsClient.Bucket(u.Host).Object(strings.TrimPrefix(u.Path, "/"))
		r, err = obj.NewReader(ctx)
		if err != nil {
			gsClient.Close()
			return nil, err
		}

	case "file":
		fallthrough
	case "":
		r, err = os.Open(u.Path)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unable to determine how to open '%s'", f)
	}

	return r, nil
}
