package output

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "letters.pdf")

	for _, content := range []string{"%PDF-first", "%PDF-second"} {
		if err := WriteFile(path, []byte(content)); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != content {
			t.Errorf("content = %q, want %q", got, content)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "letters.pdf")
	if err := WriteFile(path, []byte("x")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestCreateFileRefusesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "letters.pdf")
	if err := CreateFile(path, []byte("one")); err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	err := CreateFile(path, []byte("two"))
	if !errors.Is(err, ErrExists) {
		t.Fatalf("err = %v, want ErrExists", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "one" {
		t.Errorf("existing file changed to %q", got)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

type fakeS3 struct {
	input *s3aws.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3aws.PutObjectInput, _ ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3aws.PutObjectOutput{}, nil
}

func TestS3Publish(t *testing.T) {
	client := &fakeS3{}
	pub, err := NewS3(context.Background(), S3Config{Bucket: "mail", Region: "eu-central-1", Prefix: "runs/"}, WithS3Client(client))
	if err != nil {
		t.Fatalf("NewS3: %v", err)
	}
	if err := pub.Publish(context.Background(), "letters.pdf", []byte("%PDF-1.3")); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	in := client.input
	if aws.ToString(in.Bucket) != "mail" || aws.ToString(in.Key) != "runs/letters.pdf" {
		t.Errorf("bucket/key = %s/%s", aws.ToString(in.Bucket), aws.ToString(in.Key))
	}
	if aws.ToString(in.ContentType) != ContentType {
		t.Errorf("content type = %q", aws.ToString(in.ContentType))
	}
	if string(client.body) != "%PDF-1.3" || aws.ToInt64(in.ContentLength) != 8 {
		t.Errorf("body = %q (%d)", client.body, aws.ToInt64(in.ContentLength))
	}
}

func TestS3Errors(t *testing.T) {
	if _, err := NewS3(context.Background(), S3Config{Bucket: "mail"}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("missing region: err = %v", err)
	}

	tests := []struct {
		code string
		want error
	}{
		{"AccessDenied", ErrAccessDenied},
		{"NoSuchBucket", ErrBucketNotFound},
		{"SlowDown", ErrUnavailable},
	}
	for _, tt := range tests {
		client := &fakeS3{err: &smithy.GenericAPIError{Code: tt.code, Message: "test"}}
		pub, _ := NewS3(context.Background(), S3Config{Bucket: "mail", Region: "eu-central-1"}, WithS3Client(client))
		if err := pub.Publish(context.Background(), "a.pdf", nil); !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.code, err, tt.want)
		}
	}

	client := &fakeS3{err: context.Canceled}
	pub, _ := NewS3(context.Background(), S3Config{Bucket: "mail", Region: "eu-central-1"}, WithS3Client(client))
	if err := pub.Publish(context.Background(), "a.pdf", nil); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled: err = %v", err)
	}
}
