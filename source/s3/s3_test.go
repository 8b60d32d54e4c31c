package s3

import (
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type fakeAPI struct {
	lastInput *awss3.GetObjectInput
	body      string
	err       error
}

func (f *fakeAPI) GetObject(_ context.Context, params *awss3.GetObjectInput, _ ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
	f.lastInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &awss3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

func TestParse(t *testing.T) {
	c := NewClientFromAPI(&fakeAPI{}, false)

	src, err := c.Parse("my-bucket/path/to/object.bin")
	if err != nil {
		t.Fatal(err)
	}
	if src.String() != "my-bucket/path/to/object.bin" {
		t.Errorf("String() = %q", src.String())
	}
}

func TestParseBadRecords(t *testing.T) {
	c := NewClientFromAPI(&fakeAPI{}, false)
	for _, record := range []string{"", "nobucketkey", "bucket/", "/key"} {
		if _, err := c.Parse(record); err == nil {
			t.Errorf("Parse(%q): expected error", record)
		}
	}
}

func TestOpenStreamsBody(t *testing.T) {
	api := &fakeAPI{body: "object contents"}
	c := NewClientFromAPI(api, false)

	src, err := c.Parse("bucket/key")
	if err != nil {
		t.Fatal(err)
	}
	st, err := src.Open(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(st)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}
	if string(got) != "object contents" {
		t.Errorf("got %q", got)
	}

	if aws.ToString(api.lastInput.Bucket) != "bucket" {
		t.Errorf("bucket = %q", aws.ToString(api.lastInput.Bucket))
	}
	if aws.ToString(api.lastInput.Key) != "key" {
		t.Errorf("key = %q", aws.ToString(api.lastInput.Key))
	}
	if api.lastInput.RequestPayer != "" {
		t.Errorf("request payer should be unset, got %q", api.lastInput.RequestPayer)
	}
}

func TestOpenRequestPayer(t *testing.T) {
	api := &fakeAPI{body: ""}
	c := NewClientFromAPI(api, true)

	src, _ := c.Parse("bucket/key")
	st, err := src.Open(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	_ = st.Close()

	if api.lastInput.RequestPayer != types.RequestPayerRequester {
		t.Errorf("request payer = %q, want requester", api.lastInput.RequestPayer)
	}
}

func TestOpenFetchError(t *testing.T) {
	api := &fakeAPI{err: stderrors.New("no such key")}
	c := NewClientFromAPI(api, false)

	src, _ := c.Parse("bucket/missing")
	if _, err := src.Open(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{AccessKey: "AKIA", SecretKey: ""}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for access key without secret")
	}
	cfg = &Config{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if cfg.Region != DefaultRegion {
		t.Errorf("region = %q, want %q", cfg.Region, DefaultRegion)
	}
}
