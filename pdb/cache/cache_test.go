package cache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
)

const someBody = "HEADER    HYDROLASE                               15-MAY-92   1ABC\nEND\n"

// fakeS3 answers the handful of S3 calls we make, keeping objects in a map.
type fakeS3 struct {
	mu    sync.Mutex
	state map[string][]byte
}

func newFakeS3() *fakeS3 { return &fakeS3{state: make(map[string][]byte)} }

func reply(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": {"application/xml"}},
	}
}

func (f *fakeS3) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	parts := strings.SplitN(strings.TrimPrefix(req.URL.Path, "/"), "/", 2)
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}
	if req.Method == http.MethodGet && strings.Contains(req.URL.RawQuery, "list-type=2") {
		prefix := req.URL.Query().Get("prefix")
		var keys []string
		for k := range f.state {
			if strings.HasPrefix(k, prefix) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		var b strings.Builder
		b.WriteString(`<?xml version="1.0"?><ListBucketResult><IsTruncated>false</IsTruncated>`)
		for _, k := range keys {
			fmt.Fprintf(&b, "<Contents><Key>%s</Key><Size>%d</Size><LastModified>2024-01-01T00:00:00Z</LastModified></Contents>",
				k, len(f.state[k]))
		}
		b.WriteString("</ListBucketResult>")
		return reply(http.StatusOK, b.String()), nil
	}
	switch req.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(req.Body)
		if dec, ok := unchunk(body); ok {
			body = dec
		}
		f.state[key] = body
		return reply(http.StatusOK, ""), nil
	case http.MethodGet:
		if b, ok := f.state[key]; ok {
			r := reply(http.StatusOK, string(b))
			r.Header.Set("Content-Length", strconv.Itoa(len(b)))
			return r, nil
		}
		return reply(http.StatusNotFound,
			"<Error><Code>NoSuchKey</Code><Message>no such key</Message></Error>"), nil
	}
	return reply(http.StatusNotImplemented, ""), nil
}

// unchunk undoes a single chunk of aws-chunked encoding:
// <hex>\r\n<body>\r\n0\r\n...
func unchunk(b []byte) ([]byte, bool) {
	hdr, rest, ok := bytes.Cut(b, []byte("\r\n"))
	if !ok {
		return nil, false
	}
	hdr, _, _ = bytes.Cut(hdr, []byte(";"))
	n, err := strconv.ParseInt(string(hdr), 16, 64)
	if err != nil || int64(len(rest)) < n+2 {
		return nil, false
	}
	if !bytes.HasPrefix(rest[n:], []byte("\r\n0")) {
		return nil, false
	}
	return rest[:n], true
}

func newTestS3(t *testing.T, prefix string) (*S3, *fakeS3) {
	t.Helper()
	fake := newFakeS3()
	s, err := NewS3(context.Background(), S3Config{
		Bucket:          "pdb-bucket",
		Endpoint:        "https://mock.s3.local",
		PathStyle:       true,
		Prefix:          prefix,
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
		HTTPClient:      &http.Client{Transport: fake},
	})
	if err != nil {
		t.Fatal("NewS3:", err)
	}
	return s, fake
}

// exercise runs the same checks on each backend.
func exercise(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	if _, err := s.Get(ctx, "1abc"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("%s: empty store Get gave %v, want ErrNotFound", s.Driver(), err)
	}
	if err := s.Put(ctx, "1abc", []byte(someBody)); err != nil {
		t.Fatalf("%s: Put: %v", s.Driver(), err)
	}
	if err := s.Put(ctx, "2XYZ", []byte("END\n")); err != nil {
		t.Fatalf("%s: Put: %v", s.Driver(), err)
	}
	b, err := s.Get(ctx, "1ABC")
	if err != nil {
		t.Fatalf("%s: Get after Put: %v", s.Driver(), err)
	}
	if string(b) != someBody {
		t.Errorf("%s: got %q want %q", s.Driver(), b, someBody)
	}
	if err := s.Put(ctx, "2xyz", []byte("END   \n")); err != nil {
		t.Fatalf("%s: overwrite: %v", s.Driver(), err)
	}
	if b, _ := s.Get(ctx, "2xyz"); string(b) != "END   \n" {
		t.Errorf("%s: overwrite not seen, got %q", s.Driver(), b)
	}
	ids, err := s.List(ctx)
	if err != nil {
		t.Fatalf("%s: List: %v", s.Driver(), err)
	}
	if strings.Join(ids, ",") != "1ABC,2XYZ" {
		t.Errorf("%s: List gave %v", s.Driver(), ids)
	}
	if err := s.Put(ctx, "../x", nil); !errors.Is(err, ErrBadKey) {
		t.Errorf("%s: bad key gave %v", s.Driver(), err)
	}
}

func TestMemory(t *testing.T) {
	exercise(t, NewMemory())
}

func TestFilesystem(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFilesystem(filepath.Join(dir, "sub"))
	if err != nil {
		t.Fatal(err)
	}
	exercise(t, s)
	p, _ := s.Path("1abc")
	if filepath.Base(p) != "1ABC.pdb" {
		t.Errorf("path %s", p)
	}
}

func TestSqlite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "c.db")
	s, err := NewSqlite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	exercise(t, s)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	s, err = NewSqlite(ctx, path) // entries survive a reopen
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if b, err := s.Get(ctx, "1ABC"); err != nil || string(b) != someBody {
		t.Errorf("after reopen got %q, %v", b, err)
	}
}

func TestS3(t *testing.T) {
	s, fake := newTestS3(t, "cache/")
	exercise(t, s)
	if _, ok := fake.state["cache/1ABC.pdb"]; !ok {
		t.Errorf("object key not as expected, have %v", fake.state)
	}
}

func TestNewS3NoBucket(t *testing.T) {
	if _, err := NewS3(context.Background(), S3Config{}); err == nil {
		t.Error("no error without a bucket")
	}
}

func TestConfigFromEnv(t *testing.T) {
	for _, v := range []string{"PDBTOOLS_CACHE_DRIVER", "PDBTOOLS_CACHE_DIR", "PDBTOOLS_CACHE_DB"} {
		t.Setenv(v, "")
	}
	cfg := ConfigFromEnv()
	if cfg.Driver != DriverFilesystem || cfg.Dir != "." || cfg.DBPath != "pdbcache.db" {
		t.Errorf("defaults wrong: %+v", cfg)
	}
	t.Setenv("PDBTOOLS_CACHE_DRIVER", "s3")
	t.Setenv("PDBTOOLS_S3_BUCKET", "b")
	t.Setenv("PDBTOOLS_S3_PATH_STYLE", "TRUE")
	cfg = ConfigFromEnv()
	if cfg.Driver != DriverS3 || cfg.S3.Bucket != "b" || !cfg.S3.PathStyle {
		t.Errorf("s3 settings wrong: %+v", cfg)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	for _, c := range []struct {
		cfg  Config
		want Driver
	}{
		{Config{Dir: dir}, DriverFilesystem},
		{Config{Driver: DriverMemory}, DriverMemory},
		{Config{Driver: DriverSqlite, DBPath: filepath.Join(dir, "x.db")}, DriverSqlite},
		{Config{Driver: DriverS3, S3: S3Config{Bucket: "b", AccessKeyID: "a", SecretAccessKey: "s"}}, DriverS3},
	} {
		s, err := Open(ctx, c.cfg)
		if err != nil {
			t.Errorf("Open %+v: %v", c.cfg, err)
			continue
		}
		if s.Driver() != c.want {
			t.Errorf("got driver %s want %s", s.Driver(), c.want)
		}
		s.Close()
	}
	if _, err := Open(ctx, Config{Driver: "tape"}); err == nil {
		t.Error("unknown driver accepted")
	}
}

func TestKey(t *testing.T) {
	for _, c := range []struct {
		in, want string
		ok       bool
	}{
		{"1abc", "1ABC", true},
		{" 4hhb ", "4HHB", true},
		{"", "", false},
		{"a/b", "", false},
		{"..", "", false},
	} {
		got, err := Key(c.in)
		if (err == nil) != c.ok || got != c.want {
			t.Errorf("Key(%q) = %q, %v", c.in, got, err)
		}
	}
}
