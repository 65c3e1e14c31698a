package recommend

import (
	"context"
	"errors"
	"testing"
)

type payload struct {
	Value string
}

func TestCacheShortCircuitsOnMatchingFingerprint(t *testing.T) {
	c := NewCache()
	fp := Fingerprint(map[string]string{"region": "Europe"})

	calls := 0
	fetch := func(context.Context) (*payload, error) {
		calls++
		return &payload{Value: "fresh"}, nil
	}

	out, cached, err := getOrRefresh(context.Background(), c, "test", fp, fetch)
	if err != nil || cached || out.Value != "fresh" {
		t.Fatalf("first call: out=%+v cached=%v err=%v", out, cached, err)
	}

	out, cached, err = getOrRefresh(context.Background(), c, "test", fp, fetch)
	if err != nil || !cached || out.Value != "fresh" {
		t.Fatalf("second call: out=%+v cached=%v err=%v", out, cached, err)
	}

	if calls != 1 {
		t.Fatalf("fetch invoked %d times, want 1", calls)
	}
}

func TestCacheRefetchesOnFingerprintChange(t *testing.T) {
	c := NewCache()

	calls := 0
	fetch := func(context.Context) (*payload, error) {
		calls++
		return &payload{}, nil
	}

	if _, _, err := getOrRefresh(context.Background(), c, "test", "fp-1", fetch); err != nil {
		t.Fatal(err)
	}
	if _, _, err := getOrRefresh(context.Background(), c, "test", "fp-2", fetch); err != nil {
		t.Fatal(err)
	}

	if calls != 2 {
		t.Fatalf("fetch invoked %d times, want 2", calls)
	}
}

// A failed fetch must not poison the entry: the next call with the same
// inputs retries instead of returning a cached failure.
func TestCacheFailureIsNotStored(t *testing.T) {
	c := NewCache()
	boom := errors.New("provider down")

	calls := 0
	failing := func(context.Context) (*payload, error) {
		calls++
		return nil, boom
	}

	if _, _, err := getOrRefresh(context.Background(), c, "test", "fp", failing); !errors.Is(err, boom) {
		t.Fatalf("expected propagated error, got %v", err)
	}

	out, cached, err := getOrRefresh(context.Background(), c, "test", "fp",
		func(context.Context) (*payload, error) {
			calls++
			return &payload{Value: "recovered"}, nil
		})
	if err != nil || cached || out.Value != "recovered" {
		t.Fatalf("retry after failure: out=%+v cached=%v err=%v", out, cached, err)
	}

	if calls != 2 {
		t.Fatalf("fetch invoked %d times, want 2", calls)
	}
}

func TestCacheKeysAreIndependent(t *testing.T) {
	c := NewCache()

	if _, _, err := getOrRefresh(context.Background(), c, "a", "fp",
		func(context.Context) (*payload, error) { return &payload{Value: "a"}, nil }); err != nil {
		t.Fatal(err)
	}

	out, cached, err := getOrRefresh(context.Background(), c, "b", "fp",
		func(context.Context) (*payload, error) { return &payload{Value: "b"}, nil })
	if err != nil || cached || out.Value != "b" {
		t.Fatalf("keys not independent: out=%+v cached=%v err=%v", out, cached, err)
	}
}

func TestFingerprintIsStructural(t *testing.T) {
	type inputs struct {
		Region     string   `json:"region"`
		Activities []string `json:"activities"`
	}

	a := Fingerprint(inputs{Region: "Europe", Activities: []string{"Consulting"}})
	b := Fingerprint(inputs{Region: "Europe", Activities: []string{"Consulting"}})
	if a != b {
		t.Fatalf("equal inputs produced different fingerprints: %q vs %q", a, b)
	}

	c := Fingerprint(inputs{Region: "Europe", Activities: []string{"Trading"}})
	if a == c {
		t.Fatalf("different inputs produced equal fingerprints")
	}
}
