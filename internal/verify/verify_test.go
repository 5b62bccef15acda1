package verify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

type memSaver struct {
	mu      sync.Mutex
	results []Result
	fail    error
}

func (m *memSaver) SaveResult(_ context.Context, r Result) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return "", m.fail
	}
	m.results = append(m.results, r)
	return fmt.Sprintf("id-%d", len(m.results)), nil
}

func reference(claimed uint32) Submission {
	return Submission{
		Player:   "alice",
		Seed:     123456789,
		MovesHex: "0x2281",
		MovesLen: 7,
		Claimed:  claimed,
	}
}

func TestVerifyOutcomes(t *testing.T) {
	svc := NewService(DefaultConfig(), nil)

	tests := []struct {
		name     string
		sub      Submission
		score    uint32
		verified bool
	}{
		{"honest claim", reference(20), 20, true},
		{"inflated claim", reference(2048), 20, false},
		{"empty log", Submission{Seed: 123456789, Claimed: 0}, 0, true},
		{"legacy variant", Submission{Variant: "tiles_legacy", Seed: 123456789, MovesHex: "2281", MovesLen: 7, Claimed: 20}, 20, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.Verify(context.Background(), tc.sub)
			if err != nil {
				t.Fatalf("Verify() error: %v", err)
			}
			if res.Score != tc.score {
				t.Errorf("Score = %d, expected %d", res.Score, tc.score)
			}
			if res.Verified != tc.verified {
				t.Errorf("Verified = %v, expected %v", res.Verified, tc.verified)
			}
			if res.ID != "" {
				t.Errorf("ID = %q, expected empty without a saver", res.ID)
			}
		})
	}
}

func TestVerifyNormalizesSubmission(t *testing.T) {
	svc := NewService(DefaultConfig(), nil)

	res, err := svc.Verify(context.Background(), Submission{Seed: 1, MovesHex: "0X2A"})
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if res.Variant != "tiles" {
		t.Errorf("Variant = %q, expected default variant", res.Variant)
	}
	if res.MovesHex != "2a" {
		t.Errorf("MovesHex = %q, expected normalized hex", res.MovesHex)
	}
}

func TestVerifyErrors(t *testing.T) {
	svc := NewService(Config{MaxMoves: 100}, nil)

	tests := []struct {
		name string
		sub  Submission
		want error
	}{
		{"bad hex", Submission{MovesHex: "zz", MovesLen: 1}, ErrInvalidMoves},
		{"odd hex", Submission{MovesHex: "228", MovesLen: 1}, ErrInvalidMoves},
		{"unknown variant", Submission{Variant: "tetris", MovesHex: "00"}, ErrUnknownVariant},
		{"too many moves", Submission{MovesHex: "00", MovesLen: 101}, ErrTooManyMoves},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Verify(context.Background(), tc.sub)
			if !errors.Is(err, tc.want) {
				t.Errorf("Verify() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestVerifyNoMoveCap(t *testing.T) {
	svc := NewService(Config{}, nil)

	res, err := svc.Verify(context.Background(), Submission{Seed: 123456789, MovesHex: "2281", MovesLen: ^uint64(0), Claimed: 20})
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if !res.Verified {
		t.Errorf("expected a short log with a huge count to replay what it holds, got score %d", res.Score)
	}
}

func TestVerifyCancelledContext(t *testing.T) {
	svc := NewService(DefaultConfig(), nil)
	saver := &memSaver{}
	svc.SetResultSaver(saver)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Verify(ctx, reference(20)); !errors.Is(err, context.Canceled) {
		t.Errorf("Verify() error = %v, expected context.Canceled", err)
	}
	if len(saver.results) != 0 {
		t.Error("cancelled verification should not be saved")
	}
}

func TestVerifySavesResults(t *testing.T) {
	svc := NewService(DefaultConfig(), nil)
	saver := &memSaver{}
	svc.SetResultSaver(saver)

	res, err := svc.Verify(context.Background(), reference(20))
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if res.ID != "id-1" {
		t.Errorf("ID = %q, expected id-1", res.ID)
	}
	if len(saver.results) != 1 || saver.results[0].Player != "alice" {
		t.Errorf("saved results = %+v", saver.results)
	}

	saver.fail = errors.New("disk full")
	res, err = svc.Verify(context.Background(), reference(20))
	if err == nil {
		t.Fatal("expected save error")
	}
	if !res.Verified {
		t.Error("result should still be returned when saving fails")
	}
}

func TestVerifyAll(t *testing.T) {
	svc := NewService(DefaultConfig(), nil)
	saver := &memSaver{}
	svc.SetResultSaver(saver)

	subs := []Submission{
		reference(20),
		reference(21),
		{MovesHex: "nothex"},
		reference(20),
	}

	items := svc.VerifyAll(context.Background(), subs, 3)
	if len(items) != len(subs) {
		t.Fatalf("got %d items, expected %d", len(items), len(subs))
	}
	for i, item := range items {
		if item.Index != i {
			t.Errorf("items[%d].Index = %d", i, item.Index)
		}
	}
	if !items[0].Result.Verified || items[1].Result.Verified {
		t.Error("verified flags out of order")
	}
	if !errors.Is(items[2].Err, ErrInvalidMoves) {
		t.Errorf("items[2].Err = %v, expected ErrInvalidMoves", items[2].Err)
	}
	if len(saver.results) != 3 {
		t.Errorf("saved %d results, expected 3", len(saver.results))
	}
}

func TestVerifyAllEmpty(t *testing.T) {
	svc := NewService(DefaultConfig(), nil)
	if items := svc.VerifyAll(context.Background(), nil, 0); len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestLoadSubmissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subs.yaml")
	content := `
- player: alice
  seed: 123456789
  moves: "2281"
  moves_len: 7
  claimed: 20
- variant: tiles_legacy
  player: bob
  seed: 18446744073709551615
  moves: "2281111111111a22c4bbbae8"
  moves_len: 47
  claimed: 224
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	subs, err := LoadSubmissions(path)
	if err != nil {
		t.Fatalf("LoadSubmissions() error: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("got %d submissions, expected 2", len(subs))
	}
	if subs[0].MovesHex != "2281" || subs[0].MovesLen != 7 || subs[0].Claimed != 20 {
		t.Errorf("subs[0] = %+v", subs[0])
	}
	if subs[1].Seed != 18446744073709551615 || subs[1].Variant != "tiles_legacy" {
		t.Errorf("subs[1] = %+v", subs[1])
	}

	if _, err := LoadSubmissions(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
