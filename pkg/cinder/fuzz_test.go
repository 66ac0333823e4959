// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cinder

import (
	"math/rand"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

// getFuzzRounds returns the number of fuzz rounds from FUZZ_ROUNDS env var, default 1000
func getFuzzRounds() int {
	if envRounds := os.Getenv("FUZZ_ROUNDS"); envRounds != "" {
		if rounds, err := strconv.Atoi(envRounds); err == nil && rounds > 0 {
			return rounds
		}
	}
	return 1000
}

// getFuzzSeed returns the seed from FUZZ_SEED env var, or generates one from current time
func getFuzzSeed() int64 {
	if envSeed := os.Getenv("FUZZ_SEED"); envSeed != "" {
		if seed, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
			return seed
		}
	}
	return time.Now().UnixNano()
}

// newFuzzRng creates a new random number generator and logs the seed for reproducibility
func newFuzzRng(t *testing.T) *rand.Rand {
	seed := getFuzzSeed()
	t.Logf("Seed: %d (reproduce with FUZZ_SEED=%d)", seed, seed)
	return rand.New(rand.NewSource(seed))
}

// ============================================================
// Interpreter Fuzz Tests
// ============================================================

// TestFuzzInterpreter_RandomBytes throws arbitrary bytes at the interpreter.
// Nothing may panic, and every Execute must leave the interpreter empty.
func TestFuzzInterpreter_RandomBytes(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds()

	it := NewInterpreter(32, 8)
	it.Registry().RegisterName("noop", Variadic, func(*Tokenizer) {})

	for round := 0; round < rounds; round++ {
		n := rng.Intn(64)
		for i := 0; i < n; i++ {
			it.Feed(byte(rng.Intn(256)))
		}
		if it.Ready() || rng.Intn(4) == 0 {
			it.Execute()
			if it.Ready() || it.Overflowed() {
				t.Fatalf("round %d: interpreter not reset after execute", round)
			}
		}
	}
}

// TestFuzzInterpreter_RandomLines feeds well-formed random lines and checks
// that the registered variadic handler always sees a consistent field count.
func TestFuzzInterpreter_RandomLines(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds()

	it := NewInterpreter(0, 0)
	var handlerCount int
	it.Registry().RegisterName("fuzz", Variadic, func(tok *Tokenizer) {
		handlerCount = tok.Count()
	})

	for round := 0; round < rounds; round++ {
		nParams := rng.Intn(8)
		parts := []string{"fuzz"}
		for i := 0; i < nParams; i++ {
			parts = append(parts, strconv.Itoa(rng.Int()))
		}
		line := strings.Join(parts, strings.Repeat(" ", 1+rng.Intn(3)))
		if len(line) >= DefaultLineSize-1 {
			continue
		}

		handlerCount = -1
		for i := 0; i < len(line); i++ {
			if err := it.Feed(line[i]); err != nil {
				t.Fatalf("round %d: feed failed: %v", round, err)
			}
		}
		it.Feed(Terminator)
		if err := it.Execute(); err != nil {
			t.Fatalf("round %d: execute failed for %q: %v", round, line, err)
		}
		if handlerCount != nParams+1 {
			t.Fatalf("round %d: expected %d fields, handler saw %d", round, nParams+1, handlerCount)
		}
	}
}

// ============================================================
// Tokenizer Fuzz Tests
// ============================================================

// TestFuzzTokenizer_RoundTrip checks the delimit/restore round-trip law on
// random printable lines.
func TestFuzzTokenizer_RoundTrip(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds()

	charset := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789?*._- \t"
	for round := 0; round < rounds; round++ {
		n := rng.Intn(80)
		line := make([]byte, n)
		for i := range line {
			line[i] = charset[rng.Intn(len(charset))]
		}

		tok := NewTokenizer(line)
		count := tok.Count()
		fields := make([]string, count)
		for i := range fields {
			var ok bool
			fields[i], ok = tok.Field(i)
			if !ok {
				t.Fatalf("round %d: field %d missing below count %d", round, i, count)
			}
			if strings.ContainsAny(fields[i], " \t\x00") {
				t.Fatalf("round %d: field %d contains whitespace: %q", round, i, fields[i])
			}
		}
		if _, ok := tok.Field(count); ok {
			t.Fatalf("round %d: field at count %d should be absent", round, count)
		}

		tok.Field(WholeLine)

		if tok.Count() != count {
			t.Fatalf("round %d: count changed after restore: %d != %d", round, tok.Count(), count)
		}
		for i, want := range fields {
			if got, _ := tok.Field(i); got != want {
				t.Fatalf("round %d: field %d changed after round trip: %q != %q", round, i, got, want)
			}
		}
	}
}

// ============================================================
// Checksum Fuzz Tests
// ============================================================

// TestFuzzChecksum_CaseFolding verifies the case-insensitivity law on random
// ASCII names.
func TestFuzzChecksum_CaseFolding(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds()

	for round := 0; round < rounds; round++ {
		n := 1 + rng.Intn(16)
		name := make([]byte, n)
		for i := range name {
			name[i] = byte('a' + rng.Intn(26))
		}

		lower := string(name)
		mixed := []byte(lower)
		for i := range mixed {
			if rng.Intn(2) == 0 {
				mixed[i] -= 'a' - 'A'
			}
		}

		if Checksum(lower) != Checksum(string(mixed)) {
			t.Fatalf("round %d: case folding broken for %q vs %q", round, lower, mixed)
		}
	}
}

// ============================================================
// Replay Fuzz Tests
// ============================================================

// TestFuzzStartup_StoreReplay stores random sequences and replays them,
// checking the executed sub-command count.
func TestFuzzStartup_StoreReplay(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds() / 10

	for round := 0; round < rounds; round++ {
		nSubs := 1 + rng.Intn(5)
		subs := make([]string, nSubs)
		for i := range subs {
			subs[i] = "mark " + strconv.Itoa(i)
		}
		text := strings.Join(subs, ";")

		s := NewStartup(NewMemStorage(0))
		if err := s.Store(text, false); err != nil {
			t.Fatalf("round %d: store failed: %v", round, err)
		}

		it := NewInterpreter(0, 0)
		executed := 0
		it.Registry().RegisterName("mark", 1, func(*Tokenizer) { executed++ })

		if err := s.Replay(it); err != nil {
			t.Fatalf("round %d: replay failed: %v", round, err)
		}
		if executed != nSubs {
			t.Fatalf("round %d: expected %d executions, got %d", round, nSubs, executed)
		}
	}
}
