package identifier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/akademik/internal/pkg/apperrors"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(map[string]string{
		"teknik_informatika":       "10",
		"sistem_informasi":         "20",
		"ilmu_komputer":            "30",
		"rekayasa_perangkat_lunak": "40",
		"cybersecurity":            "50",
	})
	require.NoError(t, err)
	return c
}

// memorySource persists allocated identifiers the way the students table would.
type memorySource struct {
	mu  sync.Mutex
	ids map[string]bool
}

func newMemorySource() *memorySource {
	return &memorySource{ids: make(map[string]bool)}
}

func (m *memorySource) MaxSequence(_ context.Context, year int, programCode string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	maxSeq := 0
	for id := range m.ids {
		parsed, err := Parse(id)
		if err != nil {
			return 0, err
		}
		if parsed.Year == year && parsed.ProgramCode == programCode && parsed.Sequence > maxSeq {
			maxSeq = parsed.Sequence
		}
	}
	return maxSeq, nil
}

func (m *memorySource) insert(id StudentID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ids[id.String()] {
		return false
	}
	m.ids[id.String()] = true
	return true
}

func TestCatalog_ResolveNormalizes(t *testing.T) {
	c := testCatalog(t)

	for _, name := range []string{"teknik_informatika", "Teknik Informatika", "TEKNIK INFORMATIKA", "  teknik informatika  ", "Teknik_Informatika"} {
		code, err := c.Resolve(name)
		require.NoError(t, err, name)
		assert.Equal(t, "10", code, name)
	}

	name, code, err := c.Canonical("Rekayasa Perangkat Lunak")
	require.NoError(t, err)
	assert.Equal(t, "rekayasa_perangkat_lunak", name)
	assert.Equal(t, "40", code)
}

func TestCatalog_UnknownProgram(t *testing.T) {
	c := testCatalog(t)

	for _, name := range []string{"", "kedokteran", "teknik-informatika", "teknikinformatika"} {
		_, err := c.Resolve(name)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, apperrors.ErrUnknownProgram), name)
	}

	_, err := c.Resolve("kedokteran")
	assert.Contains(t, err.Error(), "cybersecurity, ilmu_komputer, rekayasa_perangkat_lunak, sistem_informasi, teknik_informatika")
}

func TestNewCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		programs map[string]string
	}{
		{"empty", map[string]string{}},
		{"short code", map[string]string{"a": "1"}},
		{"letters", map[string]string{"a": "ab"}},
		{"duplicate code", map[string]string{"a": "10", "b": "10"}},
		{"duplicate after normalize", map[string]string{"Data Science": "60", "data_science": "61"}},
		{"blank name", map[string]string{"  ": "60"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.programs)
			assert.Error(t, err)
		})
	}
}

func TestCatalog_ProgramsOrderedByCode(t *testing.T) {
	programs := testCatalog(t).Programs()
	require.Len(t, programs, 5)
	assert.Equal(t, Program{Name: "teknik_informatika", Code: "10"}, programs[0])
	assert.Equal(t, Program{Name: "cybersecurity", Code: "50"}, programs[4])
}

func TestValidateFormatAndParse(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
		want  StudentID
	}{
		{"2024-10-0001", true, StudentID{2024, "10", 1}},
		{"2000-50-9999", true, StudentID{2000, "50", 9999}},
		{"0000-00-0000", true, StudentID{0, "00", 0}},
		{"2024-10-001", false, StudentID{}},
		{"2024-1-0001", false, StudentID{}},
		{"24-10-0001", false, StudentID{}},
		{"2024-10-00001", false, StudentID{}},
		{"2024-10", false, StudentID{}},
		{"2024-10-0001-1", false, StudentID{}},
		{"2024-ab-0001", false, StudentID{}},
		{"2024-10-+001", false, StudentID{}},
		{"-024-10-0001", false, StudentID{}},
		{"2024_10_0001", false, StudentID{}},
		{"", false, StudentID{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateFormat(tt.in))

			got, err := Parse(tt.in)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.in, got.String())
				return
			}
			assert.True(t, errors.Is(err, apperrors.ErrMalformedIdentifier))
		})
	}
}

func TestAllocate_SequentialWithinScope(t *testing.T) {
	a := NewAllocator(testCatalog(t))
	src := newMemorySource()
	ctx := context.Background()

	var got []string
	for i := 0; i < 3; i++ {
		id, err := a.Allocate(ctx, src, 2024, "teknik_informatika")
		require.NoError(t, err)
		require.True(t, src.insert(id))
		got = append(got, id.String())
	}

	assert.Equal(t, []string{"2024-10-0001", "2024-10-0002", "2024-10-0003"}, got)
}

func TestAllocate_ScopesAreIndependent(t *testing.T) {
	a := NewAllocator(testCatalog(t))
	src := newMemorySource()
	ctx := context.Background()

	first, err := a.Allocate(ctx, src, 2024, "teknik_informatika")
	require.NoError(t, err)
	require.True(t, src.insert(first))

	otherYear, err := a.Allocate(ctx, src, 2023, "teknik_informatika")
	require.NoError(t, err)
	assert.Equal(t, "2023-10-0001", otherYear.String())

	otherProgram, err := a.Allocate(ctx, src, 2024, "Sistem Informasi")
	require.NoError(t, err)
	assert.Equal(t, "2024-20-0001", otherProgram.String())
}

func TestAllocate_RoundTripsThroughParse(t *testing.T) {
	c := testCatalog(t)
	a := NewAllocator(c)

	for _, p := range c.Programs() {
		id, err := a.Allocate(context.Background(), newMemorySource(), 2031, p.Name)
		require.NoError(t, err)

		parsed, err := Parse(id.String())
		require.NoError(t, err)
		assert.Equal(t, StudentID{Year: 2031, ProgramCode: p.Code, Sequence: 1}, parsed)
	}
}

func TestAllocate_Errors(t *testing.T) {
	a := NewAllocator(testCatalog(t))
	ctx := context.Background()
	empty := newMemorySource()

	_, err := a.Allocate(ctx, empty, 1999, "teknik_informatika")
	assert.True(t, errors.Is(err, apperrors.ErrRangeViolation))

	_, err = a.Allocate(ctx, empty, 2101, "teknik_informatika")
	assert.True(t, errors.Is(err, apperrors.ErrRangeViolation))

	_, err = a.Allocate(ctx, empty, 2024, "kedokteran")
	assert.True(t, errors.Is(err, apperrors.ErrUnknownProgram))

	full := SequenceSourceFunc(func(context.Context, int, string) (int, error) { return MaxSequence, nil })
	_, err = a.Allocate(ctx, full, 2024, "teknik_informatika")
	assert.True(t, errors.Is(err, apperrors.ErrCapacityExceeded))

	last := SequenceSourceFunc(func(context.Context, int, string) (int, error) { return MaxSequence - 1, nil })
	id, err := a.Allocate(ctx, last, 2024, "teknik_informatika")
	require.NoError(t, err)
	assert.Equal(t, "2024-10-9999", id.String())

	boom := errors.New("connection reset")
	failing := SequenceSourceFunc(func(context.Context, int, string) (int, error) { return 0, boom })
	_, err = a.Allocate(ctx, failing, 2024, "teknik_informatika")
	assert.True(t, errors.Is(err, boom))
}

func TestScopeLocks_SerializesConcurrentAllocation(t *testing.T) {
	a := NewAllocator(testCatalog(t))
	locks := NewScopeLocks()
	src := newMemorySource()
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locks.Lock(ctx, 2024, "10")
			if err != nil {
				errs <- err
				return
			}
			defer unlock()

			id, err := a.Allocate(ctx, src, 2024, "teknik_informatika")
			if err != nil {
				errs <- err
				return
			}
			if !src.insert(id) {
				errs <- errors.New("duplicate identifier " + id.String())
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
	assert.Len(t, src.ids, workers)
	assert.True(t, src.ids["2024-10-0020"])
	assert.Equal(t, 0, locks.Len())
}

func TestScopeLocks_ContextCancelled(t *testing.T) {
	locks := NewScopeLocks()

	unlock, err := locks.Lock(context.Background(), 2024, "10")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = locks.Lock(ctx, 2024, "10")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Other scopes are not blocked
	other, err := locks.Lock(context.Background(), 2024, "20")
	require.NoError(t, err)
	other()

	unlock()
	unlock()
	assert.Equal(t, 0, locks.Len())
}
