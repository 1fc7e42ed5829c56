package storage

import (
	"sync"
	"testing"
	"time"

	"flagquiz/internal/domain/entities"
	"flagquiz/internal/service"
)

func testGame(t *testing.T) *service.Game {
	t.Helper()

	catalog := []entities.Country{
		{Code: "FR", Name: "France", Continent: "Europe"},
		{Code: "DE", Name: "Germany", Continent: "Europe"},
		{Code: "IT", Name: "Italy", Continent: "Europe"},
		{Code: "ES", Name: "Spain", Continent: "Europe"},
	}
	game := service.NewGame(catalog, 4, nil)
	if err := game.Start(service.ContinentAll); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return game
}

func TestSessionStorageGetOrCreate(t *testing.T) {
	storage := NewSessionStorage()

	first := storage.GetOrCreate(1)
	second := storage.GetOrCreate(1)
	if first != second {
		t.Fatalf("GetOrCreate returned different sessions for the same chat")
	}

	other := storage.GetOrCreate(2)
	if other == first {
		t.Fatalf("GetOrCreate shared a session across chats")
	}
}

func TestSessionStorageGetOrCreateConcurrent(t *testing.T) {
	storage := NewSessionStorage()

	const goroutines = 16
	sessions := make([]*Session, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i] = storage.GetOrCreate(42)
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if sessions[i] != sessions[0] {
			t.Fatalf("concurrent GetOrCreate produced distinct sessions")
		}
	}
}

func TestSessionDo(t *testing.T) {
	storage := NewSessionStorage()
	sess := storage.GetOrCreate(1)

	if sess.Do(func(*service.Game) {}) {
		t.Fatalf("Do() = true before any round was started")
	}

	sess.Swap(testGame(t))

	called := false
	if !sess.Do(func(g *service.Game) {
		called = true
		if g.TotalQuestions() != 4 {
			t.Fatalf("TotalQuestions() = %d, want 4", g.TotalQuestions())
		}
	}) {
		t.Fatalf("Do() = false with an installed game")
	}
	if !called {
		t.Fatalf("Do() did not call fn")
	}
}

func TestSessionScreen(t *testing.T) {
	sess := NewSessionStorage().GetOrCreate(1)

	if got := sess.Screen(); got != 0 {
		t.Fatalf("Screen() = %d before SetScreen, want 0", got)
	}

	sess.SetScreen(777)
	if got := sess.Screen(); got != 777 {
		t.Fatalf("Screen() = %d, want 777", got)
	}
}

func TestSessionScheduleAdvance(t *testing.T) {
	sess := NewSessionStorage().GetOrCreate(1)

	fired := make(chan struct{})
	sess.ScheduleAdvance(10*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatalf("scheduled advance never fired")
	}
}

func TestSessionScheduleAdvanceReplacesPending(t *testing.T) {
	sess := NewSessionStorage().GetOrCreate(1)

	var mu sync.Mutex
	var got []string
	record := func(tag string) func() {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, tag)
		}
	}

	sess.ScheduleAdvance(40*time.Millisecond, record("first"))
	sess.ScheduleAdvance(10*time.Millisecond, record("second"))

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 || got[0] != "second" {
		t.Fatalf("fired callbacks = %v, want [second]", got)
	}
}

func TestSessionCancelAdvance(t *testing.T) {
	sess := NewSessionStorage().GetOrCreate(1)

	fired := make(chan struct{}, 1)
	sess.ScheduleAdvance(30*time.Millisecond, func() { fired <- struct{}{} })
	sess.CancelAdvance()

	select {
	case <-fired:
		t.Fatalf("canceled advance fired anyway")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestSessionSwapCancelsAdvance(t *testing.T) {
	sess := NewSessionStorage().GetOrCreate(1)

	fired := make(chan struct{}, 1)
	sess.ScheduleAdvance(30*time.Millisecond, func() { fired <- struct{}{} })
	sess.Swap(testGame(t))

	select {
	case <-fired:
		t.Fatalf("advance from the previous round survived Swap")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestSessionStorageDeleteCancelsAdvance(t *testing.T) {
	storage := NewSessionStorage()
	sess := storage.GetOrCreate(1)

	fired := make(chan struct{}, 1)
	sess.ScheduleAdvance(30*time.Millisecond, func() { fired <- struct{}{} })
	storage.Delete(1)

	if _, ok := storage.Get(1); ok {
		t.Fatalf("session still present after Delete")
	}

	select {
	case <-fired:
		t.Fatalf("advance fired after its session was deleted")
	case <-time.After(150 * time.Millisecond):
	}
}
