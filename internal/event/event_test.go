package event

import "testing"

type countingListener struct {
	got []EventType
}

func (l *countingListener) OnEvent(e Event) {
	l.got = append(l.got, e.Type)
}

func TestDispatchOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(EnemyKilled, b)
	d.SubscribeAll(a, RoundStarted, RoundCompleted)

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: RoundStarted})
	d.Dispatch(Event{Type: GameWon})

	if len(a.got) != 2 || a.got[0] != EnemyKilled || a.got[1] != RoundStarted {
		t.Fatalf("a got %v", a.got)
	}
	if len(b.got) != 1 {
		t.Fatalf("b got %v", b.got)
	}

	d.Unsubscribe(EnemyKilled, a)
	d.Dispatch(Event{Type: EnemyKilled})
	if len(a.got) != 2 || len(b.got) != 2 {
		t.Fatalf("after unsubscribe: a=%v b=%v", a.got, b.got)
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var rounds []int
	fn := ListenerFunc(func(e Event) {
		rounds = append(rounds, e.Data.(RoundData).Round)
	})
	d.Subscribe(RoundCompleted, fn)
	d.Dispatch(Event{Type: RoundCompleted, Data: RoundData{Round: 4}})
	d.Unsubscribe(RoundCompleted, fn) // no-op, must not panic
	d.Dispatch(Event{Type: RoundCompleted, Data: RoundData{Round: 5}})

	if len(rounds) != 2 || rounds[0] != 4 || rounds[1] != 5 {
		t.Fatalf("rounds = %v", rounds)
	}
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: GameOver})
}
