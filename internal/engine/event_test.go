package engine

import "testing"

func TestEventWithArgInvokesListeners(t *testing.T) {
	var e EventWithArg[int]
	sum := 0
	e.AddListener(func(v int) { sum += v })
	e.AddListener(func(v int) { sum += v * 10 })
	e.AddListener(nil)

	if e.GetListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.GetListenerCount())
	}

	e.Invoke(2)
	if sum != 22 {
		t.Errorf("Expected sum 22, got %d", sum)
	}

	e.RemoveAllListeners()
	e.Invoke(5)
	if sum != 22 {
		t.Errorf("Listeners should not fire after RemoveAllListeners, got %d", sum)
	}
}
