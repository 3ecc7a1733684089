package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func TestScheduler_PlayFeedsValuesThenDone(t *testing.T) {
	s := NewScheduler()
	var values []float64
	done := 0

	task := s.Play(Tween{From: 0, To: 100, Length: 100 * time.Millisecond},
		func(v float64) { values = append(values, v) },
		func() { done++ })

	require.True(t, s.Active())
	s.Tick(at(0))
	s.Tick(at(50))
	s.Tick(at(100))
	s.Tick(at(150))

	assert.Equal(t, []float64{0, 50, 100}, values)
	assert.Equal(t, 1, done)
	assert.True(t, task.Done())
	assert.False(t, s.Active())
}

func TestScheduler_CancelSuppressesCallbacks(t *testing.T) {
	s := NewScheduler()
	var values []float64
	done := false

	task := s.Play(Tween{From: 0, To: 10, Length: 100 * time.Millisecond},
		func(v float64) { values = append(values, v) },
		func() { done = true })

	s.Tick(at(0))
	task.Cancel()
	s.Tick(at(200))

	assert.Equal(t, []float64{0}, values)
	assert.False(t, done)
	assert.False(t, s.Active())
}

func TestScheduler_LastRequestWins(t *testing.T) {
	s := NewScheduler()
	var owner []string

	first := s.Play(Tween{From: 0, To: 10, Length: time.Second},
		func(float64) { owner = append(owner, "first") }, nil)
	s.Tick(at(0))

	first.Cancel()
	s.Play(Tween{From: 0, To: 10, Length: time.Second},
		func(float64) { owner = append(owner, "second") }, nil)
	s.Tick(at(10))
	s.Tick(at(20))

	assert.Equal(t, []string{"first", "second", "second"}, owner)
}

func TestScheduler_CancelFromEarlierCallback(t *testing.T) {
	s := NewScheduler()
	var later *Task
	fired := false

	s.Play(Tween{Length: time.Second}, func(float64) { later.Cancel() }, nil)
	later = s.Play(Tween{Length: time.Second}, func(float64) { fired = true }, nil)

	s.Tick(at(0))
	assert.False(t, fired)
}

func TestScheduler_TaskAddedInCallbackStartsNextTick(t *testing.T) {
	s := NewScheduler()
	var second []float64

	s.Play(Tween{From: 0, To: 1, Length: 0}, nil, func() {
		s.Play(Tween{From: 5, To: 15, Length: 100 * time.Millisecond},
			func(v float64) { second = append(second, v) }, nil)
	})

	s.Tick(at(0))
	assert.Empty(t, second)

	s.Tick(at(40))
	s.Tick(at(90))
	assert.Equal(t, []float64{5, 10}, second)
}

func TestScheduler_Every(t *testing.T) {
	s := NewScheduler()
	count := 0
	task := s.Every(0, func() { count++ })

	for i := 0; i < 5; i++ {
		s.Tick(at(i * 16))
	}
	assert.Equal(t, 5, count)

	task.Cancel()
	s.Tick(at(100))
	assert.Equal(t, 5, count)
	assert.False(t, s.Active())
}

func TestScheduler_EveryRespectsInterval(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Every(50*time.Millisecond, func() { count++ })

	s.Tick(at(0))
	s.Tick(at(20))
	s.Tick(at(49))
	s.Tick(at(50))
	s.Tick(at(120))

	assert.Equal(t, 3, count)
}

func TestTask_NilSafe(t *testing.T) {
	var task *Task
	task.Cancel()
	assert.True(t, task.Done())
}
