package vellum

import (
	"math/rand"

	"github.com/zyedidia/generic/heap"
)

// AIUpdatesPerSecond is the number of permitted game-state advances per
// second. The timer's tick interval is derived from it.
const AIUpdatesPerSecond = 15

// Animator is the animation-control collaborator. UpdateAnimation is invoked
// synchronously from GlobalTimer.Update when a scheduled entry becomes due.
type Animator interface {
	UpdateAnimation()
}

// Area is the world-area collaborator advanced on each unfrozen tick.
type Area interface {
	UpdateFog()
	UpdateEffects()
}

// GameState is the game-state collaborator for the timer. CurrentArea may
// return nil when no area is loaded; the timer then skips world and real-time
// advancement for that tick.
type GameState interface {
	InDialogue() bool
	AdvanceWorldTime(ticks int64)
	AddRealTime(ms int64)
	CurrentArea() Area
}

// animationRef pairs an absolute due-time with an animator. Cancelled entries
// stay in the heap and are discarded when they reach the top; seq breaks
// due-time ties in insertion order.
type animationRef struct {
	due       int64
	seq       uint64
	animator  Animator
	cancelled bool
}

// GlobalTimer advances game time, screen shake, and color fades on a fixed
// tick interval, and runs a due-time-ordered queue of deferred animation
// callbacks.
//
// All times are absolute milliseconds supplied by the caller, so the clock is
// fully under the game loop's (and the tests') control. The timer is
// single-threaded: Update and the mutators must be serialized externally if
// ever touched from more than one goroutine.
type GlobalTimer struct {
	video Video
	state GameState

	interval  int64
	startTime int64

	queue      *heap.Heap[*animationRef]
	byAnimator map[Animator][]*animationRef
	nextSeq    uint64

	fadeToCounter   int64
	fadeToMax       int64
	fadeFromCounter int64
	fadeFromMax     int64
	waitCounter     int64
	waitMax         int64
	shakeCounter    int64
	shakeMax        int64
	shakeX, shakeY  int
	shakeOrigin     Point
}

// NewGlobalTimer creates a timer bound to its video and game-state
// collaborators. state may be nil for UI-only use; world and real time are
// then never advanced.
func NewGlobalTimer(video Video, state GameState) *GlobalTimer {
	t := &GlobalTimer{
		video:    video,
		state:    state,
		interval: 1000 / AIUpdatesPerSecond,
	}
	t.queue = heap.New(func(a, b *animationRef) bool {
		if a.due != b.due {
			return a.due < b.due
		}
		return a.seq < b.seq
	})
	t.byAnimator = make(map[Animator][]*animationRef)
	return t
}

// Interval returns the fixed tick interval in milliseconds.
func (t *GlobalTimer) Interval() int64 {
	return t.interval
}

// Init resets every counter and drops all scheduled animations without
// invoking them. startTime resets to 0, forcing an advance on the next
// Update.
func (t *GlobalTimer) Init() {
	t.fadeToCounter = 0
	t.fadeToMax = 0
	t.fadeFromCounter = 0
	t.fadeFromMax = 0
	t.waitCounter = 0
	t.waitMax = 0
	t.shakeCounter = 0
	t.shakeMax = 0
	t.startTime = 0
	t.ClearAnimations()
}

// Freeze advances real time by the elapsed wall-clock duration without
// advancing any game-time state, and rebases the tick clock to now.
func (t *GlobalTimer) Freeze(now int64) {
	advance := now - t.startTime
	t.startTime = now
	if t.state != nil {
		t.state.AddRealTime(advance)
	}
}

// Update is the per-frame tick, called with the current absolute time in
// milliseconds.
//
// Due animation callbacks always run first. The rest of the update is rate
// limited to the tick interval; a short call leaves startTime untouched so
// the fractional remainder carries into the next call. Fades freeze game
// time per the rules documented on SetFadeToColor and SetFadeFromColor.
func (t *GlobalTimer) Update(now int64) {
	t.updateAnimations(now)

	elapsed := now - t.startTime
	if elapsed < t.interval {
		return
	}
	ticks := elapsed / t.interval

	if t.shakeCounter > 0 {
		x := t.shakeOrigin.X
		y := t.shakeOrigin.Y
		t.shakeCounter -= ticks
		if t.shakeCounter < 0 {
			t.shakeCounter = 0
		}
		if t.shakeCounter > 0 {
			if t.shakeX > 0 {
				x += rand.Intn(t.shakeX) - t.shakeX/2
			}
			if t.shakeY > 0 {
				y += rand.Intn(t.shakeY) - t.shakeY/2
			}
		}
		t.video.MoveViewport(x, y, false)
	}

	if t.fadeToCounter > 0 {
		t.fadeToCounter -= ticks
		if t.fadeToCounter < 0 {
			t.fadeToCounter = 0
		}
		t.video.SetFadePercent(int((t.fadeToMax - t.fadeToCounter) * 100 / t.fadeToMax))
		// Game time does not advance while fading to black.
		t.startTime = now
		return
	}

	if t.fadeFromCounter != t.fadeFromMax {
		if t.fadeFromCounter > t.fadeFromMax {
			// Still dark past the target: approach it without freezing
			// game time.
			t.fadeFromCounter -= ticks
			if t.fadeFromCounter < t.fadeFromMax {
				t.fadeFromCounter = t.fadeFromMax
			}
		} else {
			t.fadeFromCounter += ticks
			if t.fadeFromCounter > t.fadeFromMax {
				t.fadeFromCounter = t.fadeFromMax
			}
			t.video.SetFadePercent(int((t.fadeFromMax - t.fadeFromCounter) * 100 / t.fadeFromMax))
			// Game time does not advance while fading from black.
			t.startTime = now
			return
		}
	}
	if t.fadeFromCounter == t.fadeFromMax {
		t.video.SetFadePercent(0)
	}

	if t.state == nil {
		t.startTime = now
		return
	}
	area := t.state.CurrentArea()
	if area == nil {
		t.startTime = now
		return
	}
	if !t.state.InDialogue() {
		area.UpdateFog()
		area.UpdateEffects()
		// In-world time, affected by effects and actions.
		t.state.AdvanceWorldTime(ticks)
	}
	// Time spent in the game, including pauses and dialogue.
	t.state.AddRealTime(elapsed)
	t.startTime = now
}

// SetFadeToColor starts a fade to black over count ticks (64 when count is
// 0). While the fade runs, Update sets the fade percentage toward 100 and
// freezes game time. The screen then stays dark for a latch period before
// the fade state fully clears.
func (t *GlobalTimer) SetFadeToColor(count int64) {
	if count == 0 {
		count = 64
	}
	t.fadeToCounter = count
	t.fadeToMax = count
	// Stay black for a while.
	t.fadeFromCounter = 128
	t.fadeFromMax = 0
}

// SetFadeFromColor starts a fade from black over count ticks (64 when count
// is 0). While the fade runs, Update steps the fade percentage down toward 0
// and freezes game time; at the target the percentage clears and game time
// resumes.
func (t *GlobalTimer) SetFadeFromColor(count int64) {
	if count == 0 {
		count = 64
	}
	t.fadeFromCounter = 0
	t.fadeFromMax = count
}

// SetWait arms the generic wait counter. Update does not consume it; the
// surrounding game loop reads and clears it.
func (t *GlobalTimer) SetWait(count int64) {
	t.waitCounter = count
	t.waitMax = count
}

// WaitCounter returns the remaining wait count.
func (t *GlobalTimer) WaitCounter() int64 {
	return t.waitCounter
}

// ClearWait zeroes the wait counter.
func (t *GlobalTimer) ClearWait() {
	t.waitCounter = 0
}

// SetScreenShake starts shaking the viewport around origin for count ticks,
// with random offsets within [-shakeX/2, shakeX/2] x [-shakeY/2, shakeY/2].
// The viewport returns to origin when the shake expires.
func (t *GlobalTimer) SetScreenShake(origin Point, shakeX, shakeY int, count int64) {
	t.shakeOrigin = origin
	t.shakeX = shakeX
	t.shakeY = shakeY
	t.shakeCounter = count
	t.shakeMax = count
}

// FadeToProgress returns fade-to-black completion, 0-100.
func (t *GlobalTimer) FadeToProgress() int {
	return counterProgress(t.fadeToCounter, t.fadeToMax)
}

// ShakeProgress returns screen-shake completion, 0-100.
func (t *GlobalTimer) ShakeProgress() int {
	return counterProgress(t.shakeCounter, t.shakeMax)
}

// WaitProgress returns wait completion, 0-100.
func (t *GlobalTimer) WaitProgress() int {
	return counterProgress(t.waitCounter, t.waitMax)
}

// counterProgress maps a countdown and its maximum to 0-100.
func counterProgress(counter, max int64) int {
	if max <= 0 {
		return 0
	}
	return int((max - counter) * 100 / max)
}

// AddAnimation schedules the animator's UpdateAnimation for now+delay
// milliseconds. Entries with equal due-times fire in insertion order.
func (t *GlobalTimer) AddAnimation(a Animator, now, delay int64) {
	t.nextSeq++
	ref := &animationRef{due: now + delay, seq: t.nextSeq, animator: a}
	t.queue.Push(ref)
	t.byAnimator[a] = append(t.byAnimator[a], ref)
}

// RemoveAnimation cancels every pending entry for the animator. Entries are
// not physically removed; they are discarded when they reach the top of the
// queue, so removal during a callback scan is safe.
func (t *GlobalTimer) RemoveAnimation(a Animator) {
	for _, ref := range t.byAnimator[a] {
		ref.cancelled = true
	}
	delete(t.byAnimator, a)
}

// ClearAnimations drops every scheduled entry without invoking any callback.
func (t *GlobalTimer) ClearAnimations() {
	for {
		ref, ok := t.queue.Pop()
		if !ok {
			break
		}
		t.forget(ref)
	}
}

// updateAnimations fires every live entry due at or before now, in due-time
// order. Cancelled entries are reclaimed without firing and never block later
// entries. A callback may add or remove animations; additions due this tick
// are picked up by the re-peek but callers must not rely on that.
func (t *GlobalTimer) updateAnimations(now int64) {
	for {
		ref, ok := t.queue.Peek()
		if !ok {
			return
		}
		if ref.cancelled {
			t.queue.Pop()
			continue
		}
		if ref.due > now {
			return
		}
		t.queue.Pop()
		t.forget(ref)
		ref.animator.UpdateAnimation()
	}
}

// forget unlinks a reference from the per-animator index.
func (t *GlobalTimer) forget(ref *animationRef) {
	refs := t.byAnimator[ref.animator]
	for i, r := range refs {
		if r == ref {
			refs = append(refs[:i], refs[i+1:]...)
			break
		}
	}
	if len(refs) == 0 {
		delete(t.byAnimator, ref.animator)
	} else {
		t.byAnimator[ref.animator] = refs
	}
}
