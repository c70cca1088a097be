package sim

import "time"

// Key is one of the six thrust controls.
type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyPort
	KeyStarboard
	KeyTurnLeft
	KeyTurnRight
	numKeys
)

var keyRunes = [numKeys]rune{'w', 's', 'a', 'd', 'q', 'e'}

// KeyForRune maps the keyboard letters w/s, a/d and q/e to their controls.
func KeyForRune(r rune) (Key, bool) {
	for k, kr := range keyRunes {
		if r == kr || r == kr-'a'+'A' {
			return Key(k), true
		}
	}
	return 0, false
}

// Keys is the set of held controls.
type Keys [numKeys]bool

// Press marks k as held.
func (ks *Keys) Press(k Key) {
	if k >= 0 && k < numKeys {
		ks[k] = true
	}
}

// Release marks k as released.
func (ks *Keys) Release(k Key) {
	if k >= 0 && k < numKeys {
		ks[k] = false
	}
}

// ReleaseAll drops every held control, as on focus loss.
func (ks *Keys) ReleaseAll() { *ks = Keys{} }

// Held counts the held controls.
func (ks *Keys) Held() int {
	n := 0
	for _, h := range ks {
		if h {
			n++
		}
	}
	return n
}

func (ks *Keys) axis(pos, neg Key) float64 {
	v := 0.0
	if ks[pos] {
		v++
	}
	if ks[neg] {
		v--
	}
	return v
}

// Latch turns key-press events into held state for inputs that never report
// releases, such as terminals. A key stays held for Hold after its most
// recent press; auto-repeat keeps it alive.
type Latch struct {
	Hold  time.Duration
	until [numKeys]time.Time
}

// Pulse records a press of k at now.
func (l *Latch) Pulse(k Key, now time.Time) {
	if k >= 0 && k < numKeys {
		l.until[k] = now.Add(l.Hold)
	}
}

// Apply writes the held state at now into keys.
func (l *Latch) Apply(now time.Time, keys *Keys) {
	for k := range l.until {
		keys[k] = now.Before(l.until[k])
	}
}

// Reset forgets every pending press.
func (l *Latch) Reset() { l.until = [numKeys]time.Time{} }
