// Package editor holds the presentation model of the particle colour editor:
// the slider-backed channel state, the load/apply session and colour helpers.
// It has no UI toolkit dependency.
package editor

import "github.com/Faultbox/sfx-editor/pkg/sfx"

// DefaultColor is the slider state before any file is loaded.
var DefaultColor = sfx.Color{0.7, 0.3, 0.5, 1.0}

// Listener is called after a channel value changes.
type Listener func(ch sfx.Channel, value float64)

type subscription struct {
	id int
	fn Listener
}

// Channels holds the four editable channel values and notifies listeners
// synchronously on every change. It is not safe for concurrent use; all
// access happens on the UI thread.
type Channels struct {
	values    sfx.Color
	listeners []subscription
	nextID    int
}

// NewChannels creates a channel state with the given initial values.
func NewChannels(initial sfx.Color) *Channels {
	return &Channels{values: initial}
}

// Subscribe registers fn and returns a function that removes it.
// Listeners run in registration order.
func (c *Channels) Subscribe(fn Listener) (unsubscribe func()) {
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, subscription{id: id, fn: fn})

	return func() {
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// Get returns the value of one channel.
func (c *Channels) Get(ch sfx.Channel) float64 {
	return c.values[ch]
}

// Color returns all four values.
func (c *Channels) Color() sfx.Color {
	return c.values
}

// Set updates one channel. Listeners are only notified when the value
// actually changes. Reports whether it changed.
func (c *Channels) Set(ch sfx.Channel, v float64) bool {
	if c.values[ch] == v {
		return false
	}
	c.values[ch] = v
	c.notify(ch, v)
	return true
}

// SetColor updates all four channels.
func (c *Channels) SetColor(col sfx.Color) {
	for _, ch := range sfx.Channels {
		c.Set(ch, col[ch])
	}
}

// SetRGB updates red, green and blue, leaving alpha alone.
func (c *Channels) SetRGB(r, g, b float64) {
	c.Set(sfx.Red, r)
	c.Set(sfx.Green, g)
	c.Set(sfx.Blue, b)
}

func (c *Channels) notify(ch sfx.Channel, v float64) {
	// Copy so a listener may unsubscribe itself.
	listeners := append([]subscription(nil), c.listeners...)
	for _, l := range listeners {
		l.fn(ch, v)
	}
}
