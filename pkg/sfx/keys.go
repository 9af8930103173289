// Package sfx reads and rewrites the colour animation fields of Battalion Wars
// particle effect text dumps.
package sfx

import "fmt"

// Channel is one colour channel of a particle colour.
type Channel int

// Channel constants, in file order.
const (
	Red Channel = iota
	Green
	Blue
	Alpha
)

// NumChannels is the number of colour channels.
const NumChannels = 4

// Channels lists every channel in order.
var Channels = [NumChannels]Channel{Red, Green, Blue, Alpha}

// String returns the channel name as it appears in field keys.
func (c Channel) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	case Alpha:
		return "Alpha"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// Keyframe is a point in the particle's colour animation timeline.
type Keyframe int

// Keyframe constants.
const (
	Start Keyframe = iota
	End
	Transition
)

// NumKeyframes is the number of keyframe kinds.
const NumKeyframes = 3

// Keyframes lists every keyframe kind in order.
var Keyframes = [NumKeyframes]Keyframe{Start, End, Transition}

// String returns the keyframe name as it appears in field keys.
func (k Keyframe) String() string {
	switch k {
	case Start:
		return "Start"
	case End:
		return "End"
	case Transition:
		return "Transition"
	default:
		return fmt.Sprintf("Keyframe(%d)", int(k))
	}
}

// Key identifies one scalar field, e.g. End_Blue.
type Key struct {
	Frame   Keyframe
	Channel Channel
}

// String returns the field name used in the document.
func (k Key) String() string {
	return k.Frame.String() + "_" + k.Channel.String()
}

// AllKeys returns the 12 field keys, grouped by channel.
func AllKeys() []Key {
	keys := make([]Key, 0, NumChannels*NumKeyframes)
	for _, ch := range Channels {
		for _, kf := range Keyframes {
			keys = append(keys, Key{Frame: kf, Channel: ch})
		}
	}
	return keys
}

// ParseKey parses a field name such as "Transition_Alpha".
func ParseKey(name string) (Key, error) {
	for _, k := range AllKeys() {
		if k.String() == name {
			return k, nil
		}
	}
	return Key{}, fmt.Errorf("unknown field key %q", name)
}

// ParseChannel parses a channel name. Single-letter forms (r, g, b, a) and
// lower case names are accepted.
func ParseChannel(name string) (Channel, error) {
	switch name {
	case "Red", "red", "r", "R":
		return Red, nil
	case "Green", "green", "g", "G":
		return Green, nil
	case "Blue", "blue", "b", "B":
		return Blue, nil
	case "Alpha", "alpha", "a", "A", "opacity":
		return Alpha, nil
	}
	return 0, fmt.Errorf("unknown channel %q", name)
}

// Color holds one value per channel, indexed by Channel.
type Color [NumChannels]float64

// Values maps field keys to the values found in a document.
// Keys absent from the document are absent from the map.
type Values map[Key]float64

// Get returns the value for a key and whether it was found.
func (v Values) Get(frame Keyframe, ch Channel) (float64, bool) {
	val, ok := v[Key{Frame: frame, Channel: ch}]
	return val, ok
}
