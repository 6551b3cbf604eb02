package input

import "io"

type decodeState int

const (
	stateIdle decodeState = iota
	stateEscape1
	stateEscape2
	stateEscape3
)

// csiKeys resolves ESC [ <final>.
var csiKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// ss3Keys resolves ESC O <final>, sent by terminals in application cursor mode.
var ss3Keys = map[byte]Key{
	'H': KeyHome,
	'F': KeyEnd,
}

// tildeKeys resolves ESC [ <digit> ~.
var tildeKeys = map[byte]Key{
	'1': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
	'7': KeyHome,
	'8': KeyEnd,
}

// Decoder turns a byte stream into keys, one ReadKey call per key.
//
// The underlying reader is expected to behave like a raw tty with a short
// read timeout: a (0, nil) read means "no byte yet". While waiting for the
// first byte of a key such reads are retried; inside an escape sequence a
// missing byte ends the sequence and the key decodes as KeyEscape.
type Decoder struct {
	r   io.Reader
	buf [1]byte
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey blocks until one key is available. It returns an error only when
// reading the first byte of a key fails.
func (d *Decoder) ReadKey() (Key, error) {
	c, err := d.readFirst()
	if err != nil {
		return 0, err
	}

	state := stateIdle
	if c == byte(KeyEscape) {
		state = stateEscape1
	}

	var prefix, param byte
	for {
		switch state {
		case stateIdle:
			return Key(c), nil

		case stateEscape1:
			b, ok := d.readNext()
			if !ok {
				return KeyEscape, nil
			}
			prefix = b
			state = stateEscape2

		case stateEscape2:
			b, ok := d.readNext()
			if !ok {
				return KeyEscape, nil
			}
			switch {
			case prefix == '[' && b >= '0' && b <= '9':
				param = b
				state = stateEscape3
			case prefix == '[':
				return lookup(csiKeys, b), nil
			case prefix == 'O':
				return lookup(ss3Keys, b), nil
			default:
				return KeyEscape, nil
			}

		case stateEscape3:
			b, ok := d.readNext()
			if !ok || b != '~' {
				return KeyEscape, nil
			}
			return lookup(tildeKeys, param), nil
		}
	}
}

func lookup(table map[byte]Key, b byte) Key {
	if k, ok := table[b]; ok {
		return k
	}
	return KeyEscape
}

func (d *Decoder) readFirst() (byte, error) {
	for {
		n, err := d.r.Read(d.buf[:])
		if n == 1 {
			return d.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (d *Decoder) readNext() (byte, bool) {
	n, _ := d.r.Read(d.buf[:])
	return d.buf[0], n == 1
}
