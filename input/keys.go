// Package input decodes raw terminal bytes into logical key events.
package input

// Key is one logical keypress. Values 0..255 are the raw byte itself; keys
// produced from escape sequences live above that range.
type Key int

const (
	KeyTab       Key = '\t'
	KeyEnter     Key = '\r'
	KeyEscape    Key = 0x1b
	KeyBackspace Key = 0x7f
)

const (
	KeyLeft Key = iota + 1000
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyHome
	KeyEnd
)

// Ctrl returns the key produced by holding Ctrl with c.
func Ctrl(c byte) Key { return Key(c & 0x1f) }

// IsByte reports whether k carries a single raw byte.
func (k Key) IsByte() bool { return k >= 0 && k <= 0xff }

// Byte returns the raw byte of k. Only meaningful when IsByte is true.
func (k Key) Byte() byte { return byte(k) }

// IsControl reports whether k is an ASCII control byte (including DEL).
func (k Key) IsControl() bool {
	return k.IsByte() && (k < 0x20 || k == 0x7f)
}
