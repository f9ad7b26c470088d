package platform

// Key codes shared by GLFW and raylib. Printable keys use their ASCII code.
const (
	KeySpace      = 32
	Key0          = 48
	Key9          = 57
	KeyA          = 65
	KeyZ          = 90
	KeyEscape     = 256
	KeyEnter      = 257
	KeyTab        = 258
	KeyBackspace  = 259
	KeyDelete     = 261
	KeyRight      = 262
	KeyLeft       = 263
	KeyDown       = 264
	KeyUp         = 265
	KeyLeftShift  = 340
	KeyLeftCtrl   = 341
	KeyLeftAlt    = 342
	KeyLeftSuper  = 343
	KeyRightShift = 344
	KeyRightCtrl  = 345
	KeyRightAlt   = 346
	KeyRightSuper = 347
)

// KeyName returns the DOM key name ("a", "A", "ArrowUp", " ") for a key
// code, or "" for keys the toolkit does not name.
func KeyName(code int, shift bool) string {
	switch {
	case code >= KeyA && code <= KeyZ:
		if shift {
			return string(rune(code))
		}
		return string(rune(code - KeyA + 'a'))
	case code >= Key0 && code <= Key9:
		return string(rune(code))
	}
	switch code {
	case KeySpace:
		return " "
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyRight:
		return "ArrowRight"
	case KeyLeft:
		return "ArrowLeft"
	case KeyDown:
		return "ArrowDown"
	case KeyUp:
		return "ArrowUp"
	case KeyLeftShift, KeyRightShift:
		return "Shift"
	case KeyLeftCtrl, KeyRightCtrl:
		return "Control"
	case KeyLeftAlt, KeyRightAlt:
		return "Alt"
	case KeyLeftSuper, KeyRightSuper:
		return "Meta"
	}
	return ""
}
