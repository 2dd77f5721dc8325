package keysym

import evdev "github.com/holoplot/go-evdev"

// keysymNames maps evdev key codes to X11 keysym names for a US layout.
// Letters and punctuation use their unshifted level; every name must be
// unique so the reverse lookup is unambiguous.
var keysymNames = map[evdev.EvCode]string{
	evdev.KEY_A: "a", evdev.KEY_B: "b",
	evdev.KEY_C: "c", evdev.KEY_D: "d",
	evdev.KEY_E: "e", evdev.KEY_F: "f",
	evdev.KEY_G: "g", evdev.KEY_H: "h",
	evdev.KEY_I: "i", evdev.KEY_J: "j",
	evdev.KEY_K: "k", evdev.KEY_L: "l",
	evdev.KEY_M: "m", evdev.KEY_N: "n",
	evdev.KEY_O: "o", evdev.KEY_P: "p",
	evdev.KEY_Q: "q", evdev.KEY_R: "r",
	evdev.KEY_S: "s", evdev.KEY_T: "t",
	evdev.KEY_U: "u", evdev.KEY_V: "v",
	evdev.KEY_W: "w", evdev.KEY_X: "x",
	evdev.KEY_Y: "y", evdev.KEY_Z: "z",

	evdev.KEY_1: "1", evdev.KEY_2: "2",
	evdev.KEY_3: "3", evdev.KEY_4: "4",
	evdev.KEY_5: "5", evdev.KEY_6: "6",
	evdev.KEY_7: "7", evdev.KEY_8: "8",
	evdev.KEY_9: "9", evdev.KEY_0: "0",

	evdev.KEY_MINUS:      "minus",
	evdev.KEY_EQUAL:      "equal",
	evdev.KEY_LEFTBRACE:  "bracketleft",
	evdev.KEY_RIGHTBRACE: "bracketright",
	evdev.KEY_SEMICOLON:  "semicolon",
	evdev.KEY_APOSTROPHE: "apostrophe",
	evdev.KEY_GRAVE:      "grave",
	evdev.KEY_BACKSLASH:  "backslash",
	evdev.KEY_COMMA:      "comma",
	evdev.KEY_DOT:        "period",
	evdev.KEY_SLASH:      "slash",
	evdev.KEY_102ND:      "less",

	evdev.KEY_SPACE:     "space",
	evdev.KEY_ENTER:     "Return",
	evdev.KEY_ESC:       "Escape",
	evdev.KEY_BACKSPACE: "BackSpace",
	evdev.KEY_TAB:       "Tab",

	evdev.KEY_LEFTSHIFT:  "Shift_L",
	evdev.KEY_RIGHTSHIFT: "Shift_R",
	evdev.KEY_LEFTCTRL:   "Control_L",
	evdev.KEY_RIGHTCTRL:  "Control_R",
	evdev.KEY_LEFTALT:    "Alt_L",
	evdev.KEY_RIGHTALT:   "Alt_R",
	evdev.KEY_LEFTMETA:   "Super_L",
	evdev.KEY_RIGHTMETA:  "Super_R",
	evdev.KEY_CAPSLOCK:   "Caps_Lock",
	evdev.KEY_NUMLOCK:    "Num_Lock",
	evdev.KEY_SCROLLLOCK: "Scroll_Lock",

	evdev.KEY_F1: "F1", evdev.KEY_F2: "F2",
	evdev.KEY_F3: "F3", evdev.KEY_F4: "F4",
	evdev.KEY_F5: "F5", evdev.KEY_F6: "F6",
	evdev.KEY_F7: "F7", evdev.KEY_F8: "F8",
	evdev.KEY_F9: "F9", evdev.KEY_F10: "F10",
	evdev.KEY_F11: "F11", evdev.KEY_F12: "F12",

	evdev.KEY_UP:       "Up",
	evdev.KEY_DOWN:     "Down",
	evdev.KEY_LEFT:     "Left",
	evdev.KEY_RIGHT:    "Right",
	evdev.KEY_HOME:     "Home",
	evdev.KEY_END:      "End",
	evdev.KEY_PAGEUP:   "Prior",
	evdev.KEY_PAGEDOWN: "Next",
	evdev.KEY_INSERT:   "Insert",
	evdev.KEY_DELETE:   "Delete",
	evdev.KEY_SYSRQ:    "Print",
	evdev.KEY_PAUSE:    "Pause",
	evdev.KEY_COMPOSE:  "Menu",

	evdev.KEY_KP0:        "KP_Insert",
	evdev.KEY_KP1:        "KP_End",
	evdev.KEY_KP2:        "KP_Down",
	evdev.KEY_KP3:        "KP_Next",
	evdev.KEY_KP4:        "KP_Left",
	evdev.KEY_KP5:        "KP_Begin",
	evdev.KEY_KP6:        "KP_Right",
	evdev.KEY_KP7:        "KP_Home",
	evdev.KEY_KP8:        "KP_Up",
	evdev.KEY_KP9:        "KP_Prior",
	evdev.KEY_KPDOT:      "KP_Delete",
	evdev.KEY_KPENTER:    "KP_Enter",
	evdev.KEY_KPPLUS:     "KP_Add",
	evdev.KEY_KPMINUS:    "KP_Subtract",
	evdev.KEY_KPASTERISK: "KP_Multiply",
	evdev.KEY_KPSLASH:    "KP_Divide",

	evdev.KEY_MUTE:           "XF86AudioMute",
	evdev.KEY_VOLUMEDOWN:     "XF86AudioLowerVolume",
	evdev.KEY_VOLUMEUP:       "XF86AudioRaiseVolume",
	evdev.KEY_PLAYPAUSE:      "XF86AudioPlay",
	evdev.KEY_NEXTSONG:       "XF86AudioNext",
	evdev.KEY_PREVIOUSSONG:   "XF86AudioPrev",
	evdev.KEY_BRIGHTNESSUP:   "XF86MonBrightnessUp",
	evdev.KEY_BRIGHTNESSDOWN: "XF86MonBrightnessDown",
}
