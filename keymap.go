package dialog

// KeyAction is the prompt-level action a key press maps to.
type KeyAction int

// Key action constants shared by all prompt kinds. List prompts use the
// navigation and toggle actions; line-editing prompts use the cursor and
// delete actions. Unbound keys fall through to ActionNone and are treated
// as character input where the prompt accepts text.
const (
	ActionNone KeyAction = iota
	ActionSubmit
	ActionCancel
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd
	ActionMoveWordLeft
	ActionMoveWordRight
	ActionDeleteBack
	ActionDeleteForward
	ActionDeleteLine
	ActionDeleteToEnd
	ActionDeleteWordBack
	ActionToggle
)

// KeyMap holds the key binding configuration for one prompt kind.
//
// Simple keys (printable characters and control codes) are bound by rune;
// special keys that arrive as escape sequences (arrows, Home/End, Delete)
// are bound by the sequence following the initial ESC byte.
type KeyMap struct {
	bindings  map[rune]KeyAction
	sequences map[string]KeyAction
}

func newKeyMap() *KeyMap {
	return &KeyMap{
		bindings:  make(map[rune]KeyAction),
		sequences: make(map[string]KeyAction),
	}
}

// NewListKeyMap returns the default bindings for the list prompts
// (Select, MultiSelect, Sort):
//
//   - Enter: submit
//   - Esc / Ctrl+C: cancel
//   - Up / Ctrl+P / k: move highlight up
//   - Down / Ctrl+N / j: move highlight down
//   - Space: toggle (checked state on MultiSelect, grab on Sort)
//   - Home / End: jump to first / last item
func NewListKeyMap() *KeyMap {
	km := newKeyMap()

	km.Bind('\r', ActionSubmit)
	km.Bind('\n', ActionSubmit)
	km.Bind('\x03', ActionCancel) // Ctrl+C
	km.Bind('\x1b', ActionCancel) // bare Esc
	km.Bind('\x10', ActionMoveUp) // Ctrl+P
	km.Bind('k', ActionMoveUp)
	km.Bind('\x0e', ActionMoveDown) // Ctrl+N
	km.Bind('j', ActionMoveDown)
	km.Bind(' ', ActionToggle)

	km.BindSequence("[A", ActionMoveUp)
	km.BindSequence("[B", ActionMoveDown)
	km.BindSequence("[H", ActionMoveHome)
	km.BindSequence("[F", ActionMoveEnd)
	bindApplicationCursorKeys(km)

	return km
}

// NewEditKeyMap returns the default bindings for the line-editing prompts
// (Input, Password, and the FuzzySelect query line):
//
//   - Enter: submit
//   - Esc / Ctrl+C: cancel
//   - Left/Right, Home/End, Ctrl+A/Ctrl+E: cursor movement
//   - Ctrl+Left / Ctrl+Right: word movement
//   - Backspace / Delete: delete backward / forward
//   - Ctrl+U: delete the whole line, Ctrl+K: delete to end of line
//   - Ctrl+W: delete the previous word
//   - Up / Down / Ctrl+P / Ctrl+N: history recall (Input) or
//     highlight movement (FuzzySelect)
func NewEditKeyMap() *KeyMap {
	km := newKeyMap()

	km.Bind('\r', ActionSubmit)
	km.Bind('\n', ActionSubmit)
	km.Bind('\x03', ActionCancel)         // Ctrl+C
	km.Bind('\x1b', ActionCancel)         // bare Esc
	km.Bind('\x01', ActionMoveHome)       // Ctrl+A
	km.Bind('\x05', ActionMoveEnd)        // Ctrl+E
	km.Bind('\x02', ActionMoveLeft)       // Ctrl+B
	km.Bind('\x06', ActionMoveRight)      // Ctrl+F
	km.Bind('\x10', ActionMoveUp)         // Ctrl+P
	km.Bind('\x0e', ActionMoveDown)       // Ctrl+N
	km.Bind('\x7f', ActionDeleteBack)     // Backspace
	km.Bind('\b', ActionDeleteBack)       // Backspace (legacy)
	km.Bind('\x15', ActionDeleteLine)     // Ctrl+U
	km.Bind('\x0b', ActionDeleteToEnd)    // Ctrl+K
	km.Bind('\x17', ActionDeleteWordBack) // Ctrl+W

	km.BindSequence("[A", ActionMoveUp)
	km.BindSequence("[B", ActionMoveDown)
	km.BindSequence("[C", ActionMoveRight)
	km.BindSequence("[D", ActionMoveLeft)
	km.BindSequence("[H", ActionMoveHome)
	km.BindSequence("[F", ActionMoveEnd)
	km.BindSequence("[1;5C", ActionMoveWordRight) // Ctrl+Right
	km.BindSequence("[1;5D", ActionMoveWordLeft)  // Ctrl+Left
	km.BindSequence("[3~", ActionDeleteForward)   // Delete
	bindApplicationCursorKeys(km)

	return km
}

// bindApplicationCursorKeys adds the SS3 variants of the cursor keys, which
// terminals emit instead of the CSI forms when left in application cursor
// mode.
func bindApplicationCursorKeys(km *KeyMap) {
	km.BindSequence("OA", ActionMoveUp)
	km.BindSequence("OB", ActionMoveDown)
	km.BindSequence("OC", ActionMoveRight)
	km.BindSequence("OD", ActionMoveLeft)
	km.BindSequence("OH", ActionMoveHome)
	km.BindSequence("OF", ActionMoveEnd)
}

// Bind adds or replaces a binding for a single key.
func (km *KeyMap) Bind(key rune, action KeyAction) {
	km.bindings[key] = action
}

// BindSequence adds or replaces a binding for an escape sequence. The
// sequence excludes the initial ESC character, e.g. "[A" for ArrowUp.
func (km *KeyMap) BindSequence(seq string, action KeyAction) {
	km.sequences[seq] = action
}

// Unbind removes a key binding, letting the key fall through as literal
// input on prompts that accept text.
func (km *KeyMap) Unbind(key rune) {
	delete(km.bindings, key)
}

// Action returns the action bound to a key, or ActionNone.
func (km *KeyMap) Action(key rune) KeyAction {
	if km == nil || km.bindings == nil {
		return ActionNone
	}
	return km.bindings[key]
}

// SequenceAction returns the action bound to an escape sequence, or
// ActionNone.
func (km *KeyMap) SequenceAction(seq string) KeyAction {
	if km == nil || km.sequences == nil {
		return ActionNone
	}
	return km.sequences[seq]
}
