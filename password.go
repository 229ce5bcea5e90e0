package dialog

import "io"

// Password prompts for a secret. The buffer behaves exactly like Input; only
// the echo differs: each typed rune renders as a mask character, or as
// nothing at all with WithPasswordHiddenEcho. An optional confirmation
// prompt re-asks and retries on mismatch.
//
//	secret, err := dialog.NewPassword("Passphrase",
//		dialog.WithPasswordConfirmation("Repeat passphrase", "passphrases do not match"),
//	).Interact()
type Password struct {
	prompt        string
	validator     func(string) error
	allowEmpty    bool
	confirmPrompt string
	mismatchErr   string
	echo          EchoMode
	theme         *Theme
	keyMap        *KeyMap

	term   terminalInterface
	output io.Writer
}

// PasswordOption configures a Password prompt.
type PasswordOption func(*Password)

// WithPasswordValidator sets the validation hook, applied to the first
// entry before any confirmation round.
func WithPasswordValidator(validate func(string) error) PasswordOption {
	return func(p *Password) { p.validator = validate }
}

// WithPasswordAllowEmpty permits an empty secret.
func WithPasswordAllowEmpty(allow bool) PasswordOption {
	return func(p *Password) { p.allowEmpty = allow }
}

// WithPasswordConfirmation asks again with the given prompt and rejects
// mismatching entries with the given message, restarting the prompt.
func WithPasswordConfirmation(prompt, mismatch string) PasswordOption {
	return func(p *Password) {
		p.confirmPrompt = prompt
		p.mismatchErr = mismatch
	}
}

// WithPasswordHiddenEcho suppresses the echo entirely instead of masking.
func WithPasswordHiddenEcho() PasswordOption {
	return func(p *Password) { p.echo = EchoNone }
}

// WithPasswordTheme sets the theme.
func WithPasswordTheme(theme *Theme) PasswordOption {
	return func(p *Password) { p.theme = theme }
}

// NewPassword creates a Password prompt.
func NewPassword(prompt string, opts ...PasswordOption) *Password {
	p := &Password{
		prompt: prompt,
		echo:   EchoMask,
		theme:  DefaultTheme(),
		keyMap: NewEditKeyMap(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Interact runs the prompt and returns the secret. Cancellation is reported
// as ErrCancelled.
func (p *Password) Interact() (string, error) {
	value, ok, err := p.InteractOpt()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrCancelled
	}
	return value, nil
}

// InteractOpt runs the prompt; cancellation yields ok=false with a nil
// error instead of a failure.
func (p *Password) InteractOpt() (string, bool, error) {
	sess, err := newSession(p.term, p.output, p.keyMap)
	if err != nil {
		return "", false, err
	}
	if err := sess.acquire(false); err != nil {
		return "", false, err
	}
	defer sess.release()

	errMsg := ""
	for {
		first, ok, err := runLine(sess, lineConfig{
			prompt:     p.prompt,
			validator:  p.validator,
			allowEmpty: p.allowEmpty,
			echo:       p.echo,
			theme:      p.theme,
			errMsg:     errMsg,
		})
		if err != nil {
			return "", false, err
		}
		if !ok {
			if err := sess.renderer.clear(); err != nil {
				return "", false, err
			}
			return "", false, nil
		}

		if p.confirmPrompt != "" {
			second, ok, err := runLine(sess, lineConfig{
				prompt:     p.confirmPrompt,
				allowEmpty: true,
				echo:       p.echo,
				theme:      p.theme,
			})
			if err != nil {
				return "", false, err
			}
			if !ok {
				if err := sess.renderer.clear(); err != nil {
					return "", false, err
				}
				return "", false, nil
			}
			if first != second {
				errMsg = p.mismatchErr
				if errMsg == "" {
					errMsg = "entries do not match"
				}
				continue
			}
		}

		// The summary never shows the secret.
		if err := sess.renderer.finish(p.theme.FormatSummary(p.prompt, "")); err != nil {
			return "", false, err
		}
		return first, true, nil
	}
}
