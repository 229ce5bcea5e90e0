// Package dialog provides interactive terminal prompts: confirmation,
// single-line input, password entry, and list selection with paging,
// multi-select, reordering, and fuzzy filtering.
//
// Every prompt follows the same model: a blocking read-key / update-state /
// re-render loop that runs until the user confirms with Enter or cancels
// with Esc or Ctrl+C. Rendering is incremental: only the prompt region is
// redrawn on each state change, and the region is replaced by a one-line
// summary once the prompt finishes.
//
// Quick start:
//
//	items := []string{"Apple", "Banana", "Cherry"}
//	idx, err := dialog.NewSelect("Pick a fruit", items).Interact()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("you picked", items[idx])
//
// Text input with a default value and a validator:
//
//	name, err := dialog.NewInput("Your name",
//		dialog.WithDefault("anonymous"),
//		dialog.WithValidator(func(s string) error {
//			if strings.ContainsAny(s, "/\\") {
//				return errors.New("no path separators, please")
//			}
//			return nil
//		}),
//	).Interact()
//
// The default value is substituted before validation when the buffer is
// empty at confirm time, so a configured default is never exempt from the
// validator.
//
// Cancellation:
//
// Interact returns ErrCancelled when the user presses Esc or Ctrl+C.
// InteractOpt treats cancellation as a designed outcome instead: it returns
// the zero result with ok=false and a nil error, so callers can branch on
// "user declined" without error plumbing:
//
//	picked, ok, err := dialog.NewMultiSelect("Toppings", items).InteractOpt()
//	if err != nil {
//		log.Fatal(err) // terminal I/O failure
//	}
//	if !ok {
//		fmt.Println("never mind")
//	}
//
// Validation errors never escape a prompt loop; they are rendered inline and
// the loop continues. I/O errors always escape, after the terminal mode has
// been restored.
//
// Prompt values are not thread-safe; run each prompt from a single
// goroutine. The terminal (raw mode, cursor visibility) is owned by the
// running prompt for the duration of its loop and restored on every exit
// path, including cancellation.
package dialog
